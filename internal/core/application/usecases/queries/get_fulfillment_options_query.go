package queries

import (
	"errors"

	"foodcart/internal/core/domain/model/kernel"
	"foodcart/internal/pkg/guard"
)

var ErrGetFulfillmentOptionsQueryIsNotConstructed = errors.New(
	"GetFulfillmentOptionsQuery must be created via NewGetFulfillmentOptionsQuery constructor",
)

// GetFulfillmentOptionsQuery retrieves the fulfillment view of one order: the
// restaurant already preparing it, or the ranked list of restaurants that
// could.
//
// Example:
//
//	query, err := NewGetFulfillmentOptionsQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	if view.Assigned != nil {
//	    fmt.Printf("Being prepared by %s\n", view.Assigned.Name)
//	}
type GetFulfillmentOptionsQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetFulfillmentOptionsQuery creates a query for one order's fulfillment view.
func NewGetFulfillmentOptionsQuery(orderID kernel.UUID) (GetFulfillmentOptionsQuery, error) {
	q := GetFulfillmentOptionsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setOrderID(orderID); err != nil {
		return GetFulfillmentOptionsQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetFulfillmentOptionsQueryIsNotConstructed if validation fails.
func (q GetFulfillmentOptionsQuery) Validate() error {
	return q.guard.Validate(ErrGetFulfillmentOptionsQueryIsNotConstructed)
}

// OrderID returns the identifier of the order being inspected.
func (q GetFulfillmentOptionsQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetFulfillmentOptionsQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// RestaurantOption is one restaurant in the fulfillment view.
// DistanceKm is nil when distance could not be computed (either the order's or
// the restaurant's coordinates are unresolved).
type RestaurantOption struct {
	ID         kernel.UUID
	Name       string
	Address    string
	DistanceKm *float64
}

// GetFulfillmentOptionsQueryResponse is the fulfillment view of one order.
// Exactly one of the two shapes is populated: Assigned when a restaurant is
// already preparing the order, Candidates (possibly empty) otherwise.
type GetFulfillmentOptionsQueryResponse struct {
	OrderID    kernel.UUID
	Assigned   *RestaurantOption
	Candidates []RestaurantOption
}
