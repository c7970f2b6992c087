// Package queries contains read operations in the CQRS architecture.
// Query handlers bypass the domain model and read projections directly,
// either with raw SQL or through the repository ports.
package queries

import (
	"errors"

	"foodcart/internal/core/domain/model/kernel"
	"foodcart/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves the order list for the operations dashboard,
// optionally excluding delivered orders.
//
// Example:
//
//	query := NewGetOrdersQuery(true)
//	handler := NewGetOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//	for _, o := range orders {
//	    fmt.Printf("%s %s: %s\n", o.FirstName, o.LastName, o.TotalAmount)
//	}
type GetOrdersQuery struct {
	excludeDelivered bool

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to list orders.
// When excludeDelivered is true, orders already delivered are filtered out.
func NewGetOrdersQuery(excludeDelivered bool) GetOrdersQuery {
	return GetOrdersQuery{
		excludeDelivered: excludeDelivered,
		guard:            guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// ExcludeDelivered reports whether delivered orders are filtered out.
func (q GetOrdersQuery) ExcludeDelivered() bool {
	return q.excludeDelivered
}

// GetOrdersQueryResponse is one order row of the dashboard listing.
// TotalAmount is derived from the locked line totals, never recomputed from
// current catalog prices.
type GetOrdersQueryResponse struct {
	ID              kernel.UUID
	FirstName       string
	LastName        string
	PhoneNumber     string
	DeliveryAddress string
	StatusLabel     string
	PaymentLabel    string
	RestaurantID    *kernel.UUID
	Comment         string
	TotalAmount     decimal.Decimal
}
