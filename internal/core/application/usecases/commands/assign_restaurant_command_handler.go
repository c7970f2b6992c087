package commands

import (
	"context"
	"errors"

	"foodcart/internal/pkg/errs"
)

var (
	ErrNoOrderFound      = errors.New("no order found")
	ErrNoRestaurantFound = errors.New("no restaurant found")
)

// AssignRestaurantCommandHandler handles operator-driven restaurant assignment.
// Verifies both the order and the restaurant exist, applies the assignment to
// the order aggregate, and persists the change. The first assignment moves the
// order out of its initial status automatically.
//
// Example:
//
//	handler := NewAssignRestaurantCommandHandler(uowFactory)
//	cmd, _ := NewAssignRestaurantCommand(orderID, restaurantID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoOrderFound):
//	    // unknown order
//	case errors.Is(err, ErrNoRestaurantFound):
//	    // unknown restaurant
//	case err != nil:
//	    // other failure
//	}
type AssignRestaurantCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignRestaurantCommandHandler creates a handler for restaurant assignment.
// Requires a UoWFactory for coordinating the order and restaurant repositories.
func NewAssignRestaurantCommandHandler(uowFactory UoWFactory) AssignRestaurantCommandHandler {
	return AssignRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command.
// Returns ErrNoOrderFound or ErrNoRestaurantFound when either side is unknown.
func (h AssignRestaurantCommandHandler) Handle(ctx context.Context, cmd AssignRestaurantCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ord, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoOrderFound
	}
	if err != nil {
		return err
	}

	rest, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoRestaurantFound
	}
	if err != nil {
		return err
	}

	if err = ord.AssignRestaurant(rest.ID()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
