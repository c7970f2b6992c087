package commands

import (
	"context"
	"errors"

	"foodcart/internal/core/domain/services"
	"foodcart/internal/pkg/errs"
)

// DispatchOrderCommandHandler orchestrates automated fulfillment dispatch.
// Finds the oldest pending order and matches it against restaurants using the
// fulfillment matcher. Transactionally assigns the nearest qualifying restaurant.
//
// Example:
//
//	handler := NewDispatchOrderCommandHandler(uowFactory)
//	cmd := NewDispatchOrderCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoOrderFound):
//	    log.Println("No pending orders")
//	case errors.Is(err, ErrNoRestaurantFound):
//	    log.Println("No restaurant can cook the whole order")
//	case err != nil:
//	    log.Printf("Dispatch failed: %v", err)
//	default:
//	    log.Println("Order dispatched")
//	}
type DispatchOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewDispatchOrderCommandHandler creates a handler for automated dispatch.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewDispatchOrderCommandHandler(uowFactory UoWFactory) DispatchOrderCommandHandler {
	return DispatchOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dispatch command.
// Retrieves the oldest pending order, ranks the restaurants able to cook it,
// and assigns the nearest one. Returns ErrNoOrderFound when nothing is pending
// and ErrNoRestaurantFound when no restaurant covers the whole order; both are
// expected idle outcomes, not failures.
func (h DispatchOrderCommandHandler) Handle(ctx context.Context, cmd DispatchOrderCommand) error {
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

	ordersRepo := uow.OrderRepository()

	ord, err := ordersRepo.GetFirstInSubmittedStatus(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoOrderFound
	}
	if err != nil {
		return err
	}

	restaurants, err := uow.RestaurantRepository().GetAll(ctx)
	if err != nil {
		return err
	}

	menu, err := uow.MenuRepository().GetAllAvailable(ctx)
	if err != nil {
		return err
	}

	options, err := services.NewFulfillmentMatcher().Match(ord, restaurants, menu)
	if err != nil {
		return err
	}
	if len(options) == 0 {
		return ErrNoRestaurantFound
	}

	if err = ord.AssignRestaurant(options[0].Restaurant.ID()); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, ord); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
