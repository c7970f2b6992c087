package commands

import (
	"context"
	"errors"

	"foodcart/internal/pkg/errs"
)

// ChangeRestaurantAddressCommandHandler handles restaurant address changes.
// The repository re-resolves coordinates on save; an unresolved address keeps
// the previously stored coordinates.
type ChangeRestaurantAddressCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewChangeRestaurantAddressCommandHandler creates a handler for restaurant address changes.
func NewChangeRestaurantAddressCommandHandler(uowFactory RestaurantUoWFactory) ChangeRestaurantAddressCommandHandler {
	return ChangeRestaurantAddressCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the address change command.
// Returns ErrNoRestaurantFound when the restaurant does not exist.
func (h ChangeRestaurantAddressCommandHandler) Handle(ctx context.Context, cmd ChangeRestaurantAddressCommand) error {
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

	rest, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoRestaurantFound
	}
	if err != nil {
		return err
	}

	if err = rest.ChangeAddress(cmd.Address()); err != nil {
		return err
	}

	if err = uow.RestaurantRepository().Update(ctx, rest); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
