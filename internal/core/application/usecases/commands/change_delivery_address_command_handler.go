package commands

import (
	"context"
	"errors"

	"foodcart/internal/pkg/errs"
)

// ChangeDeliveryAddressCommandHandler handles order address changes.
// The mutation itself only touches the free-text address; the repository
// re-resolves coordinates on save and keeps the previous ones when the new
// address cannot be resolved.
type ChangeDeliveryAddressCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeDeliveryAddressCommandHandler creates a handler for order address changes.
func NewChangeDeliveryAddressCommandHandler(uowFactory OrderUoWFactory) ChangeDeliveryAddressCommandHandler {
	return ChangeDeliveryAddressCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the address change command.
// Returns ErrNoOrderFound when the order does not exist.
func (h ChangeDeliveryAddressCommandHandler) Handle(ctx context.Context, cmd ChangeDeliveryAddressCommand) error {
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

	if err = ord.ChangeDeliveryAddress(cmd.Address()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
