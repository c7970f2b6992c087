package commands

import (
	"errors"

	"foodcart/internal/core/domain/model/kernel"
	"foodcart/internal/pkg/guard"
)

var ErrChangeDeliveryAddressCommandIsNotConstructed = errors.New(
	"ChangeDeliveryAddressCommand must be created via NewChangeDeliveryAddressCommand constructor",
)

// ChangeDeliveryAddressCommand represents a request to redirect an order to a
// new delivery address. Coordinate re-resolution happens at the persistence
// boundary when the order is saved.
type ChangeDeliveryAddressCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	address string

	guard guard.ConstructorGuard
}

// NewChangeDeliveryAddressCommand creates a command to change an order's
// delivery address. The order identifier must be valid and the address non-empty.
func NewChangeDeliveryAddressCommand(orderID kernel.UUID, address string) (ChangeDeliveryAddressCommand, error) {
	cmd := ChangeDeliveryAddressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAddress(address),
	); err != nil {
		return ChangeDeliveryAddressCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeDeliveryAddressCommand) Validate() error {
	return c.guard.Validate(ErrChangeDeliveryAddressCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to redirect.
func (c ChangeDeliveryAddressCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Address returns the new delivery address.
func (c ChangeDeliveryAddressCommand) Address() string {
	return c.address
}

func (c *ChangeDeliveryAddressCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeDeliveryAddressCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}
