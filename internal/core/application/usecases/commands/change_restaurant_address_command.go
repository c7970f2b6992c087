package commands

import (
	"errors"

	"foodcart/internal/core/domain/model/kernel"
	"foodcart/internal/pkg/guard"
)

var ErrChangeRestaurantAddressCommandIsNotConstructed = errors.New(
	"ChangeRestaurantAddressCommand must be created via NewChangeRestaurantAddressCommand constructor",
)

// ChangeRestaurantAddressCommand represents a request to move a restaurant to
// a new address. Like order address changes, coordinate re-resolution happens
// at the persistence boundary.
type ChangeRestaurantAddressCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	address      string

	guard guard.ConstructorGuard
}

// NewChangeRestaurantAddressCommand creates a command to change a restaurant's
// address. The restaurant identifier must be valid and the address non-empty.
func NewChangeRestaurantAddressCommand(restaurantID kernel.UUID, address string) (ChangeRestaurantAddressCommand, error) {
	cmd := ChangeRestaurantAddressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRestaurantID(restaurantID),
		cmd.setAddress(address),
	); err != nil {
		return ChangeRestaurantAddressCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeRestaurantAddressCommand) Validate() error {
	return c.guard.Validate(ErrChangeRestaurantAddressCommandIsNotConstructed)
}

// RestaurantID returns the identifier of the restaurant to move.
func (c ChangeRestaurantAddressCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Address returns the new restaurant address.
func (c ChangeRestaurantAddressCommand) Address() string {
	return c.address
}

func (c *ChangeRestaurantAddressCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *ChangeRestaurantAddressCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}
