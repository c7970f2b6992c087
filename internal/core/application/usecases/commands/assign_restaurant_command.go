package commands

import (
	"errors"

	"foodcart/internal/core/domain/model/kernel"
	"foodcart/internal/pkg/guard"
)

var ErrAssignRestaurantCommandIsNotConstructed = errors.New(
	"AssignRestaurantCommand must be created via NewAssignRestaurantCommand constructor",
)

// AssignRestaurantCommand represents an operator's decision to hand an order
// to a specific restaurant for preparation.
//
// Example:
//
//	cmd, err := NewAssignRestaurantCommand(orderID, restaurantID)
//	if err != nil {
//	    return err
//	}
//	handler := NewAssignRestaurantCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to assign restaurant: %w", err)
//	}
type AssignRestaurantCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignRestaurantCommand creates a command to assign an executing restaurant.
// Both identifiers must be valid.
func NewAssignRestaurantCommand(orderID kernel.UUID, restaurantID kernel.UUID) (AssignRestaurantCommand, error) {
	cmd := AssignRestaurantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRestaurantID(restaurantID),
	); err != nil {
		return AssignRestaurantCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrAssignRestaurantCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to assign.
func (c AssignRestaurantCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RestaurantID returns the identifier of the executing restaurant.
func (c AssignRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

func (c *AssignRestaurantCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignRestaurantCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}
