package commands

import (
	"errors"

	"foodcart/internal/pkg/guard"
)

var ErrDispatchOrderCommandIsNotConstructed = errors.New(
	"DispatchOrderCommand must be created via NewDispatchOrderCommand constructor",
)

// DispatchOrderCommand triggers automated fulfillment dispatch: the oldest
// order still waiting for a restaurant is matched against the live menus and
// assigned to the nearest restaurant able to cook it entirely.
//
// Example:
//
//	cmd := NewDispatchOrderCommand()
//	handler := NewDispatchOrderCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("No orders to dispatch or no matching restaurant: %v", err)
//	}
type DispatchOrderCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchOrderCommand creates a command to trigger fulfillment dispatch.
// This is a parameterless command that processes one pending order.
func NewDispatchOrderCommand() DispatchOrderCommand {
	return DispatchOrderCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrDispatchOrderCommandIsNotConstructed if validation fails.
func (c *DispatchOrderCommand) Validate() error {
	return c.guard.Validate(ErrDispatchOrderCommandIsNotConstructed)
}
