package ports

import (
	"context"

	"foodcart/internal/core/domain/model/kernel"
	"foodcart/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status and fulfillment state.
type OrderRepository interface {
	// Add persists a new order aggregate with its line items atomically.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The implementation applies the order save-reconciliation rules against
	// the previously stored state: locked line totals are restored, the first
	// restaurant assignment forces the status, and a changed delivery address
	// triggers coordinate re-resolution.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its line items.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetFirstInSubmittedStatus retrieves the oldest order still waiting for a
	// restaurant assignment. Used by the dispatch workflow.
	GetFirstInSubmittedStatus(ctx context.Context) (*order.Order, error)
}
