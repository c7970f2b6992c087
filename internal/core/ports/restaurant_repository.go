// Package ports defines the driven-side contracts of the foodcart core:
// repository interfaces, the unit of work, and the geocoding gateway.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"foodcart/internal/core/domain/model/kernel"
	"foodcart/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for restaurant aggregates.
type RestaurantRepository interface {
	// Add persists a new restaurant.
	// The restaurant must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Update persists changes to an existing restaurant.
	// The implementation re-resolves coordinates when the address changed to a
	// new non-empty value; an unresolved lookup keeps the previous coordinates.
	Update(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Get retrieves a restaurant by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)

	// GetAll retrieves every restaurant.
	GetAll(ctx context.Context) ([]*restaurant.Restaurant, error)

	// Delete removes a restaurant together with its menu items. Orders that
	// referenced it survive with the executing-restaurant reference cleared.
	Delete(ctx context.Context, id kernel.UUID) error
}
