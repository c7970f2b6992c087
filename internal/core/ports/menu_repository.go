package ports

import (
	"context"

	"foodcart/internal/core/domain/model/kernel"
	"foodcart/internal/core/domain/model/restaurant"
)

// MenuRepository defines the persistence contract for menu items, the links
// between restaurants and the products they can cook.
type MenuRepository interface {
	// Add persists a new menu item. The restaurant/product pair is unique.
	Add(ctx context.Context, item *restaurant.MenuItem) error

	// Update persists changes to an existing menu item (availability toggles).
	Update(ctx context.Context, item *restaurant.MenuItem) error

	// GetByRestaurant retrieves all menu items of one restaurant.
	GetByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*restaurant.MenuItem, error)

	// GetAllAvailable retrieves every menu item currently marked available.
	// This is the working set for fulfillment matching.
	GetAllAvailable(ctx context.Context) ([]*restaurant.MenuItem, error)
}
