package ports

import (
	"context"

	"foodcart/internal/core/domain/model/kernel"
	"foodcart/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for products.
type ProductRepository interface {
	// Add persists a new product.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product.
	// Price changes do not affect locked line totals on existing orders.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetByIDs retrieves the products with the given identifiers.
	// Missing identifiers are simply absent from the result; callers detect
	// them by comparing lengths.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error)
}
