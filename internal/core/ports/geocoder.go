package ports

import (
	"context"

	"foodcart/internal/core/domain/model/kernel"
)

// Geocoder resolves free-text addresses to geographic coordinates.
//
// Resolve returns (nil, nil) when the provider answered but the address is
// unknown. Callers treat an unresolved address as a degraded state, not an
// error: the entity keeps whatever coordinates it had before. A non-nil error
// indicates the provider itself failed; implementations are free to fold
// provider failures into the unresolved case.
type Geocoder interface {
	Resolve(ctx context.Context, address string) (*kernel.Location, error)
}
