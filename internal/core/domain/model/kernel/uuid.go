package kernel

import (
	"fmt"

	"foodcart/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates that a UUID was not initialized through
// one of the constructor functions. Validate returns it for a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is the identifier value object shared by every aggregate in the model:
// orders, restaurants, products, and menu items all carry one. It wraps
// github.com/google/uuid so the rest of the domain never depends on the
// library directly.
//
// The zero value is invalid. Construct a UUID with NewUUID, UUIDFromString,
// or UUIDFromBytes; Validate reports whether a value went through one of them.
//
// UUID is immutable and safe to copy and compare.
//
// Example usage:
//
//	// Mint an identifier for a new aggregate
//	productID := kernel.NewUUID()
//
//	// Parse one arriving from the HTTP layer
//	restaurantID, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
//	if err != nil {
//	    // handle error
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random UUID (version 4). This is the only way
// identifiers for fresh aggregates are minted.
//
// Example:
//
//	restaurantID := kernel.NewUUID()
//	fmt.Println(restaurantID.String()) // e.g., "550e8400-e29b-41d4-a716-446655440000"
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses a UUID from its string representation.
// It accepts the formats uuid.Parse accepts, including:
//   - "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
//   - "{6ba7b810-9dad-11d1-80b4-00c04fd430c8}"
//   - "urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8"
//
// Returns an error for anything else. Used when identifiers arrive as text,
// typically from request paths or persisted rows.
//
// Example:
//
//	productID, err := kernel.UUIDFromString(req.ProductID)
//	if err != nil {
//	    return fmt.Errorf("invalid product ID: %w", err)
//	}
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes creates a UUID from a 16-byte slice and rejects the nil UUID.
// Useful when identifiers are stored or transmitted as raw binary.
//
// Example:
//
//	raw := []byte{0x6b, 0xa7, 0xb8, 0x10, 0x9d, 0xad, 0x11, 0xd1,
//	              0x80, 0xb4, 0x00, 0xc0, 0x4f, 0xd4, 0x30, 0xc8}
//	id, err := kernel.UUIDFromBytes(raw)
//	if err != nil {
//	    return fmt.Errorf("invalid UUID bytes: %w", err)
//	}
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
// A zero value renders as "00000000-0000-0000-0000-000000000000".
//
// Example:
//
//	id := kernel.NewUUID()
//	logger.Info("order submitted", "orderID", id.String())
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying uuid.UUID value, not a byte slice; take
// Bytes()[:] when a slice is needed. Intended for the persistence layer and
// other integration points that talk to the library directly.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether two UUIDs carry the same value.
//
// Example:
//
//	if item.RestaurantID().IsEqual(restaurant.ID()) {
//	    // menu item belongs to this restaurant
//	}
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the zero value and nil for
// anything produced by a constructor. Aggregate factories call it on every
// identifier they receive.
//
// Example:
//
//	func NewProduct(id kernel.UUID, name string, price decimal.Decimal) (*Product, error) {
//	    if err := id.Validate(); err != nil {
//	        return nil, fmt.Errorf("invalid product ID: %w", err)
//	    }
//	    // ...
//	}
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
