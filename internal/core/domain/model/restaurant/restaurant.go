package restaurant

import (
	"errors"
	"fmt"

	"foodcart/internal/core/domain/model/kernel"
	"foodcart/internal/pkg/errs"
)

// ErrRestaurantIsNotConstructed is returned when a Restaurant instance was not
// created through the NewRestaurant or RestoreRestaurant factory methods.
var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

// Restaurant represents a kitchen that can prepare orders. It is the aggregate
// root for menu availability.
//
// Restaurant follows these invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - Coordinates are optional and always derived from the address; a restaurant
//     whose address never resolved simply has no location
type Restaurant struct {
	// id is the unique identifier for the restaurant
	id kernel.UUID

	// name is the display name
	name string

	// address is the free-text postal address; source of the resolved location
	address string

	// contactPhone is the operator contact number (optional)
	contactPhone string

	// location holds the resolved coordinates, nil while unresolved
	location *kernel.Location

	// isConstructed ensures the restaurant was created via a constructor
	isConstructed bool
}

// NewRestaurant creates a new Restaurant instance with validation.
// The location starts absent; it is filled in once the address resolves.
func NewRestaurant(id kernel.UUID, name string, address string, contactPhone string) (*Restaurant, error) {
	r := &Restaurant{
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
	); err != nil {
		return nil, err
	}

	r.address = address
	r.contactPhone = contactPhone
	return r, nil
}

// RestoreRestaurant reconstructs a Restaurant from persistence, including its
// resolved location when one was stored.
func RestoreRestaurant(
	id kernel.UUID,
	name string,
	address string,
	contactPhone string,
	location *kernel.Location,
) (*Restaurant, error) {
	r, err := NewRestaurant(id, name, address, contactPhone)
	if err != nil {
		return nil, err
	}

	if location != nil {
		if err = location.Validate(); err != nil {
			return nil, err
		}
		loc := *location
		r.location = &loc
	}

	return r, nil
}

// Validate ensures the Restaurant instance was properly constructed.
func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}

	return nil
}

// IsEqual compares two restaurants by their unique identifiers.
func (r *Restaurant) IsEqual(other *Restaurant) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the restaurant's unique identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// Name returns the display name.
func (r *Restaurant) Name() string {
	return r.name
}

// Address returns the free-text postal address.
func (r *Restaurant) Address() string {
	return r.address
}

// ContactPhone returns the operator contact number.
func (r *Restaurant) ContactPhone() string {
	return r.contactPhone
}

// Location returns the resolved coordinates, or nil while the address is unresolved.
func (r *Restaurant) Location() *kernel.Location {
	return r.location
}

// ChangeAddress updates the postal address. The new address must be non-empty.
// Coordinates are deliberately left untouched: re-resolution happens at the
// persistence boundary, and an unresolved lookup keeps the previous (possibly
// stale) location.
func (r *Restaurant) ChangeAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}

	r.address = address
	return nil
}

// SetLocation stores freshly resolved coordinates for the current address.
func (r *Restaurant) SetLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}

	r.location = &location
	return nil
}

// String returns a short human-readable representation for logging.
func (r *Restaurant) String() string {
	return fmt.Sprintf("Restaurant(%s, %q)", r.id, r.name)
}

// ReconcileOnSave is the pre-commit hook applied by the persistence layer when
// an existing restaurant is updated. It is a pure function of (previous state,
// proposed state): it reports whether the address changed to a new non-empty
// value, in which case the caller must re-resolve coordinates and, on success,
// overwrite the stored location. An unresolved lookup keeps prior coordinates.
func ReconcileOnSave(prev *Restaurant, next *Restaurant) (needsGeocode bool) {
	if prev == nil || next == nil {
		return false
	}

	return next.address != "" && next.address != prev.address
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}
