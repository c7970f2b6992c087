package restaurant

import (
	"errors"

	"foodcart/internal/core/domain/model/kernel"
)

// ErrMenuItemIsNotConstructed is returned when a MenuItem instance was not
// created through the NewMenuItem factory method.
var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")

// MenuItem is an availability row linking a restaurant to a product.
// The (restaurant, product) pair is unique; duplicates are rejected by a
// uniqueness constraint at the persistence layer. Only rows with availability
// set participate in fulfillment matching.
type MenuItem struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	productID    kernel.UUID
	availability bool

	isConstructed bool
}

// NewMenuItem creates a new availability row for a (restaurant, product) pair.
func NewMenuItem(id kernel.UUID, restaurantID kernel.UUID, productID kernel.UUID, availability bool) (*MenuItem, error) {
	m := &MenuItem{
		isConstructed: true,
	}

	if err := errors.Join(
		id.Validate(),
		restaurantID.Validate(),
		productID.Validate(),
	); err != nil {
		return nil, err
	}

	m.id = id
	m.restaurantID = restaurantID
	m.productID = productID
	m.availability = availability
	return m, nil
}

// Validate ensures the MenuItem instance was properly constructed.
func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}

	return nil
}

// ID returns the row's unique identifier.
func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

// RestaurantID returns the restaurant side of the pair.
func (m *MenuItem) RestaurantID() kernel.UUID {
	return m.restaurantID
}

// ProductID returns the product side of the pair.
func (m *MenuItem) ProductID() kernel.UUID {
	return m.productID
}

// Available reports whether the restaurant currently offers the product.
func (m *MenuItem) Available() bool {
	return m.availability
}

// SetAvailability flips the availability flag.
func (m *MenuItem) SetAvailability(available bool) {
	m.availability = available
}
