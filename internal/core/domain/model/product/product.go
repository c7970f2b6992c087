// Package product provides the catalog entity for the foodcart system.
// Products are long-lived reference data: their current price is the source
// that order line items snapshot from at creation time, so a later price
// change never affects already-placed orders.
package product

import (
	"errors"

	"foodcart/internal/core/domain/model/kernel"
	"foodcart/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrProductIsNotConstructed is returned when a Product instance was not created
// through the NewProduct or RestoreProduct factory methods.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product represents a catalog item that restaurants may offer.
//
// Product follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a non-empty name
//   - Price must be non-negative
type Product struct {
	// id is the unique identifier for the product
	id kernel.UUID

	// name is the customer-facing product name
	name string

	// category groups products on the menu ("Burgers", "Drinks", ...)
	category string

	// description is optional marketing text
	description string

	// price is the current unit price; line items snapshot it at creation
	price decimal.Decimal

	// special marks the product as a special offer
	special bool

	// isConstructed ensures the product was created via a constructor
	isConstructed bool
}

// NewProduct creates a new Product instance with validation.
//
// Parameters:
//   - id: Unique identifier for the product (must be valid UUID)
//   - name: Customer-facing name (must not be empty)
//   - category: Menu category (may be empty)
//   - price: Current unit price (must not be negative)
//
// Returns the created product or a validation error.
func NewProduct(id kernel.UUID, name string, category string, price decimal.Decimal) (*Product, error) {
	p := &Product{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}

	p.category = category
	return p, nil
}

// RestoreProduct reconstructs a Product from persistence.
// All invariants are re-validated so corrupted rows cannot enter the domain.
func RestoreProduct(
	id kernel.UUID,
	name string,
	category string,
	description string,
	price decimal.Decimal,
	special bool,
) (*Product, error) {
	p, err := NewProduct(id, name, category, price)
	if err != nil {
		return nil, err
	}

	p.description = description
	p.special = special
	return p, nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}

	return nil
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the customer-facing product name.
func (p *Product) Name() string {
	return p.name
}

// Category returns the menu category.
func (p *Product) Category() string {
	return p.category
}

// Description returns the optional marketing text.
func (p *Product) Description() string {
	return p.description
}

// Price returns the current unit price.
func (p *Product) Price() decimal.Decimal {
	return p.price
}

// Special reports whether the product is marked as a special offer.
func (p *Product) Special() bool {
	return p.special
}

// SetPrice updates the unit price. Existing order line items are not affected:
// their totals were locked when the lines were created.
func (p *Product) SetPrice(price decimal.Decimal) error {
	return p.setPrice(price)
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price",
			errors.New("price must not be negative"))
	}
	p.price = price
	return nil
}
