package order

import (
	"errors"

	"foodcart/internal/core/domain/model/kernel"
	"foodcart/internal/core/domain/model/product"
	"foodcart/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	// QuantityMin is the minimum quantity of a single line item.
	QuantityMin = 1
	// QuantityMax is the maximum quantity of a single line item.
	QuantityMax = 1000
)

// ErrLineItemIsNotConstructed is returned when a LineItem instance was not
// created through the NewLineItem or RestoreLineItem factory methods.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is an ordered product position inside an Order. The line total
// (quantity times the product's unit price) is captured once at creation and
// is immutable afterwards: the persistence layer silently restores the stored
// value on any attempted overwrite, so the price can never drift even if the
// underlying catalog price changes.
//
// Note the total is a line total, not a per-unit price.
type LineItem struct {
	// id is the unique identifier for the line item
	id kernel.UUID

	// productID references the ordered product
	productID kernel.UUID

	// quantity is the number of units, within [QuantityMin..QuantityMax]
	quantity int

	// lineTotal is quantity x unit price, snapshotted at creation
	lineTotal decimal.Decimal

	// isConstructed ensures the line item was created via a constructor
	isConstructed bool
}

// NewLineItem creates a line item for the given product, locking the line total
// from the product's current unit price. This is the only place the total is
// ever computed for a new line.
func NewLineItem(id kernel.UUID, prod *product.Product, quantity int) (*LineItem, error) {
	if err := prod.Validate(); err != nil {
		return nil, err
	}

	li := &LineItem{
		isConstructed: true,
	}

	if err := errors.Join(
		li.setID(id),
		li.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	li.productID = prod.ID()
	li.lineTotal = prod.Price().Mul(decimal.NewFromInt(int64(quantity)))
	return li, nil
}

// RestoreLineItem reconstructs a line item from persistence with its stored
// locked total. The total is taken as-is; it was computed by NewLineItem when
// the line was first created.
func RestoreLineItem(
	id kernel.UUID,
	productID kernel.UUID,
	quantity int,
	lineTotal decimal.Decimal,
) (*LineItem, error) {
	li := &LineItem{
		isConstructed: true,
	}

	if err := errors.Join(
		li.setID(id),
		li.setQuantity(quantity),
		productID.Validate(),
	); err != nil {
		return nil, err
	}

	li.productID = productID
	li.lineTotal = lineTotal
	return li, nil
}

// Validate ensures the LineItem instance was properly constructed.
func (li *LineItem) Validate() error {
	if li == nil || !li.isConstructed {
		return ErrLineItemIsNotConstructed
	}

	return nil
}

// ID returns the line item's unique identifier.
func (li *LineItem) ID() kernel.UUID {
	return li.id
}

// ProductID returns the identifier of the ordered product.
func (li *LineItem) ProductID() kernel.UUID {
	return li.productID
}

// Quantity returns the number of ordered units.
func (li *LineItem) Quantity() int {
	return li.quantity
}

// LineTotal returns the locked total for the line (quantity x unit price at creation).
func (li *LineItem) LineTotal() decimal.Decimal {
	return li.lineTotal
}

// restoreTotal overwrites the line total with the previously stored value.
// Used exclusively by the save-time reconcile hook; there is no public setter.
func (li *LineItem) restoreTotal(total decimal.Decimal) {
	li.lineTotal = total
}

func (li *LineItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	li.id = id
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity < QuantityMin || quantity > QuantityMax {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, QuantityMin, QuantityMax)
	}
	li.quantity = quantity
	return nil
}
