package order

import (
	"errors"
	"time"

	"foodcart/internal/core/domain/model/kernel"
	"foodcart/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order represents a customer order in the foodcart system. It is the aggregate
// root that owns its line items and manages the fulfillment lifecycle from
// submission through delivery.
//
// Order follows these invariants:
//   - Must have a valid unique identifier, customer name, phone, and delivery address
//   - Must contain at least one line item; line items never exist outside an order
//   - Status transitions follow the Submitted -> InProgress -> InDelivery -> Delivered chain
//   - An executing restaurant may only be present once the order left Submitted
//   - Delivery coordinates are derived from the address, never set independently
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// firstName and lastName identify the customer
	firstName string
	lastName  string

	// phoneNumber is the customer contact number
	phoneNumber string

	// deliveryAddress is the free-text destination address
	deliveryAddress string

	// location holds the resolved delivery coordinates, nil while unresolved
	location *kernel.Location

	// status is the current state in the fulfillment lifecycle
	status Status

	// paymentType records how the order is paid
	paymentType PaymentType

	// restaurantID is the executing restaurant (nil until one is assigned)
	restaurantID *kernel.UUID

	// createdAt is the submission timestamp
	createdAt time.Time

	// calledAt is when the operator confirmed the order by phone (optional)
	calledAt *time.Time

	// deliveredAt is when the order reached the customer (optional)
	deliveredAt *time.Time

	// comment is free operator text
	comment string

	// lineItems are the ordered positions with locked totals
	lineItems []*LineItem

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in the Submitted status.
// The order and its line items form one aggregate and are persisted atomically.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - firstName, lastName: Customer name (both required)
//   - phoneNumber: Customer contact number (required)
//   - deliveryAddress: Free-text destination address (required)
//   - paymentType: Payment method (must be valid)
//   - lineItems: At least one line item created via NewLineItem
func NewOrder(
	id kernel.UUID,
	firstName string,
	lastName string,
	phoneNumber string,
	deliveryAddress string,
	paymentType PaymentType,
	lineItems []*LineItem,
) (*Order, error) {
	o := &Order{
		status:        Submitted,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setFirstName(firstName),
		o.setLastName(lastName),
		o.setPhoneNumber(phoneNumber),
		o.setDeliveryAddress(deliveryAddress),
		o.setPaymentType(paymentType),
		o.setLineItems(lineItems),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence.
// All invariants are re-validated, including the status/restaurant consistency rule.
func RestoreOrder(
	id kernel.UUID,
	firstName string,
	lastName string,
	phoneNumber string,
	deliveryAddress string,
	location *kernel.Location,
	status Status,
	paymentType PaymentType,
	restaurantID *kernel.UUID,
	createdAt time.Time,
	calledAt *time.Time,
	deliveredAt *time.Time,
	comment string,
	lineItems []*LineItem,
) (*Order, error) {
	o, err := NewOrder(id, firstName, lastName, phoneNumber, deliveryAddress, paymentType, lineItems)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if err = status.ValidateCanHaveRestaurant(restaurantID != nil); err != nil {
		return nil, err
	}
	if restaurantID != nil {
		if err = restaurantID.Validate(); err != nil {
			return nil, err
		}
		rID := *restaurantID
		o.restaurantID = &rID
	}
	if location != nil {
		if err = location.Validate(); err != nil {
			return nil, err
		}
		loc := *location
		o.location = &loc
	}

	o.status = status
	o.createdAt = createdAt
	o.calledAt = calledAt
	o.deliveredAt = deliveredAt
	o.comment = comment
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// FirstName returns the customer's first name.
func (o *Order) FirstName() string {
	return o.firstName
}

// LastName returns the customer's last name.
func (o *Order) LastName() string {
	return o.lastName
}

// PhoneNumber returns the customer contact number.
func (o *Order) PhoneNumber() string {
	return o.phoneNumber
}

// DeliveryAddress returns the free-text destination address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// Location returns the resolved delivery coordinates, or nil while unresolved.
func (o *Order) Location() *kernel.Location {
	return o.location
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentType returns the payment method.
func (o *Order) PaymentType() PaymentType {
	return o.paymentType
}

// Restaurant returns the executing restaurant's ID, or nil if none is assigned.
func (o *Order) Restaurant() *kernel.UUID {
	return o.restaurantID
}

// CreatedAt returns the submission timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// CalledAt returns the phone-confirmation timestamp, or nil.
func (o *Order) CalledAt() *time.Time {
	return o.calledAt
}

// DeliveredAt returns the delivery timestamp, or nil.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// Comment returns the free operator text.
func (o *Order) Comment() string {
	return o.comment
}

// LineItems returns the ordered positions.
func (o *Order) LineItems() []*LineItem {
	return o.lineItems
}

// TotalAmount returns the sum of the locked line totals.
func (o *Order) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, li := range o.lineItems {
		total = total.Add(li.LineTotal())
	}
	return total
}

// DistinctProductIDs returns the distinct set of products referenced by the
// order's line items, preserving first-occurrence order. Quantity is irrelevant:
// fulfillment matching cares only about product-set coverage.
func (o *Order) DistinctProductIDs() []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(o.lineItems))
	ids := make([]kernel.UUID, 0, len(o.lineItems))
	for _, li := range o.lineItems {
		if _, ok := seen[li.ProductID()]; ok {
			continue
		}
		seen[li.ProductID()] = struct{}{}
		ids = append(ids, li.ProductID())
	}
	return ids
}

// AssignRestaurant sets the executing restaurant.
//
// The absent -> present edge fires the automatic status rule: the order is
// force-set to InProgress, overriding whatever status it carried. Reassigning
// between two restaurants does not retrigger the rule.
func (o *Order) AssignRestaurant(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	if o.restaurantID == nil {
		o.status = InProgress
	}

	o.restaurantID = &restaurantID
	return nil
}

// ClearRestaurant removes the executing restaurant reference.
// Used when a restaurant is deleted: the order survives as a history entry.
func (o *Order) ClearRestaurant() {
	o.restaurantID = nil
}

// SetStatus applies an operator-driven status write. The status must be valid
// and consistent with the restaurant assignment; ordering between the
// operator-driven states is not enforced here.
func (o *Order) SetStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if err := status.ValidateCanHaveRestaurant(o.restaurantID != nil); err != nil {
		return err
	}

	o.status = status
	return nil
}

// ChangeDeliveryAddress updates the destination address. The new address must
// be non-empty. Coordinates are left untouched: re-resolution happens at the
// persistence boundary, and an unresolved lookup keeps the previous (possibly
// stale) location.
func (o *Order) ChangeDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}

	o.deliveryAddress = address
	return nil
}

// SetLocation stores freshly resolved delivery coordinates.
func (o *Order) SetLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}

	o.location = &location
	return nil
}

// MarkCalled records the phone-confirmation timestamp.
func (o *Order) MarkCalled(at time.Time) {
	t := at.UTC()
	o.calledAt = &t
}

// MarkDelivered records the delivery timestamp.
func (o *Order) MarkDelivered(at time.Time) {
	t := at.UTC()
	o.deliveredAt = &t
}

// SetComment updates the free operator text.
func (o *Order) SetComment(comment string) {
	o.comment = comment
}

// ReconcileOnSave is the pre-commit hook applied by the persistence layer when
// an existing order is updated. It is a pure function of (previous state,
// proposed state) that corrects the proposed state in place:
//
//   - every line item that already existed gets its stored line total restored,
//     silently discarding any attempted overwrite;
//   - the executing-restaurant absent -> present edge force-sets the status to
//     InProgress, overriding a caller-supplied status in the same update.
//
// It reports whether the delivery address changed to a new non-empty value, in
// which case the caller must re-resolve coordinates and, on success, overwrite
// the stored location. An unresolved lookup keeps prior coordinates.
func ReconcileOnSave(prev *Order, next *Order) (needsGeocode bool) {
	if prev == nil || next == nil {
		return false
	}

	lockedTotals := make(map[kernel.UUID]decimal.Decimal, len(prev.lineItems))
	for _, li := range prev.lineItems {
		lockedTotals[li.ID()] = li.LineTotal()
	}
	for _, li := range next.lineItems {
		if total, ok := lockedTotals[li.ID()]; ok {
			li.restoreTotal(total)
		}
	}

	if prev.restaurantID == nil && next.restaurantID != nil {
		next.status = InProgress
	}

	return next.deliveryAddress != "" && next.deliveryAddress != prev.deliveryAddress
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setFirstName(firstName string) error {
	if firstName == "" {
		return errs.NewValueIsRequiredError("first name")
	}
	o.firstName = firstName
	return nil
}

func (o *Order) setLastName(lastName string) error {
	if lastName == "" {
		return errs.NewValueIsRequiredError("last name")
	}
	o.lastName = lastName
	return nil
}

func (o *Order) setPhoneNumber(phoneNumber string) error {
	if phoneNumber == "" {
		return errs.NewValueIsRequiredError("phone number")
	}
	o.phoneNumber = phoneNumber
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setPaymentType(paymentType PaymentType) error {
	if err := paymentType.Validate(); err != nil {
		return err
	}
	o.paymentType = paymentType
	return nil
}

func (o *Order) setLineItems(lineItems []*LineItem) error {
	if len(lineItems) == 0 {
		return errs.NewValueIsRequiredError("line items")
	}

	for _, li := range lineItems {
		if err := li.Validate(); err != nil {
			return err
		}
	}

	o.lineItems = lineItems
	return nil
}
