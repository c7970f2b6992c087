package commands

import (
	"errors"

	"foodcart/internal/core/domain/model/kernel"
	"foodcart/internal/core/domain/model/order"
	"foodcart/internal/pkg/errs"
	"foodcart/internal/pkg/guard"
)

var (
	ErrSubmitOrderCommandIsNotConstructed = errors.New(
		"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
	)
	ErrFirstNameIsRequired = errors.New("first name is required")
	ErrLastNameIsRequired  = errors.New("last name is required")
	ErrPhoneIsRequired     = errors.New("phone number is required")
	ErrAddressIsRequired   = errors.New("address is required")
	ErrLinesAreRequired    = errors.New("at least one order line is required")
)

// OrderLine is one requested position of an order intake: a product and how
// many of it. Unit prices are never part of the intake; line totals are locked
// server-side from the catalog.
type OrderLine struct {
	ProductID kernel.UUID
	Quantity  int
}

// SubmitOrderCommand represents a request to accept a new customer order.
// Encapsulates the customer contact details, the delivery address, the payment
// method and the requested product lines.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewSubmitOrderCommand(orderID, "Ivan", "Petrov", "+79001234567",
//	    "Moscow, Tverskaya 1", order.PaymentCash,
//	    []OrderLine{{ProductID: burgerID, Quantity: 2}})
//	if err != nil {
//	    return fmt.Errorf("invalid order intake: %w", err)
//	}
//
//	handler := NewSubmitOrderCommandHandler(uowFactory, geocoder)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to submit order: %w", err)
//	}
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	firstName   string
	lastName    string
	phoneNumber string
	address     string
	paymentType order.PaymentType
	lines       []OrderLine

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a command to accept a new customer order.
// Validates the contact details, the payment type, and that every line
// references a valid product with a quantity in the accepted range.
func NewSubmitOrderCommand(
	orderID kernel.UUID,
	firstName string,
	lastName string,
	phoneNumber string,
	address string,
	paymentType order.PaymentType,
	lines []OrderLine,
) (SubmitOrderCommand, error) {
	cmd := SubmitOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setFirstName(firstName),
		cmd.setLastName(lastName),
		cmd.setPhoneNumber(phoneNumber),
		cmd.setAddress(address),
		cmd.setPaymentType(paymentType),
		cmd.setLines(lines),
	); err != nil {
		return SubmitOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitOrderCommandIsNotConstructed if validation fails.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c SubmitOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// FirstName returns the customer's first name.
func (c SubmitOrderCommand) FirstName() string {
	return c.firstName
}

// LastName returns the customer's last name.
func (c SubmitOrderCommand) LastName() string {
	return c.lastName
}

// PhoneNumber returns the customer contact number.
func (c SubmitOrderCommand) PhoneNumber() string {
	return c.phoneNumber
}

// Address returns the free-text delivery address.
func (c SubmitOrderCommand) Address() string {
	return c.address
}

// PaymentType returns the requested payment method.
func (c SubmitOrderCommand) PaymentType() order.PaymentType {
	return c.paymentType
}

// Lines returns the requested product lines.
func (c SubmitOrderCommand) Lines() []OrderLine {
	return c.lines
}

func (c *SubmitOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SubmitOrderCommand) setFirstName(firstName string) error {
	if firstName == "" {
		return ErrFirstNameIsRequired
	}

	c.firstName = firstName
	return nil
}

func (c *SubmitOrderCommand) setLastName(lastName string) error {
	if lastName == "" {
		return ErrLastNameIsRequired
	}

	c.lastName = lastName
	return nil
}

func (c *SubmitOrderCommand) setPhoneNumber(phoneNumber string) error {
	if phoneNumber == "" {
		return ErrPhoneIsRequired
	}

	c.phoneNumber = phoneNumber
	return nil
}

func (c *SubmitOrderCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}

func (c *SubmitOrderCommand) setPaymentType(paymentType order.PaymentType) error {
	if err := paymentType.Validate(); err != nil {
		return err
	}

	c.paymentType = paymentType
	return nil
}

func (c *SubmitOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrLinesAreRequired
	}

	for _, line := range lines {
		if err := line.ProductID.Validate(); err != nil {
			return err
		}
		if line.Quantity < order.QuantityMin || line.Quantity > order.QuantityMax {
			return errs.NewValueIsOutOfRangeError("quantity", line.Quantity, order.QuantityMin, order.QuantityMax)
		}
	}

	c.lines = lines
	return nil
}
