package order

import (
	"fmt"

	"foodcart/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	Submitted ──> InProgress ──> InDelivery ──> Delivered
//
// Delivered is terminal. The only automatic transition is Submitted -> InProgress,
// fired when an executing restaurant is first assigned; the remaining transitions
// are operator-driven field writes.
//
// Status is a closed tagged variant: every value carries both a stable name
// (String) and a human-readable display label (Label), so no runtime
// name-to-value lookup is needed.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Submitted is the initial status when an order is first accepted.
	// Orders in this status are waiting for a restaurant assignment.
	Submitted

	// InProgress indicates an executing restaurant is preparing the order.
	InProgress

	// InDelivery indicates the order has left the restaurant and is on its way.
	InDelivery

	// Delivered indicates the order has reached the customer.
	// This is a final state with no further transitions allowed.
	Delivered
)

// getStatusStrings returns a map of Status values to their stable names.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Submitted:  "Submitted",
		InProgress: "InProgress",
		InDelivery: "InDelivery",
		Delivered:  "Delivered",
	}
}

// getStatusLabels returns a map of only valid Status values to the labels
// shown to operators and customers.
func getStatusLabels() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Submitted:  "Accepted, pending",
		InProgress: "Being prepared",
		InDelivery: "Out for delivery",
		Delivered:  "Delivered",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Submitted, InProgress, InDelivery, Delivered.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusLabels()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the stable name of the status ("Submitted", "InProgress", ...).
// This method implements the fmt.Stringer interface and is safe to call on any
// Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Label returns the human-readable display label for the status.
// Invalid values yield "Unknown".
func (s Status) Label() string {
	if label, ok := getStatusLabels()[s]; ok {
		return label
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are defined for the status.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// ValidateCanHaveRestaurant validates the consistency between order status and
// restaurant assignment. An order with an executing restaurant must have left
// the initial Submitted status; the automatic assignment rule guarantees this,
// so a violation indicates corrupted state.
//
// An order without a restaurant may be in any status: the executing restaurant
// reference is cleared when a restaurant is deleted, and the order survives as
// a history entry.
func (s Status) ValidateCanHaveRestaurant(hasRestaurant bool) error {
	if hasRestaurant && s == Submitted {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status for an order with an executing restaurant", s))
	}

	return nil
}
