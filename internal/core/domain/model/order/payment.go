package order

import (
	"fmt"

	"foodcart/internal/pkg/errs"
)

// PaymentType is a closed enum of accepted payment methods.
// Like Status, every value carries a stable name and a display label.
type PaymentType int

const (
	// PaymentUnknown represents an invalid or undefined payment type.
	PaymentUnknown PaymentType = iota

	// PaymentCash means the customer pays the courier in cash on delivery.
	PaymentCash

	// PaymentOnline means the order was paid online at creation time.
	PaymentOnline
)

func getPaymentTypeStrings() map[PaymentType]string {
	return map[PaymentType]string{
		PaymentUnknown: "Unknown",
		PaymentCash:    "Cash",
		PaymentOnline:  "Online",
	}
}

func getPaymentTypeLabels() map[PaymentType]string {
	//nolint:exhaustive // PaymentUnknown is intentionally excluded as it's invalid
	return map[PaymentType]string{
		PaymentCash:   "Cash on delivery",
		PaymentOnline: "Online, at checkout",
	}
}

// ParsePaymentType converts a stable name ("Cash", "Online") to a PaymentType.
func ParsePaymentType(s string) (PaymentType, error) {
	for pt := range getPaymentTypeLabels() {
		if pt.String() == s {
			return pt, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause("payment type is invalid",
		fmt.Errorf("%q is not a valid payment type", s))
}

// Validate checks if the PaymentType value is valid.
func (p PaymentType) Validate() error {
	if _, ok := getPaymentTypeLabels()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment type is invalid",
			fmt.Errorf("%d is not a valid payment type", p))
	}
	return nil
}

// String returns the stable name of the payment type.
func (p PaymentType) String() string {
	if str, ok := getPaymentTypeStrings()[p]; ok {
		return str
	}
	return "Unknown"
}

// Label returns the human-readable display label for the payment type.
func (p PaymentType) Label() string {
	if label, ok := getPaymentTypeLabels()[p]; ok {
		return label
	}
	return "Unknown"
}
