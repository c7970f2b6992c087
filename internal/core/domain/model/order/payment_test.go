package order

import (
	"testing"

	"foodcart/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentTypeValidate(t *testing.T) {
	assert.NoError(t, PaymentCash.Validate())
	assert.NoError(t, PaymentOnline.Validate())
	assert.Error(t, PaymentUnknown.Validate())
	assert.Error(t, PaymentType(7).Validate())
}

func TestParsePaymentType(t *testing.T) {
	pt, err := ParsePaymentType("Cash")
	require.NoError(t, err)
	assert.Equal(t, PaymentCash, pt)

	pt, err = ParsePaymentType("Online")
	require.NoError(t, err)
	assert.Equal(t, PaymentOnline, pt)

	_, err = ParsePaymentType("Barter")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestPaymentTypeLabels(t *testing.T) {
	assert.Equal(t, "Cash on delivery", PaymentCash.Label())
	assert.Equal(t, "Online, at checkout", PaymentOnline.Label())
	assert.Equal(t, "Cash", PaymentCash.String())
	assert.Equal(t, "Online", PaymentOnline.String())
	assert.Equal(t, "Unknown", PaymentUnknown.String())
}
