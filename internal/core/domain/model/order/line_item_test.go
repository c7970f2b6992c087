package order

import (
	"testing"

	"foodcart/internal/core/domain/model/kernel"
	"foodcart/internal/core/domain/model/product"
	"foodcart/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLineItemLocksTotal(t *testing.T) {
	prod, err := product.NewProduct(kernel.NewUUID(), "Burger", "main", decimal.NewFromInt(100))
	require.NoError(t, err)

	li, err := NewLineItem(kernel.NewUUID(), prod, 2)

	require.NoError(t, err)
	assert.NoError(t, li.Validate())
	assert.True(t, li.ProductID().IsEqual(prod.ID()))
	assert.Equal(t, 2, li.Quantity())
	assert.True(t, li.LineTotal().Equal(decimal.NewFromInt(200)))
}

func TestNewLineItemKeepsTotalAfterPriceChange(t *testing.T) {
	prod, err := product.NewProduct(kernel.NewUUID(), "Burger", "main", decimal.NewFromInt(100))
	require.NoError(t, err)

	li, err := NewLineItem(kernel.NewUUID(), prod, 1)
	require.NoError(t, err)

	require.NoError(t, prod.SetPrice(decimal.NewFromInt(500)))

	assert.True(t, li.LineTotal().Equal(decimal.NewFromInt(100)))
}

func TestNewLineItemValidation(t *testing.T) {
	prod, err := product.NewProduct(kernel.NewUUID(), "Burger", "main", decimal.NewFromInt(100))
	require.NoError(t, err)

	t.Run("invalid id", func(t *testing.T) {
		_, err := NewLineItem(kernel.UUID{}, prod, 1)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("nil product", func(t *testing.T) {
		_, err := NewLineItem(kernel.NewUUID(), nil, 1)
		assert.Error(t, err)
	})

	t.Run("quantity below minimum", func(t *testing.T) {
		_, err := NewLineItem(kernel.NewUUID(), prod, 0)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("quantity above maximum", func(t *testing.T) {
		_, err := NewLineItem(kernel.NewUUID(), prod, QuantityMax+1)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestRestoreLineItem(t *testing.T) {
	id := kernel.NewUUID()
	productID := kernel.NewUUID()
	total := decimal.NewFromFloat(123.45)

	li, err := RestoreLineItem(id, productID, 3, total)

	require.NoError(t, err)
	assert.True(t, li.ID().IsEqual(id))
	assert.True(t, li.ProductID().IsEqual(productID))
	assert.Equal(t, 3, li.Quantity())
	assert.True(t, li.LineTotal().Equal(total))
}

func TestLineItemValidateZeroValue(t *testing.T) {
	var li LineItem
	assert.Error(t, li.Validate())

	var nilItem *LineItem
	assert.Error(t, nilItem.Validate())
}
