package product_test

import (
	"testing"

	"foodcart/internal/core/domain/model/kernel"
	"foodcart/internal/core/domain/model/product"
	"foodcart/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("should create product with valid data", func(t *testing.T) {
		id := kernel.NewUUID()

		p, err := product.NewProduct(id, "Margherita", "Pizza", decimal.NewFromInt(100))

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(id))
		assert.Equal(t, "Margherita", p.Name())
		assert.Equal(t, "Pizza", p.Category())
		assert.True(t, p.Price().Equal(decimal.NewFromInt(100)))
		assert.False(t, p.Special())
	})

	t.Run("should allow zero price", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), "Tap water", "Drinks", decimal.Zero)

		require.NoError(t, err)
		assert.True(t, p.Price().IsZero())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "", "Pizza", decimal.NewFromInt(100))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject negative price", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "Margherita", "Pizza", decimal.NewFromInt(-1))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject invalid id", func(t *testing.T) {
		_, err := product.NewProduct(kernel.UUID{}, "Margherita", "Pizza", decimal.NewFromInt(100))

		require.Error(t, err)
	})
}

func TestRestoreProduct(t *testing.T) {
	t.Run("should restore full product state", func(t *testing.T) {
		id := kernel.NewUUID()

		p, err := product.RestoreProduct(id, "Margherita", "Pizza", "Classic", decimal.NewFromFloat(99.90), true)

		require.NoError(t, err)
		assert.Equal(t, "Classic", p.Description())
		assert.True(t, p.Special())
	})

	t.Run("should re-validate invariants", func(t *testing.T) {
		_, err := product.RestoreProduct(kernel.NewUUID(), "", "", "", decimal.NewFromInt(1), false)

		require.Error(t, err)
	})
}

func TestProduct_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var p product.Product

		require.ErrorIs(t, p.Validate(), product.ErrProductIsNotConstructed)
	})

	t.Run("nil is invalid", func(t *testing.T) {
		var p *product.Product

		require.ErrorIs(t, p.Validate(), product.ErrProductIsNotConstructed)
	})
}

func TestProduct_IsEqual(t *testing.T) {
	id := kernel.NewUUID()
	p1, _ := product.NewProduct(id, "Margherita", "Pizza", decimal.NewFromInt(100))
	p2, _ := product.NewProduct(id, "Renamed", "Pizza", decimal.NewFromInt(120))
	p3, _ := product.NewProduct(kernel.NewUUID(), "Margherita", "Pizza", decimal.NewFromInt(100))

	assert.True(t, p1.IsEqual(p2), "same id means same product")
	assert.False(t, p1.IsEqual(p3))
	assert.False(t, p1.IsEqual(nil))
}
