package commands_test

import (
	"testing"

	"foodcart/internal/core/domain/model/kernel"
	"foodcart/internal/core/domain/model/order"
	"foodcart/internal/core/domain/model/product"
	"foodcart/internal/core/domain/model/restaurant"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func makeProduct(t *testing.T, name string, price int64) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), name, "main", decimal.NewFromInt(price))
	require.NoError(t, err)
	return p
}

func makeRestaurant(t *testing.T, name string) *restaurant.Restaurant {
	t.Helper()
	r, err := restaurant.NewRestaurant(kernel.NewUUID(), name, "Moscow, "+name, "+79000000000")
	require.NoError(t, err)
	return r
}

func makeMenuItem(t *testing.T, r *restaurant.Restaurant, p *product.Product) *restaurant.MenuItem {
	t.Helper()
	mi, err := restaurant.NewMenuItem(kernel.NewUUID(), r.ID(), p.ID(), true)
	require.NoError(t, err)
	return mi
}

func makeOrder(t *testing.T, products ...*product.Product) *order.Order {
	t.Helper()
	lineItems := make([]*order.LineItem, 0, len(products))
	for _, p := range products {
		li, err := order.NewLineItem(kernel.NewUUID(), p, 1)
		require.NoError(t, err)
		lineItems = append(lineItems, li)
	}
	o, err := order.NewOrder(
		kernel.NewUUID(),
		"Ivan", "Petrov", "+79001234567",
		"Moscow, Tverskaya 1",
		order.PaymentCash,
		lineItems,
	)
	require.NoError(t, err)
	return o
}
