package services

import (
	"testing"

	"foodcart/internal/core/domain/model/kernel"
	"foodcart/internal/core/domain/model/order"
	"foodcart/internal/core/domain/model/product"
	"foodcart/internal/core/domain/model/restaurant"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProduct(t *testing.T, name string) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), name, "main", decimal.NewFromInt(100))
	require.NoError(t, err)
	return p
}

func newOrderFor(t *testing.T, products ...*product.Product) *order.Order {
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

func newRestaurantAt(t *testing.T, name string, lat float64, lon float64) *restaurant.Restaurant {
	t.Helper()
	r, err := restaurant.NewRestaurant(kernel.NewUUID(), name, "Moscow, "+name, "+79000000000")
	require.NoError(t, err)
	loc, err := kernel.NewLocation(lat, lon)
	require.NoError(t, err)
	require.NoError(t, r.SetLocation(loc))
	return r
}

func newMenuItem(t *testing.T, r *restaurant.Restaurant, p *product.Product, available bool) *restaurant.MenuItem {
	t.Helper()
	mi, err := restaurant.NewMenuItem(kernel.NewUUID(), r.ID(), p.ID(), available)
	require.NoError(t, err)
	return mi
}

func TestMatchRequiresFullCoverage(t *testing.T) {
	burger := newProduct(t, "Burger")
	cola := newProduct(t, "Cola")
	ord := newOrderFor(t, burger, cola)

	full := newRestaurantAt(t, "Full", 55.75, 37.61)
	partial := newRestaurantAt(t, "Partial", 55.70, 37.50)

	menu := []*restaurant.MenuItem{
		newMenuItem(t, full, burger, true),
		newMenuItem(t, full, cola, true),
		newMenuItem(t, partial, burger, true),
	}

	options, err := NewFulfillmentMatcher().Match(ord, []*restaurant.Restaurant{full, partial}, menu)

	require.NoError(t, err)
	require.Len(t, options, 1)
	assert.True(t, options[0].Restaurant.IsEqual(full))
}

func TestMatchUnrelatedProductsDoNotDisqualify(t *testing.T) {
	burger := newProduct(t, "Burger")
	cola := newProduct(t, "Cola")
	dessert := newProduct(t, "Dessert")
	ord := newOrderFor(t, burger, cola)

	r := newRestaurantAt(t, "Large menu", 55.75, 37.61)
	menu := []*restaurant.MenuItem{
		newMenuItem(t, r, burger, true),
		newMenuItem(t, r, cola, true),
		newMenuItem(t, r, dessert, true),
	}

	options, err := NewFulfillmentMatcher().Match(ord, []*restaurant.Restaurant{r}, menu)

	require.NoError(t, err)
	assert.Len(t, options, 1)
}

func TestMatchIgnoresUnavailableItems(t *testing.T) {
	burger := newProduct(t, "Burger")
	ord := newOrderFor(t, burger)

	r := newRestaurantAt(t, "Closed kitchen", 55.75, 37.61)
	menu := []*restaurant.MenuItem{newMenuItem(t, r, burger, false)}

	options, err := NewFulfillmentMatcher().Match(ord, []*restaurant.Restaurant{r}, menu)

	require.NoError(t, err)
	assert.Empty(t, options)
}

func TestMatchQuantityIsIrrelevant(t *testing.T) {
	burger := newProduct(t, "Burger")
	ord := newOrderFor(t, burger, burger, burger)

	r := newRestaurantAt(t, "Single burger", 55.75, 37.61)
	menu := []*restaurant.MenuItem{newMenuItem(t, r, burger, true)}

	options, err := NewFulfillmentMatcher().Match(ord, []*restaurant.Restaurant{r}, menu)

	require.NoError(t, err)
	assert.Len(t, options, 1)
}

func TestMatchRanksByDistance(t *testing.T) {
	burger := newProduct(t, "Burger")
	ord := newOrderFor(t, burger)
	orderLoc, err := kernel.NewLocation(55.7558, 37.6173)
	require.NoError(t, err)
	require.NoError(t, ord.SetLocation(orderLoc))

	near := newRestaurantAt(t, "Near", 55.7560, 37.6175)
	far := newRestaurantAt(t, "Far", 56.0, 38.0)
	unresolved, err := restaurant.NewRestaurant(kernel.NewUUID(), "Unresolved", "Somewhere", "+79000000000")
	require.NoError(t, err)

	menu := []*restaurant.MenuItem{
		newMenuItem(t, far, burger, true),
		newMenuItem(t, unresolved, burger, true),
		newMenuItem(t, near, burger, true),
	}

	options, err := NewFulfillmentMatcher().Match(
		ord,
		[]*restaurant.Restaurant{far, unresolved, near},
		menu,
	)

	require.NoError(t, err)
	require.Len(t, options, 3)
	assert.True(t, options[0].Restaurant.IsEqual(near))
	assert.True(t, options[1].Restaurant.IsEqual(far))
	assert.True(t, options[2].Restaurant.IsEqual(unresolved))
	require.NotNil(t, options[0].DistanceKm)
	require.NotNil(t, options[1].DistanceKm)
	assert.Nil(t, options[2].DistanceKm)
	assert.Less(t, *options[0].DistanceKm, *options[1].DistanceKm)
}

func TestMatchZeroDistanceRanksFirst(t *testing.T) {
	burger := newProduct(t, "Burger")
	ord := newOrderFor(t, burger)
	loc, err := kernel.NewLocation(55.7558, 37.6173)
	require.NoError(t, err)
	require.NoError(t, ord.SetLocation(loc))

	colocated := newRestaurantAt(t, "Colocated", 55.7558, 37.6173)
	nearby := newRestaurantAt(t, "Nearby", 55.7600, 37.6200)

	menu := []*restaurant.MenuItem{
		newMenuItem(t, nearby, burger, true),
		newMenuItem(t, colocated, burger, true),
	}

	options, err := NewFulfillmentMatcher().Match(
		ord,
		[]*restaurant.Restaurant{nearby, colocated},
		menu,
	)

	require.NoError(t, err)
	require.Len(t, options, 2)
	assert.True(t, options[0].Restaurant.IsEqual(colocated))
	require.NotNil(t, options[0].DistanceKm)
	assert.Equal(t, 0.0, *options[0].DistanceKm)
}

func TestMatchUnresolvedOrderLocation(t *testing.T) {
	burger := newProduct(t, "Burger")
	ord := newOrderFor(t, burger)

	r := newRestaurantAt(t, "Somewhere", 55.75, 37.61)
	menu := []*restaurant.MenuItem{newMenuItem(t, r, burger, true)}

	options, err := NewFulfillmentMatcher().Match(ord, []*restaurant.Restaurant{r}, menu)

	require.NoError(t, err)
	require.Len(t, options, 1)
	assert.Nil(t, options[0].DistanceKm)
}

func TestMatchNoRestaurants(t *testing.T) {
	ord := newOrderFor(t, newProduct(t, "Burger"))

	options, err := NewFulfillmentMatcher().Match(ord, nil, nil)

	require.NoError(t, err)
	assert.Empty(t, options)
}

func TestMatchInvalidOrder(t *testing.T) {
	var ord order.Order

	_, err := NewFulfillmentMatcher().Match(&ord, nil, nil)

	assert.Error(t, err)
}
