package services

import (
	"math"
	"sort"

	"foodcart/internal/core/domain/model/kernel"
	"foodcart/internal/core/domain/model/order"
	"foodcart/internal/core/domain/model/restaurant"
)

// FulfillmentOption is one restaurant able to cook an entire order, together
// with its distance to the delivery address.
type FulfillmentOption struct {
	// Restaurant is a qualifying candidate.
	Restaurant *restaurant.Restaurant

	// DistanceKm is the great-circle distance from the restaurant to the
	// delivery address in kilometers, rounded to three decimals. It is nil
	// when either side's coordinates are unresolved. Zero is a real distance,
	// not a sentinel.
	DistanceKm *float64
}

// FulfillmentMatcher is a domain service that finds the restaurants able to
// fulfill an order and ranks them by proximity to the delivery address.
//
// Qualification rule: a restaurant qualifies only if every distinct product in
// the order appears on its menu as an available item. Partial coverage is not
// ranked lower; it disqualifies. Quantities are irrelevant.
//
// Ranking: candidates are ordered by ascending distance. Candidates whose
// distance cannot be computed (either location unresolved) sort after all
// measurable ones. Ties keep their input order.
//
// Example usage:
//
//	matcher := services.NewFulfillmentMatcher()
//	options, err := matcher.Match(ord, restaurants, menu)
//	if err != nil {
//	    return err
//	}
//	for _, opt := range options {
//	    // opt.Restaurant can cook the whole order
//	}
type FulfillmentMatcher struct{}

// NewFulfillmentMatcher creates a new FulfillmentMatcher instance.
func NewFulfillmentMatcher() FulfillmentMatcher {
	return FulfillmentMatcher{}
}

// Match returns the restaurants whose available menu covers every distinct
// product of the order, ranked by distance to the delivery address.
//
// Parameters:
//   - ord: The order to fulfill (must be valid)
//   - restaurants: Candidate restaurants to evaluate
//   - menu: Menu items linking restaurants to products; only available
//     items count toward coverage
//
// An order referencing no products yields no candidates. An empty result means
// no single restaurant can cook the entire order.
func (m FulfillmentMatcher) Match(
	ord *order.Order,
	restaurants []*restaurant.Restaurant,
	menu []*restaurant.MenuItem,
) ([]FulfillmentOption, error) {
	if err := ord.Validate(); err != nil {
		return nil, err
	}

	wanted := make(map[kernel.UUID]struct{})
	for _, productID := range ord.DistinctProductIDs() {
		wanted[productID] = struct{}{}
	}
	if len(wanted) == 0 {
		return []FulfillmentOption{}, nil
	}

	covered := make(map[kernel.UUID]map[kernel.UUID]struct{})
	for _, item := range menu {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		if !item.Available() {
			continue
		}
		if _, ok := wanted[item.ProductID()]; !ok {
			continue
		}

		products, ok := covered[item.RestaurantID()]
		if !ok {
			products = make(map[kernel.UUID]struct{})
			covered[item.RestaurantID()] = products
		}
		products[item.ProductID()] = struct{}{}
	}

	options := make([]FulfillmentOption, 0, len(restaurants))
	for _, r := range restaurants {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		if len(covered[r.ID()]) != len(wanted) {
			continue
		}

		options = append(options, FulfillmentOption{
			Restaurant: r,
			DistanceKm: distanceBetween(ord.Location(), r.Location()),
		})
	}

	sort.SliceStable(options, func(i, j int) bool {
		return rankingDistance(options[i]) < rankingDistance(options[j])
	})

	return options, nil
}

// distanceBetween computes the distance in kilometers, or nil when either
// location is unresolved or invalid.
func distanceBetween(from *kernel.Location, to *kernel.Location) *float64 {
	if from == nil || to == nil {
		return nil
	}

	km, err := from.DistanceTo(*to)
	if err != nil {
		return nil
	}
	return &km
}

// rankingDistance maps an unmeasurable distance to +Inf so it sorts last.
func rankingDistance(opt FulfillmentOption) float64 {
	if opt.DistanceKm == nil {
		return math.Inf(1)
	}
	return *opt.DistanceKm
}
