package queries

import (
	"context"
	"errors"

	"foodcart/internal/core/domain/services"
	"foodcart/internal/core/ports"
	"foodcart/internal/pkg/errs"
)

// ErrOrderNotFound is returned when the fulfillment view is requested for an
// order that does not exist.
var ErrOrderNotFound = errors.New("order not found")

// GetFulfillmentOptionsQueryHandler builds the fulfillment view of an order.
// For an assigned order it returns the executing restaurant with its distance
// to the delivery address. For an unassigned one it runs the fulfillment
// matcher over the live menus and returns the ranked candidate list.
type GetFulfillmentOptionsQueryHandler struct {
	orderRepo      ports.OrderRepository
	restaurantRepo ports.RestaurantRepository
	menuRepo       ports.MenuRepository
}

// NewGetFulfillmentOptionsQueryHandler creates a handler for fulfillment views.
// The repositories are used read-only; no transaction is opened.
func NewGetFulfillmentOptionsQueryHandler(
	orderRepo ports.OrderRepository,
	restaurantRepo ports.RestaurantRepository,
	menuRepo ports.MenuRepository,
) GetFulfillmentOptionsQueryHandler {
	return GetFulfillmentOptionsQueryHandler{
		orderRepo:      orderRepo,
		restaurantRepo: restaurantRepo,
		menuRepo:       menuRepo,
	}
}

// Handle executes the fulfillment view query.
// Returns ErrOrderNotFound when the order does not exist.
func (h GetFulfillmentOptionsQueryHandler) Handle(
	ctx context.Context,
	query GetFulfillmentOptionsQuery,
) (GetFulfillmentOptionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetFulfillmentOptionsQueryResponse{}, err
	}

	ord, err := h.orderRepo.Get(ctx, query.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return GetFulfillmentOptionsQueryResponse{}, ErrOrderNotFound
	}
	if err != nil {
		return GetFulfillmentOptionsQueryResponse{}, err
	}

	resp := GetFulfillmentOptionsQueryResponse{OrderID: ord.ID()}

	if assignedID := ord.Restaurant(); assignedID != nil {
		rest, restErr := h.restaurantRepo.Get(ctx, *assignedID)
		if restErr != nil {
			return GetFulfillmentOptionsQueryResponse{}, restErr
		}

		option := RestaurantOption{
			ID:      rest.ID(),
			Name:    rest.Name(),
			Address: rest.Address(),
		}
		if ord.Location() != nil && rest.Location() != nil {
			if km, distErr := ord.Location().DistanceTo(*rest.Location()); distErr == nil {
				option.DistanceKm = &km
			}
		}
		resp.Assigned = &option
		return resp, nil
	}

	restaurants, err := h.restaurantRepo.GetAll(ctx)
	if err != nil {
		return GetFulfillmentOptionsQueryResponse{}, err
	}

	menu, err := h.menuRepo.GetAllAvailable(ctx)
	if err != nil {
		return GetFulfillmentOptionsQueryResponse{}, err
	}

	options, err := services.NewFulfillmentMatcher().Match(ord, restaurants, menu)
	if err != nil {
		return GetFulfillmentOptionsQueryResponse{}, err
	}

	resp.Candidates = make([]RestaurantOption, 0, len(options))
	for _, opt := range options {
		resp.Candidates = append(resp.Candidates, RestaurantOption{
			ID:         opt.Restaurant.ID(),
			Name:       opt.Restaurant.Name(),
			Address:    opt.Restaurant.Address(),
			DistanceKm: opt.DistanceKm,
		})
	}

	return resp, nil
}
