// Package http exposes the application use cases over an echo REST API.
package http

import (
	"errors"
	"net/http"

	"foodcart/internal/core/application/usecases/commands"
	"foodcart/internal/core/application/usecases/queries"
	"foodcart/internal/core/domain/model/kernel"
	"foodcart/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	submitOrderHandler             commands.SubmitOrderCommandHandler
	assignRestaurantHandler        commands.AssignRestaurantCommandHandler
	changeDeliveryAddressHandler   commands.ChangeDeliveryAddressCommandHandler
	changeRestaurantAddressHandler commands.ChangeRestaurantAddressCommandHandler

	// Query handlers
	getOrdersHandler             queries.GetOrdersQueryHandler
	getFulfillmentOptionsHandler queries.GetFulfillmentOptionsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	submitOrderHandler commands.SubmitOrderCommandHandler,
	assignRestaurantHandler commands.AssignRestaurantCommandHandler,
	changeDeliveryAddressHandler commands.ChangeDeliveryAddressCommandHandler,
	changeRestaurantAddressHandler commands.ChangeRestaurantAddressCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getFulfillmentOptionsHandler queries.GetFulfillmentOptionsQueryHandler,
) *Server {
	return &Server{
		submitOrderHandler:             submitOrderHandler,
		assignRestaurantHandler:        assignRestaurantHandler,
		changeDeliveryAddressHandler:   changeDeliveryAddressHandler,
		changeRestaurantAddressHandler: changeRestaurantAddressHandler,
		getOrdersHandler:               getOrdersHandler,
		getFulfillmentOptionsHandler:   getFulfillmentOptionsHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.SubmitOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id/fulfillment", s.GetFulfillmentOptions)
	api.PUT("/orders/:id/restaurant", s.AssignRestaurant)
	api.PUT("/orders/:id/address", s.ChangeOrderAddress)
	api.PUT("/restaurants/:id/address", s.ChangeRestaurantAddress)
}

// ErrorResponse is the uniform error envelope for all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderLineRequest is a single (product, quantity) pair of an order intake.
type OrderLineRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// SubmitOrderRequest is the order intake payload.
type SubmitOrderRequest struct {
	FirstName   string             `json:"first_name"`
	LastName    string             `json:"last_name"`
	PhoneNumber string             `json:"phone_number"`
	Address     string             `json:"address"`
	PaymentType string             `json:"payment_type"`
	Lines       []OrderLineRequest `json:"lines"`
}

// SubmitOrderResponse carries the identifier of the accepted order.
type SubmitOrderResponse struct {
	ID string `json:"id"`
}

// OrderResponse is a single row of the order listing.
type OrderResponse struct {
	ID              string          `json:"id"`
	FirstName       string          `json:"first_name"`
	LastName        string          `json:"last_name"`
	PhoneNumber     string          `json:"phone_number"`
	DeliveryAddress string          `json:"delivery_address"`
	Status          string          `json:"status"`
	PaymentType     string          `json:"payment_type"`
	RestaurantID    *string         `json:"restaurant_id"`
	Comment         string          `json:"comment"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
}

// RestaurantOptionResponse is a restaurant able to fulfill an order.
type RestaurantOptionResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Address    string   `json:"address"`
	DistanceKm *float64 `json:"distance_km"`
}

// FulfillmentResponse is the fulfillment view of an order: either the assigned
// restaurant or the ranked candidate list.
type FulfillmentResponse struct {
	OrderID    string                     `json:"order_id"`
	Assigned   *RestaurantOptionResponse  `json:"assigned"`
	Candidates []RestaurantOptionResponse `json:"candidates"`
}

// AssignRestaurantRequest names the restaurant to assign to an order.
type AssignRestaurantRequest struct {
	RestaurantID string `json:"restaurant_id"`
}

// ChangeAddressRequest carries a new free-text address.
type ChangeAddressRequest struct {
	Address string `json:"address"`
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// SubmitOrder handles POST /api/v1/orders - accepts a new customer order.
func (s *Server) SubmitOrder(ctx echo.Context) error {
	var request SubmitOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	paymentType, err := order.ParsePaymentType(request.PaymentType)
	if err != nil {
		return badRequest(ctx, "Invalid payment type: "+request.PaymentType)
	}

	lines := make([]commands.OrderLine, 0, len(request.Lines))
	for _, line := range request.Lines {
		productID, idErr := kernel.UUIDFromString(line.ProductID)
		if idErr != nil {
			return badRequest(ctx, "Invalid product id: "+line.ProductID)
		}
		lines = append(lines, commands.OrderLine{
			ProductID: productID,
			Quantity:  line.Quantity,
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewSubmitOrderCommand(
		orderID,
		request.FirstName,
		request.LastName,
		request.PhoneNumber,
		request.Address,
		paymentType,
		lines,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.submitOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, commands.ErrProductNotFound) ||
			errors.Is(handleErr, commands.ErrProductNotAvailable) {
			return badRequest(ctx, handleErr.Error())
		}
		return internalError(ctx, "Failed to submit order")
	}

	return ctx.JSON(http.StatusCreated, SubmitOrderResponse{ID: orderID.String()})
}

// GetOrders handles GET /api/v1/orders - lists orders with their total amounts.
// The optional exclude_delivered=true query parameter hides completed orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	excludeDelivered := ctx.QueryParam("exclude_delivered") == "true"
	query := queries.NewGetOrdersQuery(excludeDelivered)

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		var restaurantID *string
		if o.RestaurantID != nil {
			id := o.RestaurantID.String()
			restaurantID = &id
		}

		response[i] = OrderResponse{
			ID:              o.ID.String(),
			FirstName:       o.FirstName,
			LastName:        o.LastName,
			PhoneNumber:     o.PhoneNumber,
			DeliveryAddress: o.DeliveryAddress,
			Status:          o.StatusLabel,
			PaymentType:     o.PaymentLabel,
			RestaurantID:    restaurantID,
			Comment:         o.Comment,
			TotalAmount:     o.TotalAmount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetFulfillmentOptions handles GET /api/v1/orders/:id/fulfillment.
func (s *Server) GetFulfillmentOptions(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetFulfillmentOptionsQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	view, err := s.getFulfillmentOptionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, queries.ErrOrderNotFound) {
			return notFound(ctx, "Order not found")
		}
		return internalError(ctx, "Failed to build fulfillment view")
	}

	response := FulfillmentResponse{
		OrderID: view.OrderID.String(),
	}
	if view.Assigned != nil {
		assigned := toRestaurantOptionResponse(*view.Assigned)
		response.Assigned = &assigned
	}
	if len(view.Candidates) > 0 {
		response.Candidates = make([]RestaurantOptionResponse, len(view.Candidates))
		for i, candidate := range view.Candidates {
			response.Candidates[i] = toRestaurantOptionResponse(candidate)
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AssignRestaurant handles PUT /api/v1/orders/:id/restaurant.
func (s *Server) AssignRestaurant(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request AssignRestaurantRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	restaurantID, err := kernel.UUIDFromString(request.RestaurantID)
	if err != nil {
		return badRequest(ctx, "Invalid restaurant id")
	}

	cmd, err := commands.NewAssignRestaurantCommand(orderID, restaurantID)
	if err != nil {
		return badRequest(ctx, "Invalid assignment data: "+err.Error())
	}

	if handleErr := s.assignRestaurantHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		switch {
		case errors.Is(handleErr, commands.ErrNoOrderFound):
			return notFound(ctx, "Order not found")
		case errors.Is(handleErr, commands.ErrNoRestaurantFound):
			return notFound(ctx, "Restaurant not found")
		default:
			return internalError(ctx, "Failed to assign restaurant")
		}
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeOrderAddress handles PUT /api/v1/orders/:id/address.
func (s *Server) ChangeOrderAddress(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request ChangeAddressRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeDeliveryAddressCommand(orderID, request.Address)
	if err != nil {
		return badRequest(ctx, "Invalid address data: "+err.Error())
	}

	if handleErr := s.changeDeliveryAddressHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, commands.ErrNoOrderFound) {
			return notFound(ctx, "Order not found")
		}
		return internalError(ctx, "Failed to change delivery address")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeRestaurantAddress handles PUT /api/v1/restaurants/:id/address.
func (s *Server) ChangeRestaurantAddress(ctx echo.Context) error {
	restaurantID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid restaurant id")
	}

	var request ChangeAddressRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeRestaurantAddressCommand(restaurantID, request.Address)
	if err != nil {
		return badRequest(ctx, "Invalid address data: "+err.Error())
	}

	if handleErr := s.changeRestaurantAddressHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, commands.ErrNoRestaurantFound) {
			return notFound(ctx, "Restaurant not found")
		}
		return internalError(ctx, "Failed to change restaurant address")
	}

	return ctx.NoContent(http.StatusNoContent)
}

func toRestaurantOptionResponse(option queries.RestaurantOption) RestaurantOptionResponse {
	return RestaurantOptionResponse{
		ID:         option.ID.String(),
		Name:       option.Name,
		Address:    option.Address,
		DistanceKm: option.DistanceKm,
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, ErrorResponse{
		Code:    http.StatusNotFound,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
