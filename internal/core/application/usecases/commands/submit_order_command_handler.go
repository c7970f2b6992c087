package commands

import (
	"context"
	"errors"

	"foodcart/internal/core/domain/model/kernel"
	"foodcart/internal/core/domain/model/order"
	"foodcart/internal/core/domain/model/product"
	"foodcart/internal/core/ports"
	"foodcart/internal/pkg/errs"
)

var (
	// ErrProductNotFound is returned when an order line references a product
	// that does not exist in the catalog.
	ErrProductNotFound = errors.New("product not found")

	// ErrProductNotAvailable is returned when an order line references a
	// product no restaurant currently offers.
	ErrProductNotAvailable = errors.New("product is not available at any restaurant")
)

// SubmitOrderCommandHandler handles the business logic for order intake.
// Verifies every requested product against the catalog and the live menus,
// locks line totals from current catalog prices, resolves the delivery address
// to coordinates, and persists the order with its line items atomically.
//
// A rejected intake persists nothing. An unresolved delivery address is
// tolerated: the order is accepted without coordinates.
type SubmitOrderCommandHandler struct {
	uowFactory UoWFactory
	geocoder   ports.Geocoder
}

// NewSubmitOrderCommandHandler creates a handler for order intake operations.
// Requires a UoWFactory for transactional persistence and a Geocoder for
// resolving delivery addresses.
func NewSubmitOrderCommandHandler(uowFactory UoWFactory, geocoder ports.Geocoder) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		uowFactory: uowFactory,
		geocoder:   geocoder,
	}
}

// Handle processes the order intake command.
// Returns ErrProductNotFound or ErrProductNotAvailable when a requested line
// cannot be served; any such rejection happens before anything is written.
func (h SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	products, err := h.loadProducts(ctx, uow.ProductRepository(), cmd.Lines())
	if err != nil {
		return err
	}

	if err = h.checkAvailability(ctx, uow.MenuRepository(), products); err != nil {
		return err
	}

	lineItems := make([]*order.LineItem, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		li, liErr := order.NewLineItem(kernel.NewUUID(), products[line.ProductID], line.Quantity)
		if liErr != nil {
			return liErr
		}
		lineItems = append(lineItems, li)
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.FirstName(),
		cmd.LastName(),
		cmd.PhoneNumber(),
		cmd.Address(),
		cmd.PaymentType(),
		lineItems,
	)
	if err != nil {
		return err
	}

	// Unresolved addresses and geocoder failures degrade silently.
	if location, geoErr := h.geocoder.Resolve(ctx, cmd.Address()); geoErr == nil && location != nil {
		if err = newOrder.SetLocation(*location); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// loadProducts fetches the distinct products referenced by the order lines.
// Every line must resolve to a catalog product.
func (h SubmitOrderCommandHandler) loadProducts(
	ctx context.Context,
	productRepo ports.ProductRepository,
	lines []OrderLine,
) (map[kernel.UUID]*product.Product, error) {
	distinct := make(map[kernel.UUID]struct{}, len(lines))
	ids := make([]kernel.UUID, 0, len(lines))
	for _, line := range lines {
		if _, ok := distinct[line.ProductID]; ok {
			continue
		}
		distinct[line.ProductID] = struct{}{}
		ids = append(ids, line.ProductID)
	}

	fetched, err := productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	products := make(map[kernel.UUID]*product.Product, len(fetched))
	for _, p := range fetched {
		products[p.ID()] = p
	}
	for _, id := range ids {
		if _, ok := products[id]; !ok {
			return nil, errs.NewObjectNotFoundErrorWithCause("productID", id, ErrProductNotFound)
		}
	}

	return products, nil
}

// checkAvailability verifies that some restaurant currently offers each product.
func (h SubmitOrderCommandHandler) checkAvailability(
	ctx context.Context,
	menuRepo ports.MenuRepository,
	products map[kernel.UUID]*product.Product,
) error {
	available, err := menuRepo.GetAllAvailable(ctx)
	if err != nil {
		return err
	}

	offered := make(map[kernel.UUID]struct{}, len(available))
	for _, item := range available {
		offered[item.ProductID()] = struct{}{}
	}

	for id := range products {
		if _, ok := offered[id]; !ok {
			return errs.NewObjectNotFoundErrorWithCause("productID", id, ErrProductNotAvailable)
		}
	}

	return nil
}
