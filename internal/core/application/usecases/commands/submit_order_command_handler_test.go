package commands_test

import (
	"errors"
	"testing"

	"foodcart/internal/core/application/usecases/commands"
	"foodcart/internal/core/domain/model/kernel"
	"foodcart/internal/core/domain/model/order"
	"foodcart/internal/core/domain/model/product"
	"foodcart/internal/core/domain/model/restaurant"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func submitCommand(t *testing.T, lines []commands.OrderLine) commands.SubmitOrderCommand {
	t.Helper()
	cmd, err := commands.NewSubmitOrderCommand(
		kernel.NewUUID(),
		"Ivan", "Petrov", "+79001234567",
		"Moscow, Tverskaya 1",
		order.PaymentCash,
		lines,
	)
	require.NoError(t, err)
	return cmd
}

func TestSubmitOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	burger := makeProduct(t, "Burger", 100)
	cola := makeProduct(t, "Cola", 50)
	rest := makeRestaurant(t, "Grill")
	menu := []*restaurant.MenuItem{
		makeMenuItem(t, rest, burger),
		makeMenuItem(t, rest, cola),
	}

	cmd := submitCommand(t, []commands.OrderLine{
		{ProductID: burger.ID(), Quantity: 2},
		{ProductID: cola.ID(), Quantity: 1},
	})

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	menuRepo := new(MockMenuRepository)
	uow := new(MockUoW)
	geocoder := new(MockGeocoder)
	loc, err := kernel.NewLocation(55.7558, 37.6173)
	require.NoError(t, err)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	uow.On("MenuRepository").Return(menuRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	productRepo.On("GetByIDs", mock.Anything, mock.Anything).
		Return([]*product.Product{burger, cola}, nil).Once()
	menuRepo.On("GetAllAvailable", mock.Anything).Return(menu, nil).Once()
	geocoder.On("Resolve", mock.Anything, "Moscow, Tverskaya 1").Return(&loc, nil).Once()
	orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) {
			saved := args.Get(1).(*order.Order)
			require.True(t, saved.TotalAmount().Equal(decimal.NewFromInt(250)))
			require.Equal(t, order.Submitted, saved.Status())
			require.NotNil(t, saved.Location())
		}).
		Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitOrderCommandHandler(factory, geocoder)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	menuRepo.AssertExpectations(t)
	geocoder.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSubmitOrderCommandHandler_Handle_UnresolvedAddress(t *testing.T) {
	ctx := t.Context()

	burger := makeProduct(t, "Burger", 100)
	rest := makeRestaurant(t, "Grill")
	menu := []*restaurant.MenuItem{makeMenuItem(t, rest, burger)}

	cmd := submitCommand(t, []commands.OrderLine{{ProductID: burger.ID(), Quantity: 1}})

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	menuRepo := new(MockMenuRepository)
	uow := new(MockUoW)
	geocoder := new(MockGeocoder)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	uow.On("MenuRepository").Return(menuRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	productRepo.On("GetByIDs", mock.Anything, mock.Anything).
		Return([]*product.Product{burger}, nil).Once()
	menuRepo.On("GetAllAvailable", mock.Anything).Return(menu, nil).Once()
	geocoder.On("Resolve", mock.Anything, mock.Anything).Return(nil, nil).Once()
	orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) {
			saved := args.Get(1).(*order.Order)
			require.Nil(t, saved.Location())
		}).
		Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitOrderCommandHandler(factory, geocoder)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
}

func TestSubmitOrderCommandHandler_Handle_ProductNotFound(t *testing.T) {
	ctx := t.Context()

	cmd := submitCommand(t, []commands.OrderLine{{ProductID: kernel.NewUUID(), Quantity: 1}})

	productRepo := new(MockProductRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	productRepo.On("GetByIDs", mock.Anything, mock.Anything).
		Return([]*product.Product{}, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitOrderCommandHandler(factory, new(MockGeocoder))
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrProductNotFound)
	uow.AssertExpectations(t)
}

func TestSubmitOrderCommandHandler_Handle_ProductNotAvailable(t *testing.T) {
	ctx := t.Context()

	burger := makeProduct(t, "Burger", 100)
	cmd := submitCommand(t, []commands.OrderLine{{ProductID: burger.ID(), Quantity: 1}})

	productRepo := new(MockProductRepository)
	menuRepo := new(MockMenuRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	uow.On("MenuRepository").Return(menuRepo).Once()
	productRepo.On("GetByIDs", mock.Anything, mock.Anything).
		Return([]*product.Product{burger}, nil).Once()
	menuRepo.On("GetAllAvailable", mock.Anything).
		Return([]*restaurant.MenuItem{}, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitOrderCommandHandler(factory, new(MockGeocoder))
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrProductNotAvailable)
	uow.AssertExpectations(t)
}

func TestSubmitOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.SubmitOrderCommand{} // not constructed properly

	h := commands.NewSubmitOrderCommandHandler(new(MockUoWFactory), new(MockGeocoder))
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
}

func TestSubmitOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()

	burger := makeProduct(t, "Burger", 100)
	rest := makeRestaurant(t, "Grill")
	menu := []*restaurant.MenuItem{makeMenuItem(t, rest, burger)}
	cmd := submitCommand(t, []commands.OrderLine{{ProductID: burger.ID(), Quantity: 1}})

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	menuRepo := new(MockMenuRepository)
	uow := new(MockUoW)
	geocoder := new(MockGeocoder)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	uow.On("MenuRepository").Return(menuRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	productRepo.On("GetByIDs", mock.Anything, mock.Anything).
		Return([]*product.Product{burger}, nil).Once()
	menuRepo.On("GetAllAvailable", mock.Anything).Return(menu, nil).Once()
	geocoder.On("Resolve", mock.Anything, mock.Anything).Return(nil, nil).Once()
	orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
		Return(errors.New("add error")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitOrderCommandHandler(factory, geocoder)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertExpectations(t)
}

func TestNewSubmitOrderCommandValidation(t *testing.T) {
	burger := makeProduct(t, "Burger", 100)
	validLines := []commands.OrderLine{{ProductID: burger.ID(), Quantity: 1}}

	tests := []struct {
		name      string
		firstName string
		lastName  string
		phone     string
		address   string
		payment   order.PaymentType
		lines     []commands.OrderLine
	}{
		{"empty first name", "", "Petrov", "+7900", "Moscow", order.PaymentCash, validLines},
		{"empty last name", "Ivan", "", "+7900", "Moscow", order.PaymentCash, validLines},
		{"empty phone", "Ivan", "Petrov", "", "Moscow", order.PaymentCash, validLines},
		{"empty address", "Ivan", "Petrov", "+7900", "", order.PaymentCash, validLines},
		{"unknown payment", "Ivan", "Petrov", "+7900", "Moscow", order.PaymentUnknown, validLines},
		{"no lines", "Ivan", "Petrov", "+7900", "Moscow", order.PaymentCash, nil},
		{"zero quantity", "Ivan", "Petrov", "+7900", "Moscow", order.PaymentCash,
			[]commands.OrderLine{{ProductID: burger.ID(), Quantity: 0}}},
		{"quantity too large", "Ivan", "Petrov", "+7900", "Moscow", order.PaymentCash,
			[]commands.OrderLine{{ProductID: burger.ID(), Quantity: order.QuantityMax + 1}}},
		{"invalid product id", "Ivan", "Petrov", "+7900", "Moscow", order.PaymentCash,
			[]commands.OrderLine{{Quantity: 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewSubmitOrderCommand(
				kernel.NewUUID(), tt.firstName, tt.lastName, tt.phone, tt.address, tt.payment, tt.lines,
			)
			require.Error(t, err)
		})
	}
}
