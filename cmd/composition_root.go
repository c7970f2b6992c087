package cmd

import (
	"log/slog"

	"foodcart/internal/adapters/out/geo"
	"foodcart/internal/adapters/out/postgres"
	"foodcart/internal/core/application/usecases/commands"
	"foodcart/internal/core/application/usecases/queries"
	"foodcart/internal/core/ports"
	"foodcart/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	geocoder   ports.Geocoder
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	geocoder := geo.NewYandexGeocoder(
		config.GeoBaseURL,
		config.GeoAPIKey,
		config.GeoTimeout,
		logger,
	)

	return CompositionRoot{
		gormDB:     gormDB,
		geocoder:   geocoder,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB, geocoder),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitOrderCommandHandler(f, c.geocoder)
}

func (c *CompositionRoot) CreateAssignRestaurantCommandHandler() commands.AssignRestaurantCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignRestaurantCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeDeliveryAddressCommandHandler() commands.ChangeDeliveryAddressCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeDeliveryAddressCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeRestaurantAddressCommandHandler() commands.ChangeRestaurantAddressCommandHandler {
	var f commands.RestaurantUoWFactory = FuncRestaurantUoWFactory(func() commands.RestaurantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeRestaurantAddressCommandHandler(f)
}

func (c *CompositionRoot) CreateDispatchOrderCommandHandler() commands.DispatchOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetFulfillmentOptionsQueryHandler() queries.GetFulfillmentOptionsQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewGetFulfillmentOptionsQueryHandler(
		uow.OrderRepository(),
		uow.RestaurantRepository(),
		uow.MenuRepository(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateDispatchOrderCommandHandler(), c.logger)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncRestaurantUoWFactory func() commands.RestaurantUoW

func (f FuncRestaurantUoWFactory) Create() commands.RestaurantUoW {
	return f()
}
