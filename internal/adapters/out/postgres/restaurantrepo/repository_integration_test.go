package restaurantrepo_test

import (
	"context"
	"testing"
	"time"

	"foodcart/internal/adapters/out/postgres/menurepo"
	"foodcart/internal/adapters/out/postgres/orderrepo"
	"foodcart/internal/adapters/out/postgres/restaurantrepo"
	"foodcart/internal/core/domain/model/kernel"
	"foodcart/internal/core/domain/model/restaurant"
	"foodcart/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// MockGeocoder is a mock implementation of the Geocoder port.
type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Resolve(ctx context.Context, address string) (*kernel.Location, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*kernel.Location), args.Error(1)
}

// RestaurantRepositoryIntegrationTestSuite provides integration tests for
// RestaurantRepository using PostgreSQL containers.
type RestaurantRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *restaurantrepo.GormRestaurantRepository
	tracker    *MockAggregateTracker
	geocoder   *MockGeocoder
}

func (suite *RestaurantRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&restaurantrepo.RestaurantDTO{},
		&menurepo.MenuItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
	))
}

func (suite *RestaurantRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE order_line_items, orders, menu_items, restaurants").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.geocoder = new(MockGeocoder)
	suite.repository = restaurantrepo.NewGormRestaurantRepository(suite.db, suite.tracker, suite.geocoder)
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RestaurantRepositoryIntegrationTestSuite) createTestRestaurant(name string, address string) *restaurant.Restaurant {
	r, err := restaurant.NewRestaurant(kernel.NewUUID(), name, address, "+79991112233")
	suite.Require().NoError(err)
	return r
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TestAdd_ResolvesAddress() {
	ctx := context.Background()

	loc, err := kernel.NewLocation(55.7558, 37.6173)
	suite.Require().NoError(err)
	suite.geocoder.On("Resolve", mock.Anything, "Moscow, Tverskaya 1").Return(&loc, nil).Once()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Once()

	rest := suite.createTestRestaurant("Pizza Place", "Moscow, Tverskaya 1")
	suite.Require().NoError(suite.repository.Add(ctx, rest))

	loaded, err := suite.repository.Get(ctx, rest.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(loaded.Location())
	equal, err := loaded.Location().IsEqual(loc)
	suite.Require().NoError(err)
	suite.Require().True(equal)
	suite.geocoder.AssertExpectations(suite.T())
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TestAdd_UnresolvedAddressStaysWithoutLocation() {
	ctx := context.Background()

	suite.geocoder.On("Resolve", mock.Anything, "Nowhere").Return(nil, nil).Once()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Once()

	rest := suite.createTestRestaurant("Ghost Kitchen", "Nowhere")
	suite.Require().NoError(suite.repository.Add(ctx, rest))

	loaded, err := suite.repository.Get(ctx, rest.ID())
	suite.Require().NoError(err)
	suite.Require().Nil(loaded.Location())
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TestGetAll_OrderedByName() {
	ctx := context.Background()

	suite.geocoder.On("Resolve", mock.Anything, mock.Anything).Return(nil, nil)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestRestaurant("Sushi Bar", "Addr 2")))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestRestaurant("Burger Joint", "Addr 1")))

	restaurants, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(restaurants, 2)
	suite.Require().Equal("Burger Joint", restaurants[0].Name())
	suite.Require().Equal("Sushi Bar", restaurants[1].Name())
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TestUpdate_AddressChangeResolvesAgain() {
	ctx := context.Background()

	oldLoc, err := kernel.NewLocation(55.7558, 37.6173)
	suite.Require().NoError(err)
	newLoc, err := kernel.NewLocation(56.8587, 35.9176)
	suite.Require().NoError(err)

	suite.geocoder.On("Resolve", mock.Anything, "Moscow, Tverskaya 1").Return(&oldLoc, nil).Once()
	suite.geocoder.On("Resolve", mock.Anything, "Tver, Sovetskaya 10").Return(&newLoc, nil).Once()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	rest := suite.createTestRestaurant("Pizza Place", "Moscow, Tverskaya 1")
	suite.Require().NoError(suite.repository.Add(ctx, rest))

	loaded, err := suite.repository.Get(ctx, rest.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.ChangeAddress("Tver, Sovetskaya 10"))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	reloaded, err := suite.repository.Get(ctx, rest.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(reloaded.Location())
	equal, err := reloaded.Location().IsEqual(newLoc)
	suite.Require().NoError(err)
	suite.Require().True(equal)
	suite.geocoder.AssertExpectations(suite.T())
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TestUpdate_UnresolvedKeepsPriorCoordinates() {
	ctx := context.Background()

	oldLoc, err := kernel.NewLocation(55.7558, 37.6173)
	suite.Require().NoError(err)

	suite.geocoder.On("Resolve", mock.Anything, "Moscow, Tverskaya 1").Return(&oldLoc, nil).Once()
	suite.geocoder.On("Resolve", mock.Anything, "Unknown street").Return(nil, nil).Once()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	rest := suite.createTestRestaurant("Pizza Place", "Moscow, Tverskaya 1")
	suite.Require().NoError(suite.repository.Add(ctx, rest))

	loaded, err := suite.repository.Get(ctx, rest.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.ChangeAddress("Unknown street"))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	reloaded, err := suite.repository.Get(ctx, rest.ID())
	suite.Require().NoError(err)
	suite.Require().Equal("Unknown street", reloaded.Address())
	suite.Require().NotNil(reloaded.Location())
	equal, err := reloaded.Location().IsEqual(oldLoc)
	suite.Require().NoError(err)
	suite.Require().True(equal)
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TestDelete_ClearsMenuAndOrderReferences() {
	ctx := context.Background()

	suite.geocoder.On("Resolve", mock.Anything, mock.Anything).Return(nil, nil)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	rest := suite.createTestRestaurant("Pizza Place", "Moscow, Tverskaya 1")
	suite.Require().NoError(suite.repository.Add(ctx, rest))

	// Seed a menu item and an order pointing at the restaurant.
	restID := rest.ID().Bytes()
	suite.Require().NoError(suite.db.Exec(
		"INSERT INTO menu_items (id, restaurant_id, product_id, availability) VALUES (?, ?, ?, TRUE)",
		kernel.NewUUID().Bytes(), restID, kernel.NewUUID().Bytes()).Error)
	orderID := kernel.NewUUID().Bytes()
	suite.Require().NoError(suite.db.Exec(
		`INSERT INTO orders (id, first_name, last_name, phone_number, delivery_address,
		 status, payment_type, restaurant_id, created_at, comment)
		 VALUES (?, 'Ivan', 'Petrov', '+79001234567', 'Moscow', 2, 1, ?, NOW(), '')`,
		orderID, restID).Error)

	suite.Require().NoError(suite.repository.Delete(ctx, rest.ID()))

	_, err := suite.repository.Get(ctx, rest.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	var menuCount int64
	suite.Require().NoError(suite.db.Table("menu_items").Count(&menuCount).Error)
	suite.Require().Zero(menuCount)

	var refCount int64
	suite.Require().NoError(suite.db.Table("orders").
		Where("restaurant_id IS NOT NULL").Count(&refCount).Error)
	suite.Require().Zero(refCount)
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TestDelete_NotFound() {
	err := suite.repository.Delete(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestRestaurantRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RestaurantRepositoryIntegrationTestSuite))
}
