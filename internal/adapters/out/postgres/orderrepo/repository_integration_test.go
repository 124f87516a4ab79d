package orderrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"orderdesk/internal/adapters/out/postgres/orderrepo"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"

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

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("Sharma Constructions", "manish.srivastava", false)

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.assertItemCount(2)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTrip() {
	ctx := context.Background()

	originalOrder := suite.createTestOrder("Gupta Traders", "vishal.sharma", true)
	suite.tracker.On("TrackAggregate", originalOrder.ID(), originalOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, originalOrder))

	retrievedOrder, err := suite.repository.Get(ctx, originalOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(originalOrder.ID(), retrievedOrder.ID())
	suite.Equal("Gupta Traders", retrievedOrder.CustomerName())
	suite.Equal("vishal.sharma", retrievedOrder.CreatedBy())
	suite.True(retrievedOrder.IsUrgent())
	suite.Equal("INR", retrievedOrder.Currency())
	suite.Equal("Plot 14, Okhla Phase II", retrievedOrder.Address())
	suite.Equal("07AABCU9603R1ZV", retrievedOrder.TaxID())
	suite.WithinDuration(originalOrder.CreatedAt(), retrievedOrder.CreatedAt(), time.Second)

	items := retrievedOrder.Items()
	suite.Require().Len(items, 2)
	suite.Equal("Cement", items[0].ProductName())
	suite.Equal(50, items[0].OrderedQty())
	suite.Equal("BAG", items[0].Unit())
	suite.InDelta(320.0, items[0].UnitPrice(), 0.001)
	suite.Equal(order.Pending, items[0].Status())
	suite.Nil(items[0].DispatchedQty())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrievedOrder, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrievedOrder)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByItemID_ReturnsOwningOrder() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("Mehta Infra", "manish.srivastava", false)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	itemID := testOrder.Items()[1].ID()

	retrievedOrder, err := suite.repository.GetByItemID(ctx, itemID)
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())

	_, err = retrievedOrder.Item(itemID)
	suite.Require().NoError(err)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByItemID_NonExistentItem_ReturnsNotFoundError() {
	ctx := context.Background()

	retrievedOrder, err := suite.repository.GetByItemID(ctx, kernel.NewUUID())

	suite.Nil(retrievedOrder)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_EditedItem_PersistsChanges() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("Sharma Constructions", "manish.srivastava", false)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	itemID := testOrder.Items()[0].ID()
	suite.Require().NoError(testOrder.EditItem(itemID, "White Cement", 75, "BAG", 410.0))

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrievedOrder, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	item, err := retrievedOrder.Item(itemID)
	suite.Require().NoError(err)
	suite.Equal("White Cement", item.ProductName())
	suite.Equal(75, item.OrderedQty())
	suite.InDelta(410.0, item.UnitPrice(), 0.001)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByCreator_FiltersOwnOrders() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	first := suite.createTestOrder("Sharma Constructions", "manish.srivastava", false)
	second := suite.createTestOrder("Gupta Traders", "manish.srivastava", false)
	foreign := suite.createTestOrder("Mehta Infra", "vishal.sharma", false)

	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))
	suite.Require().NoError(suite.repository.Add(ctx, foreign))

	ownOrders, err := suite.repository.GetAllByCreator(ctx, "manish.srivastava")
	suite.Require().NoError(err)
	suite.Len(ownOrders, 2)
	for _, o := range ownOrders {
		suite.Equal("manish.srivastava", o.CreatedBy())
	}

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllWithPendingItems_ExcludesFullyDispatchedOrders() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)

	pendingOrder := suite.createTestOrder("Sharma Constructions", "manish.srivastava", false)
	dispatchedOrder := suite.createTestOrder("Gupta Traders", "manish.srivastava", false)
	for _, item := range dispatchedOrder.Items() {
		suite.Require().NoError(
			dispatchedOrder.DispatchItem(item.ID(), item.OrderedQty(), "amit.jawla", time.Now()),
		)
	}

	suite.Require().NoError(suite.repository.Add(ctx, pendingOrder))
	suite.Require().NoError(suite.repository.Add(ctx, dispatchedOrder))

	withPending, err := suite.repository.GetAllWithPendingItems(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(withPending, 1)
	suite.Equal(pendingOrder.ID(), withPending[0].ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateItemDispatch_PendingItem_Succeeds() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("Sharma Constructions", "manish.srivastava", false)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	itemID := testOrder.Items()[0].ID()
	dispatchedAt := time.Now()

	err := suite.repository.UpdateItemDispatch(ctx, itemID, 30, "amit.jawla", dispatchedAt)
	suite.Require().NoError(err)

	retrievedOrder, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	item, err := retrievedOrder.Item(itemID)
	suite.Require().NoError(err)
	suite.True(item.IsDispatched())
	suite.Require().NotNil(item.DispatchedQty())
	suite.Equal(30, *item.DispatchedQty())
	suite.Equal(20, item.Shortfall())
	suite.Require().NotNil(item.DispatchedBy())
	suite.Equal("amit.jawla", *item.DispatchedBy())
	suite.Require().NotNil(item.DispatchedAt())
	suite.WithinDuration(dispatchedAt, *item.DispatchedAt(), time.Second)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateItemDispatch_AlreadyDispatched_ReturnsInvalidStateTransition() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("Sharma Constructions", "manish.srivastava", false)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	itemID := testOrder.Items()[0].ID()

	suite.Require().NoError(suite.repository.UpdateItemDispatch(ctx, itemID, 30, "amit.jawla", time.Now()))

	// Second dispatch of the same line loses the race
	err := suite.repository.UpdateItemDispatch(ctx, itemID, 20, "ajay.sharma", time.Now())
	suite.Require().Error(err)

	var transitionErr *errs.InvalidStateTransitionError
	suite.Require().ErrorAs(err, &transitionErr)

	// First dispatch record stays untouched
	retrievedOrder, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	item, err := retrievedOrder.Item(itemID)
	suite.Require().NoError(err)
	suite.Equal(30, *item.DispatchedQty())
	suite.Equal("amit.jawla", *item.DispatchedBy())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateItemDispatch_ConcurrentDispatchers_ExactlyOneWins() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("Sharma Constructions", "manish.srivastava", false)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	itemID := testOrder.Items()[0].ID()

	results := make(chan error, 2)
	var wg sync.WaitGroup
	for _, actor := range []string{"amit.jawla", "ajay.sharma"} {
		wg.Add(1)
		go func(actor string) {
			defer wg.Done()
			results <- suite.repository.UpdateItemDispatch(ctx, itemID, 30, actor, time.Now())
		}(actor)
	}
	wg.Wait()
	close(results)

	var wins, losses int
	for err := range results {
		if err == nil {
			wins++
			continue
		}
		var transitionErr *errs.InvalidStateTransitionError
		suite.Require().ErrorAs(err, &transitionErr)
		losses++
	}
	suite.Equal(1, wins)
	suite.Equal(1, losses)

	// The stored line carries exactly one dispatch record
	retrievedOrder, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	item, err := retrievedOrder.Item(itemID)
	suite.Require().NoError(err)
	suite.True(item.IsDispatched())
	suite.Require().NotNil(item.DispatchedQty())
	suite.Equal(30, *item.DispatchedQty())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateItemDispatch_NonExistentItem_ReturnsNotFoundError() {
	ctx := context.Background()

	err := suite.repository.UpdateItemDispatch(ctx, kernel.NewUUID(), 10, "amit.jawla", time.Now())
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

// createTestOrder creates a two-line pending order for the given customer
// and creator.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(
	customerName, createdBy string, urgent bool,
) *order.Order {
	firstItem, err := order.NewItem(kernel.NewUUID(), "Cement", 50, "BAG", 320.0)
	suite.Require().NoError(err)
	secondItem, err := order.NewItem(kernel.NewUUID(), "TMT Bars 12mm", 2, "TON", 54000.0)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		customerName,
		createdBy,
		time.Now(),
		urgent,
		"INR",
		"Plot 14, Okhla Phase II",
		"07AABCU9603R1ZV",
		[]*order.Item{firstItem, secondItem},
	)
	suite.Require().NoError(err)
	return testOrder
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

// assertItemCount verifies the number of order lines in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertItemCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderItemDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
