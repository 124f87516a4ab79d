package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "orderdesk/internal/adapters/out/postgres"
	"orderdesk/internal/adapters/out/postgres/orderrepo"
	"orderdesk/internal/adapters/out/postgres/userrepo"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}, &userrepo.UserDTO{})
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items, users").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository(), "First instance should provide order repository")
	suite.NotNil(uow1.UserRepository(), "First instance should provide user repository")
	suite.NotNil(uow2.OrderRepository(), "Second instance should provide order repository")
	suite.NotNil(uow2.UserRepository(), "Second instance should provide user repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies commit and rollback without an
// active transaction fail loudly.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().Error(uow.Commit(ctx), "Commit without begin should fail")
	suite.Require().Error(uow.Rollback(ctx), "Rollback without begin should fail")
}

// TestUnitOfWork_CommittedOrderIsVisible verifies a committed order write
// survives the transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommittedOrderIsVisible() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Commit(ctx))

	// Visible through a fresh unit of work
	fresh := suite.factory.Create()
	retrieved, err := fresh.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrieved.ID())
	suite.Len(retrieved.Items(), 2)
}

// TestUnitOfWork_RolledBackOrderIsGone verifies a rolled back write leaves
// no rows behind.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RolledBackOrderIsGone() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Rollback(ctx))

	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(0), count)

	var itemCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderItemDTO{}).Count(&itemCount).Error)
	suite.Equal(int64(0), itemCount)
}

// TestUnitOfWork_MultiRepositoryTransaction verifies order and user writes
// commit or roll back together.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MultiRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder()
	testUser := suite.createTestUser("manish.srivastava")

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.UserRepository().Add(ctx, testUser))
	suite.Require().NoError(uow.Rollback(ctx))

	var orderCount, userCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&orderCount).Error)
	suite.Require().NoError(suite.db.Model(&userrepo.UserDTO{}).Count(&userCount).Error)
	suite.Equal(int64(0), orderCount, "Order write should roll back")
	suite.Equal(int64(0), userCount, "User write should roll back")
}

// TestUnitOfWork_WithoutTransaction verifies repositories work on the bare
// connection when no transaction was begun.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testUser := suite.createTestUser("amit.jawla")

	suite.Require().NoError(uow.UserRepository().Add(ctx, testUser))

	retrieved, err := uow.UserRepository().GetByUsername(ctx, "amit.jawla")
	suite.Require().NoError(err)
	suite.Equal(testUser.ID(), retrieved.ID())
}

// TestUnitOfWork_DispatchWorkflow runs the full dispatch write path through
// one transaction: load the order, apply the domain transition, write the
// conditional dispatch update, commit.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DispatchWorkflow() {
	ctx := context.Background()

	setup := suite.factory.Create()
	testOrder := suite.createTestOrder()
	suite.Require().NoError(setup.OrderRepository().Add(ctx, testOrder))

	itemID := testOrder.Items()[0].ID()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	loaded, err := uow.OrderRepository().GetByItemID(ctx, itemID)
	suite.Require().NoError(err)

	now := time.Now()
	suite.Require().NoError(loaded.DispatchItem(itemID, 30, "amit.jawla", now))
	suite.Require().NoError(uow.OrderRepository().UpdateItemDispatch(ctx, itemID, 30, "amit.jawla", now))
	suite.Require().NoError(uow.Commit(ctx))

	verify := suite.factory.Create()
	retrieved, err := verify.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	item, err := retrieved.Item(itemID)
	suite.Require().NoError(err)
	suite.True(item.IsDispatched())
	suite.Equal(30, *item.DispatchedQty())
	suite.False(retrieved.IsFullyDispatched(), "Second line is still pending")
}

// createTestOrder creates a two-line pending order.
func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder() *order.Order {
	firstItem, err := order.NewItem(kernel.NewUUID(), "Cement", 50, "BAG", 320.0)
	suite.Require().NoError(err)
	secondItem, err := order.NewItem(kernel.NewUUID(), "River Sand", 3, "TON", 1450.0)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		"Sharma Constructions",
		"manish.srivastava",
		time.Now(),
		false,
		"INR",
		"",
		"",
		[]*order.Item{firstItem, secondItem},
	)
	suite.Require().NoError(err)
	return testOrder
}

// createTestUser creates a valid sales user.
func (suite *UnitOfWorkIntegrationTestSuite) createTestUser(username string) *user.User {
	testUser, err := user.NewUser(kernel.NewUUID(), username, "Test User", user.RoleSales, "s3cret-pass")
	suite.Require().NoError(err)
	return testUser
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
