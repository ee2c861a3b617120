package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "atelier/internal/adapters/out/postgres"
	"atelier/internal/core/domain/model/customer"
	"atelier/internal/core/domain/model/invoice"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
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

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	suite.Require().NoError(postgres_adapter.Migrate(db))

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE orders, order_stages, particulars, customers, invoices CASCADE").Error
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
	suite.NotNil(uow1.InvoiceRepository(), "First instance should provide invoice repository")
	suite.NotNil(uow2.OrderRepository(), "Second instance should provide order repository")
	suite.NotNil(uow2.CustomerRepository(), "Second instance should provide customer repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	// Multiple begin calls are safe
	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_SingleRepositoryTransaction verifies repository operations
// within a single transaction boundary work correctly.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testCustomer := createTestCustomer()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.CustomerRepository().Add(ctx, testCustomer)
	suite.Require().NoError(err)

	// Visible within the transaction
	retrieved, err := uow.CustomerRepository().Get(ctx, testCustomer.ID())
	suite.Require().NoError(err)
	suite.True(testCustomer.ID().IsEqual(retrieved.ID()))

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Persists after commit using new unit of work
	newUow := suite.factory.Create()
	retrieved, err = newUow.CustomerRepository().Get(ctx, testCustomer.ID())
	suite.Require().NoError(err)
	suite.True(testCustomer.ID().IsEqual(retrieved.ID()))
}

// TestUnitOfWork_InvoiceIssueWorkflow verifies that creating an invoice and
// linking it to the order land in the same transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_InvoiceIssueWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrderAggregate(suite.T(), "ORD-2025-100", 10, 20)

	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	testInvoice, err := invoice.NewInvoice(
		kernel.NewUUID(), "INV-2025-100", testOrder.TotalAmount(),
		time.Now(), time.Now().AddDate(0, 0, 14))
	suite.Require().NoError(err)

	err = testOrder.AttachInvoice(testInvoice.ID())
	suite.Require().NoError(err)

	err = uow.InvoiceRepository().Add(ctx, testInvoice)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Both writes persisted
	newUow := suite.factory.Create()

	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(retrievedOrder.InvoiceID())
	suite.True(testInvoice.ID().IsEqual(*retrievedOrder.InvoiceID()))

	retrievedInvoice, err := newUow.InvoiceRepository().Get(ctx, testInvoice.ID())
	suite.Require().NoError(err)
	suite.True(testOrder.TotalAmount().Equal(retrievedInvoice.Amount()))
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrderAggregate(suite.T(), "ORD-2025-101", 10)
	testCustomer := createTestCustomer()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)
	err = uow.CustomerRepository().Add(ctx, testCustomer)
	suite.Require().NoError(err)

	// Both exist within the transaction
	_, err = uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	_, err = uow.CustomerRepository().Get(ctx, testCustomer.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Neither exists after rollback
	newUow := suite.factory.Create()

	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")
	_, err = newUow.CustomerRepository().Get(ctx, testCustomer.ID())
	suite.Require().Error(err, "Customer should not exist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrderAggregate(suite.T(), "ORD-2025-102", 10)

	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(testOrder.ID().IsEqual(retrieved.ID()))
}

// TestUnitOfWork_ConcurrentStageAdvancesSerialize verifies that two
// transactions advancing stages of the same order serialize on the order row
// lock taken by GetByStageID, so neither update is lost.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConcurrentStageAdvancesSerialize() {
	ctx := context.Background()

	testOrder := createTestOrderAggregate(suite.T(), "ORD-2025-103", 10, 20)
	setupUow := suite.factory.Create()
	suite.Require().NoError(setupUow.OrderRepository().Add(ctx, testOrder))

	firstStageID := testOrder.Stages()[0].ID()
	secondStageID := testOrder.Stages()[1].ID()

	// First transaction locks the order row.
	uow1 := suite.factory.Create()
	suite.Require().NoError(uow1.Begin(ctx))

	locked1, err := uow1.OrderRepository().GetByStageID(ctx, firstStageID)
	suite.Require().NoError(err)

	// Second transaction must block on GetByStageID until the first commits.
	secondDone := make(chan error, 1)
	go func() {
		uow2 := suite.factory.Create()
		if beginErr := uow2.Begin(ctx); beginErr != nil {
			secondDone <- beginErr
			return
		}
		defer func() { _ = uow2.Rollback(ctx) }()

		locked2, getErr := uow2.OrderRepository().GetByStageID(ctx, secondStageID)
		if getErr != nil {
			secondDone <- getErr
			return
		}

		if _, advErr := locked2.AdvanceStage(secondStageID, order.StageInProgress, nil, time.Now()); advErr != nil {
			secondDone <- advErr
			return
		}
		if updErr := uow2.OrderRepository().Update(ctx, locked2); updErr != nil {
			secondDone <- updErr
			return
		}
		secondDone <- uow2.Commit(ctx)
	}()

	// Give the second transaction time to reach the row lock.
	time.Sleep(500 * time.Millisecond)
	select {
	case err = <-secondDone:
		suite.Failf("Second transaction finished before the first committed", "%v", err)
	default:
	}

	// Advance inside the first transaction, then release the lock.
	_, err = locked1.AdvanceStage(firstStageID, order.StageCompleted, nil, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(uow1.OrderRepository().Update(ctx, locked1))
	suite.Require().NoError(uow1.Commit(ctx))

	suite.Require().NoError(<-secondDone)

	// Both advances are visible; neither overwrote the other.
	finalUow := suite.factory.Create()
	final, err := finalUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	first, err := final.StageByID(firstStageID)
	suite.Require().NoError(err)
	suite.Equal(order.StageCompleted, first.Status())

	second, err := final.StageByID(secondStageID)
	suite.Require().NoError(err)
	suite.Equal(order.StageInProgress, second.Status())
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained from
// different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	order1 := createTestOrderAggregate(suite.T(), "ORD-2025-104", 10)
	order2 := createTestOrderAggregate(suite.T(), "ORD-2025-105", 10)

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	suite.Require().NoError(uow1.OrderRepository().Add(ctx, order1))
	suite.Require().NoError(uow2.OrderRepository().Add(ctx, order2))

	// Each transaction should only see its own changes
	_, err := uow1.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "UOW1 should see order1")
	_, err = uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "UOW1 should not see order2")

	_, err = uow2.OrderRepository().Get(ctx, order2.ID())
	suite.Require().NoError(err, "UOW2 should see order2")
	_, err = uow2.OrderRepository().Get(ctx, order1.ID())
	suite.Require().Error(err, "UOW2 should not see order1")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	// Only order1 persisted
	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "Order1 should persist after commit")
	_, err = newUow.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "Order2 should not persist after rollback")
}

// TestUnitOfWork_InvoicePaymentWorkflow walks an invoice through issue and
// payment and verifies the unpaid report no longer includes it.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_InvoicePaymentWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	overdue := time.Now().AddDate(0, 0, -7)
	testInvoice, err := invoice.NewInvoice(
		kernel.NewUUID(), "INV-2025-101", decimal.NewFromInt(230), overdue.AddDate(0, 0, -14), overdue)
	suite.Require().NoError(err)

	suite.Require().NoError(uow.InvoiceRepository().Add(ctx, testInvoice))

	unpaid, err := uow.InvoiceRepository().GetAllUnpaidDueBefore(ctx, time.Now())
	suite.Require().NoError(err)
	suite.Require().Len(unpaid, 1)
	suite.True(testInvoice.ID().IsEqual(unpaid[0].ID()))

	suite.Require().NoError(uow.Begin(ctx))

	paid := unpaid[0]
	suite.Require().NoError(paid.MarkPaid(time.Now()))
	suite.Require().NoError(uow.InvoiceRepository().Update(ctx, paid))

	suite.Require().NoError(uow.Commit(ctx))

	unpaid, err = uow.InvoiceRepository().GetAllUnpaidDueBefore(ctx, time.Now())
	suite.Require().NoError(err)
	suite.Empty(unpaid, "Paid invoice should leave the unpaid report")
}

// createTestCustomer creates a valid customer for testing purposes.
func createTestCustomer() *customer.Customer {
	testCustomer, _ := customer.NewCustomer(
		kernel.NewUUID(), "Ada Wexford", "ada@example.com", "+1 555 0101", "12 Mercer St")
	return testCustomer
}

// createTestOrderAggregate creates an order with one particular and Pending
// stages at the given sequence positions.
func createTestOrderAggregate(t *testing.T, orderNumber string, positions ...int) *order.Order {
	t.Helper()

	particular, err := order.NewParticular(
		kernel.NewUUID(), "Fabric", "Wool, 3m", decimal.NewFromInt(150))
	if err != nil {
		t.Fatal(err)
	}

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), orderNumber, kernel.NewUUID(), time.Now(), []*order.Particular{particular})
	if err != nil {
		t.Fatal(err)
	}

	for _, position := range positions {
		stage, stageErr := order.NewStage(
			kernel.NewUUID(), kernel.NewUUID(), position, order.StagePending, time.Now(), nil)
		if stageErr != nil {
			t.Fatal(stageErr)
		}
		if addErr := testOrder.AddStage(stage); addErr != nil {
			t.Fatal(addErr)
		}
	}

	return testOrder
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
