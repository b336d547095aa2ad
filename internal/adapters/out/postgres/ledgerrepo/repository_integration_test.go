package ledgerrepo_test

import (
	"context"
	"testing"
	"time"

	"carriernet/internal/adapters/out/postgres/ledgerrepo"
	"carriernet/internal/core/domain/model/kernel"
	"carriernet/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// LedgerStoreIntegrationTestSuite provides integration tests for
// GormLedgerStore using PostgreSQL containers.
type LedgerStoreIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	store     *ledgerrepo.GormLedgerStore
}

func (suite *LedgerStoreIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&ledgerrepo.LedgerEntryDTO{}))
}

func (suite *LedgerStoreIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE ledger_entries").Error)
	suite.store = ledgerrepo.NewGormLedgerStore(suite.db)
}

func (suite *LedgerStoreIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *LedgerStoreIntegrationTestSuite) createTestOrders(n int) []order.Order {
	orders := make([]order.Order, 0, n)
	for i := 0; i < n; i++ {
		o, err := order.NewOrder(kernel.NewUUID(), "P1", "D1")
		suite.Require().NoError(err)
		orders = append(orders, o)
	}
	return orders
}

func (suite *LedgerStoreIntegrationTestSuite) TestReadOrders_UnknownCarrier_EmptyLedger() {
	orders, err := suite.store.ReadOrders(context.Background(), kernel.NewUUID())

	suite.Require().NoError(err)
	suite.Empty(orders)
}

func (suite *LedgerStoreIntegrationTestSuite) TestWriteOrders_RoundTrip_PreservesOrder() {
	ctx := context.Background()
	carrierID := kernel.NewUUID()
	orders := suite.createTestOrders(3)

	suite.Require().NoError(suite.store.WriteOrders(ctx, carrierID, orders))

	stored, err := suite.store.ReadOrders(ctx, carrierID)
	suite.Require().NoError(err)
	suite.Require().Len(stored, 3)
	for i := range orders {
		suite.True(stored[i].IsEqual(orders[i]))
	}
}

func (suite *LedgerStoreIntegrationTestSuite) TestWriteOrders_Replace_DropsOldEntries() {
	ctx := context.Background()
	carrierID := kernel.NewUUID()

	suite.Require().NoError(suite.store.WriteOrders(ctx, carrierID, suite.createTestOrders(3)))

	replacement := suite.createTestOrders(1)
	suite.Require().NoError(suite.store.WriteOrders(ctx, carrierID, replacement))

	stored, err := suite.store.ReadOrders(ctx, carrierID)
	suite.Require().NoError(err)
	suite.Require().Len(stored, 1)
	suite.True(stored[0].IsEqual(replacement[0]))
}

func (suite *LedgerStoreIntegrationTestSuite) TestWriteOrders_EmptyLedger_ClearsCarrier() {
	ctx := context.Background()
	carrierID := kernel.NewUUID()

	suite.Require().NoError(suite.store.WriteOrders(ctx, carrierID, suite.createTestOrders(2)))
	suite.Require().NoError(suite.store.WriteOrders(ctx, carrierID, nil))

	stored, err := suite.store.ReadOrders(ctx, carrierID)
	suite.Require().NoError(err)
	suite.Empty(stored)
}

func (suite *LedgerStoreIntegrationTestSuite) TestWriteOrders_IsolatedPerCarrier() {
	ctx := context.Background()
	first, second := kernel.NewUUID(), kernel.NewUUID()

	suite.Require().NoError(suite.store.WriteOrders(ctx, first, suite.createTestOrders(2)))
	suite.Require().NoError(suite.store.WriteOrders(ctx, second, suite.createTestOrders(1)))

	firstStored, err := suite.store.ReadOrders(ctx, first)
	suite.Require().NoError(err)
	suite.Len(firstStored, 2)

	secondStored, err := suite.store.ReadOrders(ctx, second)
	suite.Require().NoError(err)
	suite.Len(secondStored, 1)
}

func TestLedgerStoreIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerStoreIntegrationTestSuite))
}
