package tradelogrepo_test

import (
	"context"
	"testing"
	"time"

	"carriernet/internal/adapters/out/postgres/tradelogrepo"
	"carriernet/internal/core/domain/model/auction"
	"carriernet/internal/core/domain/model/kernel"
	"carriernet/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// TradeLogIntegrationTestSuite provides integration tests for GormTradeLog
// using PostgreSQL containers.
type TradeLogIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	log       *tradelogrepo.GormTradeLog
}

func (suite *TradeLogIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&tradelogrepo.TradeDTO{}))
}

func (suite *TradeLogIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE trades").Error)
	suite.log = tradelogrepo.NewGormTradeLog(suite.db)
}

func (suite *TradeLogIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *TradeLogIntegrationTestSuite) createTestResult(withWinner bool) auction.Result {
	o, err := order.NewOrder(kernel.NewUUID(), "P1", "D1")
	suite.Require().NoError(err)

	result := auction.Result{
		ReqID:      kernel.NewUUID(),
		SellerID:   kernel.NewUUID(),
		SellerName: "carrier-a",
		Order:      o,
	}
	if withWinner {
		winnerID := kernel.NewUUID()
		result.WinnerID = &winnerID
		result.WinnerName = "carrier-b"
		result.ClearingPrice = 17.5
	}
	return result
}

func (suite *TradeLogIntegrationTestSuite) TestAll_EmptyJournal() {
	results, err := suite.log.All(context.Background())

	suite.Require().NoError(err)
	suite.Empty(results)
}

func (suite *TradeLogIntegrationTestSuite) TestAppend_RoundTrip_WithWinner() {
	ctx := context.Background()
	result := suite.createTestResult(true)

	suite.Require().NoError(suite.log.Append(ctx, result))

	stored, err := suite.log.All(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(stored, 1)
	suite.True(stored[0].ReqID.IsEqual(result.ReqID))
	suite.True(stored[0].WonBy(*result.WinnerID))
	suite.Equal("carrier-b", stored[0].WinnerName)
	suite.Equal(17.5, stored[0].ClearingPrice)
	suite.True(stored[0].Order.IsEqual(result.Order))
}

func (suite *TradeLogIntegrationTestSuite) TestAppend_RoundTrip_NoWinner() {
	ctx := context.Background()
	result := suite.createTestResult(false)

	suite.Require().NoError(suite.log.Append(ctx, result))

	stored, err := suite.log.All(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(stored, 1)
	suite.False(stored[0].HasWinner())
	suite.Equal(0.0, stored[0].ClearingPrice)
}

func (suite *TradeLogIntegrationTestSuite) TestAll_PreservesCloseOrder() {
	ctx := context.Background()
	first := suite.createTestResult(true)
	second := suite.createTestResult(false)

	suite.Require().NoError(suite.log.Append(ctx, first))
	suite.Require().NoError(suite.log.Append(ctx, second))

	stored, err := suite.log.All(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(stored, 2)
	suite.True(stored[0].ReqID.IsEqual(first.ReqID))
	suite.True(stored[1].ReqID.IsEqual(second.ReqID))
}

func TestTradeLogIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(TradeLogIntegrationTestSuite))
}
