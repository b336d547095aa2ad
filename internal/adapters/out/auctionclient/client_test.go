package auctionclient_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "carriernet/internal/adapters/in/http"
	"carriernet/internal/adapters/out/auctionclient"
	"carriernet/internal/adapters/out/memory"
	"carriernet/internal/core/application/usecases/commands"
	"carriernet/internal/core/application/usecases/queries"
	"carriernet/internal/core/domain/model/auction"
	"carriernet/internal/core/domain/model/kernel"
	"carriernet/internal/core/domain/model/order"
	"carriernet/internal/core/ports"
)

// newBoardPair wires the real auctioneer server behind httptest and returns
// a client talking to it.
func newBoardPair(t *testing.T) *auctionclient.Client {
	t.Helper()

	house := auction.NewHouse()
	tradeLog := memory.NewTradeLog()

	openHandler, err := commands.NewOpenAuctionCommandHandler(house)
	require.NoError(t, err)
	bidHandler, err := commands.NewPlaceBidCommandHandler(house)
	require.NoError(t, err)
	closeHandler, err := commands.NewCloseAuctionCommandHandler(house, tradeLog)
	require.NoError(t, err)
	currentHandler, err := queries.NewGetCurrentAuctionQueryHandler(house)
	require.NoError(t, err)
	historyHandler, err := queries.NewGetTradeHistoryQueryHandler(tradeLog)
	require.NoError(t, err)

	e := echo.New()
	httpadapter.NewServer(openHandler, bidHandler, closeHandler, currentHandler, historyHandler).RegisterRoutes(e)

	server := httptest.NewServer(e)
	t.Cleanup(server.Close)

	client, err := auctionclient.NewClient(server.URL)
	require.NoError(t, err)
	return client
}

func testAnnouncement(t *testing.T) ports.Announcement {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), "P1", "D1")
	require.NoError(t, err)

	return ports.Announcement{
		ReqID:        kernel.NewUUID(),
		SellerID:     kernel.NewUUID(),
		SellerName:   "carrier-a",
		Order:        o,
		ReservePrice: 12.5,
	}
}

func Test_Client_Protocol(t *testing.T) {
	t.Run("should report no auction on an idle board", func(t *testing.T) {
		client := newBoardPair(t)

		current, err := client.Current(context.Background())

		require.NoError(t, err)
		assert.Nil(t, current)

		result, err := client.Close(context.Background())
		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("should round-trip an announcement", func(t *testing.T) {
		client := newBoardPair(t)
		ann := testAnnouncement(t)

		require.NoError(t, client.Open(context.Background(), ann))

		current, err := client.Current(context.Background())
		require.NoError(t, err)
		require.NotNil(t, current)
		assert.True(t, current.ReqID.IsEqual(ann.ReqID))
		assert.True(t, current.SellerID.IsEqual(ann.SellerID))
		assert.Equal(t, "carrier-a", current.SellerName)
		assert.True(t, current.Order.IsEqual(ann.Order))
		assert.Equal(t, 12.5, current.ReservePrice)
	})

	t.Run("should map a busy board to ErrAuctionInProgress", func(t *testing.T) {
		client := newBoardPair(t)
		require.NoError(t, client.Open(context.Background(), testAnnouncement(t)))

		err := client.Open(context.Background(), testAnnouncement(t))

		assert.ErrorIs(t, err, auction.ErrAuctionInProgress)
	})

	t.Run("should map a stale bid to ErrNoActiveAuction", func(t *testing.T) {
		client := newBoardPair(t)

		err := client.PlaceBid(context.Background(), auction.Bid{
			BidderID:   kernel.NewUUID(),
			BidderName: "carrier-b",
			ReqID:      kernel.NewUUID(),
			Value:      7,
		})

		assert.ErrorIs(t, err, auction.ErrNoActiveAuction)
	})

	t.Run("should settle a bid auction end to end", func(t *testing.T) {
		client := newBoardPair(t)
		ann := testAnnouncement(t)
		require.NoError(t, client.Open(context.Background(), ann))

		winnerID := kernel.NewUUID()
		require.NoError(t, client.PlaceBid(context.Background(), auction.Bid{
			BidderID: winnerID, BidderName: "carrier-b", ReqID: ann.ReqID, Value: 10,
		}))
		require.NoError(t, client.PlaceBid(context.Background(), auction.Bid{
			BidderID: kernel.NewUUID(), BidderName: "carrier-c", ReqID: ann.ReqID, Value: 7,
		}))

		result, err := client.Close(context.Background())

		require.NoError(t, err)
		require.True(t, result.WonBy(winnerID))
		assert.Equal(t, "carrier-b", result.WinnerName)
		assert.Equal(t, 7.0, result.ClearingPrice)
		assert.True(t, result.Order.IsEqual(ann.Order))
	})

	t.Run("should settle without a winner when nobody bid", func(t *testing.T) {
		client := newBoardPair(t)
		ann := testAnnouncement(t)
		require.NoError(t, client.Open(context.Background(), ann))

		result, err := client.Close(context.Background())

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.False(t, result.HasWinner())
		assert.Equal(t, 0.0, result.ClearingPrice)
	})

	t.Run("should surface transport failures", func(t *testing.T) {
		client, err := auctionclient.NewClient("http://127.0.0.1:1")
		require.NoError(t, err)

		_, err = client.Current(context.Background())

		assert.Error(t, err)
	})
}
