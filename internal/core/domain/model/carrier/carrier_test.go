package carrier_test

import (
	"testing"

	"carriernet/internal/core/domain/model/carrier"
	"carriernet/internal/core/domain/model/kernel"
	"carriernet/internal/core/domain/model/network"
	"carriernet/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDepot(t *testing.T) network.Node {
	t.Helper()
	loc, err := kernel.NewLocation(-40, -290)
	require.NoError(t, err)
	depot, err := network.NewNode("W0", "depot", loc)
	require.NoError(t, err)
	return depot
}

func testTariff(t *testing.T) carrier.Tariff {
	t.Helper()
	tariff, err := carrier.NewTariff(1.0, 1.4, 2.0, 1.0)
	require.NoError(t, err)
	return tariff
}

func testOrder(t *testing.T, pickup, delivery network.NodeID) order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), pickup, delivery)
	require.NoError(t, err)
	return o
}

func TestNewTariff(t *testing.T) {
	t.Run("should create valid tariff and price distances", func(t *testing.T) {
		tariff, err := carrier.NewTariff(1.5, 1.2, 1.9, 1.0)

		require.NoError(t, err)
		require.NoError(t, tariff.Validate())
		assert.InDelta(t, 1.5+1.2*100, tariff.Revenue(100), 0.0001)
		assert.InDelta(t, 1.9+1.0*30, tariff.Cost(30), 0.0001)
	})

	t.Run("should fail with non-positive distance coefficients", func(t *testing.T) {
		_, err := carrier.NewTariff(1.0, 0, 2.0, 1.0)
		require.Error(t, err)

		_, err = carrier.NewTariff(1.0, 1.4, 2.0, -0.5)
		require.Error(t, err)
	})

	t.Run("should fail with negative base rates", func(t *testing.T) {
		_, err := carrier.NewTariff(-1.0, 1.4, 2.0, 1.0)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var tariff carrier.Tariff
		require.Error(t, tariff.Validate())
	})
}

func TestNewCarrier(t *testing.T) {
	t.Run("should create valid carrier with empty ledger", func(t *testing.T) {
		c, err := carrier.NewCarrier(kernel.NewUUID(), "C0", testDepot(t), testTariff(t), 3)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, "C0", c.Name())
		assert.Zero(t, c.LedgerLen())
		assert.Zero(t, c.OffersMade())
		assert.Equal(t, 3, c.OffersLimit())
		assert.True(t, c.CanOffer())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := carrier.NewCarrier(kernel.NewUUID(), "", testDepot(t), testTariff(t), 3)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("should fail with negative offer limit", func(t *testing.T) {
		_, err := carrier.NewCarrier(kernel.NewUUID(), "C0", testDepot(t), testTariff(t), -1)

		require.Error(t, err)
	})

	t.Run("should fail with unconstructed depot or tariff", func(t *testing.T) {
		var depot network.Node
		_, err := carrier.NewCarrier(kernel.NewUUID(), "C0", depot, testTariff(t), 3)
		require.Error(t, err)

		var tariff carrier.Tariff
		_, err = carrier.NewCarrier(kernel.NewUUID(), "C0", testDepot(t), tariff, 3)
		require.Error(t, err)
	})
}

func TestCarrierLedger(t *testing.T) {
	t.Run("append and remove keep insertion order", func(t *testing.T) {
		c, _ := carrier.NewCarrier(kernel.NewUUID(), "C0", testDepot(t), testTariff(t), 3)
		first := testOrder(t, "N1", "N2")
		second := testOrder(t, "N3", "N4")
		third := testOrder(t, "N5", "N6")

		require.NoError(t, c.Append(first))
		require.NoError(t, c.Append(second))
		require.NoError(t, c.Append(third))
		assert.Equal(t, 3, c.LedgerLen())

		removed, err := c.RemoveAt(1)
		require.NoError(t, err)
		assert.True(t, removed.IsEqual(second))

		ledger := c.Ledger()
		require.Len(t, ledger, 2)
		assert.True(t, ledger[0].IsEqual(first))
		assert.True(t, ledger[1].IsEqual(third))
	})

	t.Run("append rejects duplicate order", func(t *testing.T) {
		c, _ := carrier.NewCarrier(kernel.NewUUID(), "C0", testDepot(t), testTariff(t), 3)
		o := testOrder(t, "N1", "N2")

		require.NoError(t, c.Append(o))
		err := c.Append(o)

		require.ErrorIs(t, err, carrier.ErrOrderAlreadyInLedger)
		assert.Equal(t, 1, c.LedgerLen())
	})

	t.Run("remove rejects out-of-range index", func(t *testing.T) {
		c, _ := carrier.NewCarrier(kernel.NewUUID(), "C0", testDepot(t), testTariff(t), 3)

		_, err := c.RemoveAt(0)

		require.Error(t, err)
	})

	t.Run("returned ledger is a copy", func(t *testing.T) {
		c, _ := carrier.NewCarrier(kernel.NewUUID(), "C0", testDepot(t), testTariff(t), 3)
		require.NoError(t, c.Append(testOrder(t, "N1", "N2")))

		ledger := c.Ledger()
		ledger[0] = testOrder(t, "N7", "N8")

		fresh := c.Ledger()
		assert.EqualValues(t, "N1", fresh[0].Pickup())
	})

	t.Run("replace rejects duplicates", func(t *testing.T) {
		c, _ := carrier.NewCarrier(kernel.NewUUID(), "C0", testDepot(t), testTariff(t), 3)
		o := testOrder(t, "N1", "N2")

		err := c.ReplaceLedger([]order.Order{o, o})

		require.ErrorIs(t, err, carrier.ErrOrderAlreadyInLedger)
	})
}

func TestCarrierOfferBudget(t *testing.T) {
	t.Run("budget is consumed one offer at a time", func(t *testing.T) {
		c, _ := carrier.NewCarrier(kernel.NewUUID(), "C0", testDepot(t), testTariff(t), 2)

		require.NoError(t, c.RecordOffer())
		require.NoError(t, c.RecordOffer())
		assert.False(t, c.CanOffer())

		err := c.RecordOffer()
		require.ErrorIs(t, err, carrier.ErrOfferBudgetExhausted)
		assert.Equal(t, 2, c.OffersMade())
	})

	t.Run("zero limit forbids offering from the start", func(t *testing.T) {
		c, _ := carrier.NewCarrier(kernel.NewUUID(), "C0", testDepot(t), testTariff(t), 0)

		assert.False(t, c.CanOffer())
		require.ErrorIs(t, c.RecordOffer(), carrier.ErrOfferBudgetExhausted)
	})
}

func TestRestoreCarrier(t *testing.T) {
	t.Run("restores ledger and spent budget", func(t *testing.T) {
		ledger := []order.Order{testOrder(t, "N1", "N2"), testOrder(t, "N3", "N4")}

		c, err := carrier.RestoreCarrier(
			kernel.NewUUID(), "C1", testDepot(t), testTariff(t), 3, 2, ledger)

		require.NoError(t, err)
		assert.Equal(t, 2, c.LedgerLen())
		assert.Equal(t, 2, c.OffersMade())
		assert.True(t, c.CanOffer())
	})

	t.Run("rejects offersMade beyond the limit", func(t *testing.T) {
		_, err := carrier.RestoreCarrier(
			kernel.NewUUID(), "C1", testDepot(t), testTariff(t), 3, 4, nil)

		require.Error(t, err)
	})
}
