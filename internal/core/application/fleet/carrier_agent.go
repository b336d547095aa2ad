package fleet

import (
	"context"
	"errors"
	"log/slog"

	"carriernet/internal/core/domain/model/auction"
	"carriernet/internal/core/domain/model/carrier"
	"carriernet/internal/core/domain/model/kernel"
	"carriernet/internal/core/domain/services"
	"carriernet/internal/core/ports"
	"carriernet/internal/pkg/errs"
)

// CycleLength is the number of ticks in one carrier cycle:
// 0 = apply, 1 = offer, 2-4 = bid.
const CycleLength = 5

const (
	phaseApply = 0
	phaseOffer = 1
)

// StepInput is what the scheduler hands every agent each tick: the latest
// settlement (broadcast until a new close replaces it) and the currently open
// auction, fetched once per tick.
type StepInput struct {
	Result       *auction.Result
	Announcement *ports.Announcement
}

// pendingSale records the auction a carrier opened: which request it owns and
// which ledger slot goes if somebody wins it.
type pendingSale struct {
	reqID kernel.UUID
	slot  int
}

// CarrierAgent drives one carrier through the auction cycle. Any valuation
// or board failure degrades the current phase to a no-op for the tick; the
// agent never fails a Step.
//
// The agent caches its valuation snapshot and recomputes it lazily after
// every ledger mutation.
type CarrierAgent struct {
	carrier  *carrier.Carrier
	valuator *services.Valuator
	board    ports.AuctionBoard
	ledgers  ports.LedgerStore
	logger   *slog.Logger

	cyclePos int

	snapshot      services.Snapshot
	snapshotValid bool

	pending    *pendingSale
	bidMemo    *kernel.UUID
	appliedReq *kernel.UUID
}

// NewCarrierAgent creates an agent for the given carrier.
func NewCarrierAgent(
	c *carrier.Carrier,
	valuator *services.Valuator,
	board ports.AuctionBoard,
	ledgers ports.LedgerStore,
	logger *slog.Logger,
) (*CarrierAgent, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := valuator.Validate(); err != nil {
		return nil, err
	}
	if board == nil {
		return nil, errs.NewValueIsRequiredError("board")
	}
	if ledgers == nil {
		return nil, errs.NewValueIsRequiredError("ledgers")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &CarrierAgent{
		carrier:  c,
		valuator: valuator,
		board:    board,
		ledgers:  ledgers,
		logger:   logger.With("component", "carrier_agent", "carrier", c.Name()),
	}, nil
}

// Carrier returns the underlying carrier aggregate.
func (a *CarrierAgent) Carrier() *carrier.Carrier {
	return a.carrier
}

// Step runs one tick of the agent's cycle and advances its phase counter.
func (a *CarrierAgent) Step(ctx context.Context, input StepInput) {
	switch {
	case a.cyclePos == phaseApply:
		a.applyResult(ctx, input.Result)
	case a.cyclePos == phaseOffer:
		a.offerWorstOrder(ctx)
	default:
		a.maybeBid(ctx, input.Announcement)
	}

	a.cyclePos = (a.cyclePos + 1) % CycleLength
}

// Profit returns the carrier's current baseline profit, used for reporting.
func (a *CarrierAgent) Profit(ctx context.Context) (float64, error) {
	snapshot, err := a.currentSnapshot(ctx)
	if err != nil {
		return 0, err
	}
	return snapshot.BaselineProfit(), nil
}

// applyResult consumes a settlement exactly once per request ID: the seller
// sheds the recorded slot when somebody else won, the winner appends the
// order, everyone clears the bid memo.
func (a *CarrierAgent) applyResult(ctx context.Context, result *auction.Result) {
	if result == nil {
		return
	}
	if a.appliedReq != nil && a.appliedReq.IsEqual(result.ReqID) {
		return
	}

	reqID := result.ReqID
	a.appliedReq = &reqID
	a.bidMemo = nil

	switch {
	case result.SoldBy(a.carrier.ID()):
		a.applySale(ctx, result)
	case result.WonBy(a.carrier.ID()):
		a.applyPurchase(ctx, result)
	}
}

func (a *CarrierAgent) applySale(ctx context.Context, result *auction.Result) {
	pending := a.pending
	a.pending = nil

	// Without a winner the seller keeps the order.
	if !result.HasWinner() || result.WonBy(a.carrier.ID()) {
		a.logger.Info("auction closed without a buyer, order retained", "req", result.ReqID)
		return
	}

	if pending == nil || !pending.reqID.IsEqual(result.ReqID) {
		a.logger.Warn("settlement for an unknown sale, ignoring", "req", result.ReqID)
		return
	}

	removed, err := a.carrier.RemoveAt(pending.slot)
	if err != nil {
		a.logger.Error("failed to shed sold order", "req", result.ReqID, "error", err)
		return
	}

	a.invalidateSnapshot()
	a.persistLedger(ctx)
	a.logger.Info("order sold",
		"req", result.ReqID,
		"order", removed.ID(),
		"winner", result.WinnerName,
		"price", result.ClearingPrice)
}

func (a *CarrierAgent) applyPurchase(ctx context.Context, result *auction.Result) {
	if err := a.carrier.Append(result.Order); err != nil {
		a.logger.Error("failed to take won order", "req", result.ReqID, "error", err)
		return
	}

	a.invalidateSnapshot()
	a.persistLedger(ctx)
	a.logger.Info("order won",
		"req", result.ReqID,
		"order", result.Order.ID(),
		"seller", result.SellerName,
		"price", result.ClearingPrice)
}

// offerWorstOrder puts the ledger order whose removal gains the most up for
// auction. When no removal is profitable the first order goes up anyway.
func (a *CarrierAgent) offerWorstOrder(ctx context.Context) {
	if !a.carrier.CanOffer() || a.carrier.LedgerLen() == 0 {
		return
	}

	snapshot, err := a.currentSnapshot(ctx)
	if err != nil {
		a.logger.Warn("valuation failed, skipping offer", "error", err)
		return
	}

	slot, gain := snapshot.BestRemoval()
	if gain <= 0 {
		slot = 0
	}

	onSale, err := a.carrier.OrderAt(slot)
	if err != nil {
		a.logger.Error("offer slot out of range", "slot", slot, "error", err)
		return
	}

	ann := ports.Announcement{
		ReqID:        kernel.NewUUID(),
		SellerID:     a.carrier.ID(),
		SellerName:   a.carrier.Name(),
		Order:        onSale,
		ReservePrice: snapshot.Revenue,
	}

	if err := a.board.Open(ctx, ann); err != nil {
		if errors.Is(err, auction.ErrAuctionInProgress) {
			a.logger.Info("board busy, offer deferred to next cycle")
		} else {
			a.logger.Warn("failed to open auction", "error", err)
		}
		return
	}

	if err := a.carrier.RecordOffer(); err != nil {
		a.logger.Error("failed to record offer", "error", err)
	}
	a.pending = &pendingSale{reqID: ann.ReqID, slot: slot}
	a.logger.Info("order offered",
		"req", ann.ReqID,
		"order", onSale.ID(),
		"reserve", ann.ReservePrice)
}

// maybeBid bids the marginal value of the announced order when it is
// strictly positive. At most one bid per request.
func (a *CarrierAgent) maybeBid(ctx context.Context, ann *ports.Announcement) {
	if ann == nil || ann.SellerID.IsEqual(a.carrier.ID()) {
		return
	}
	if a.bidMemo != nil && a.bidMemo.IsEqual(ann.ReqID) {
		return
	}

	snapshot, err := a.currentSnapshot(ctx)
	if err != nil {
		a.logger.Warn("valuation failed, skipping bid", "error", err)
		return
	}

	value, err := a.valuator.MarginalValue(ctx, a.carrier, snapshot, ann.Order)
	if err != nil {
		a.logger.Warn("candidate valuation failed, skipping bid", "req", ann.ReqID, "error", err)
		return
	}
	if value <= 0 {
		return
	}

	bid := auction.Bid{
		BidderID:   a.carrier.ID(),
		BidderName: a.carrier.Name(),
		ReqID:      ann.ReqID,
		Value:      value,
	}
	if err := a.board.PlaceBid(ctx, bid); err != nil {
		a.logger.Warn("bid not accepted", "req", ann.ReqID, "error", err)
		return
	}

	reqID := ann.ReqID
	a.bidMemo = &reqID
	a.logger.Info("bid placed", "req", ann.ReqID, "value", value)
}

func (a *CarrierAgent) currentSnapshot(ctx context.Context) (services.Snapshot, error) {
	if a.snapshotValid {
		return a.snapshot, nil
	}

	snapshot, err := a.valuator.Snapshot(ctx, a.carrier)
	if err != nil {
		return services.Snapshot{}, err
	}

	a.snapshot = snapshot
	a.snapshotValid = true
	return snapshot, nil
}

func (a *CarrierAgent) invalidateSnapshot() {
	a.snapshotValid = false
}

func (a *CarrierAgent) persistLedger(ctx context.Context) {
	if err := a.ledgers.WriteOrders(ctx, a.carrier.ID(), a.carrier.Ledger()); err != nil {
		a.logger.Error("failed to persist ledger", "error", err)
	}
}
