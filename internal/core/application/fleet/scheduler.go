package fleet

import (
	"context"
	"log/slog"
	"time"

	"carriernet/internal/core/domain/model/auction"
	"carriernet/internal/core/ports"
	"carriernet/internal/pkg/errs"
)

const defaultBoardTimeout = 5 * time.Second

// Scheduler advances the whole fleet in discrete ticks. Each Step fetches
// the open auction once, publishes it to every agent together with the last
// settlement, steps the agents, and closes the live auction on cycle
// boundaries (tick mod CycleLength == 0).
//
// Board calls run under a bounded timeout; a failed call means "no
// information this tick" and the run carries on.
type Scheduler struct {
	agents       []*CarrierAgent
	board        ports.AuctionBoard
	tradeLog     ports.TradeLog
	logger       *slog.Logger
	boardTimeout time.Duration

	tick       int
	lastResult *auction.Result
}

// NewScheduler creates a Scheduler over the given agents and board. Every
// settlement is appended to the trade log.
func NewScheduler(agents []*CarrierAgent, board ports.AuctionBoard, tradeLog ports.TradeLog, logger *slog.Logger) (*Scheduler, error) {
	if len(agents) == 0 {
		return nil, errs.NewValueIsRequiredError("agents")
	}
	if board == nil {
		return nil, errs.NewValueIsRequiredError("board")
	}
	if tradeLog == nil {
		return nil, errs.NewValueIsRequiredError("tradeLog")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Scheduler{
		agents:       agents,
		board:        board,
		tradeLog:     tradeLog,
		logger:       logger.With("component", "scheduler"),
		boardTimeout: defaultBoardTimeout,
	}, nil
}

// Tick returns the number of completed ticks.
func (s *Scheduler) Tick() int {
	return s.tick
}

// Step runs one tick: publish, step every agent, close on cycle boundary.
func (s *Scheduler) Step(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.tick++

	input := StepInput{
		Result:       s.lastResult,
		Announcement: s.fetchAnnouncement(ctx),
	}

	for _, agent := range s.agents {
		agent.Step(ctx, input)
	}

	if s.tick%CycleLength == 0 {
		s.closeAuction(ctx)
	}

	return nil
}

// Run executes the given number of ticks.
func (s *Scheduler) Run(ctx context.Context, ticks int) error {
	for i := 0; i < ticks; i++ {
		if err := s.Step(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Profits returns every carrier's baseline profit keyed by carrier name.
// A carrier whose valuation fails is reported at zero.
func (s *Scheduler) Profits(ctx context.Context) map[string]float64 {
	profits := make(map[string]float64, len(s.agents))
	for _, agent := range s.agents {
		profit, err := agent.Profit(ctx)
		if err != nil {
			s.logger.Warn("profit unavailable", "carrier", agent.Carrier().Name(), "error", err)
			profit = 0
		}
		profits[agent.Carrier().Name()] = profit
	}
	return profits
}

// fetchAnnouncement reads the open auction once per tick. Failure publishes
// nothing this tick.
func (s *Scheduler) fetchAnnouncement(ctx context.Context) *ports.Announcement {
	callCtx, cancel := context.WithTimeout(ctx, s.boardTimeout)
	defer cancel()

	ann, err := s.board.Current(callCtx)
	if err != nil {
		s.logger.Warn("failed to fetch open auction", "tick", s.tick, "error", err)
		return nil
	}
	return ann
}

// closeAuction settles the live auction and broadcasts the result until the
// next close replaces it. A failed close broadcasts nothing.
func (s *Scheduler) closeAuction(ctx context.Context) {
	callCtx, cancel := context.WithTimeout(ctx, s.boardTimeout)
	defer cancel()

	result, err := s.board.Close(callCtx)
	if err != nil {
		s.logger.Warn("failed to close auction", "tick", s.tick, "error", err)
		s.lastResult = nil
		return
	}

	s.lastResult = result
	if result == nil {
		return
	}

	if err := s.tradeLog.Append(ctx, *result); err != nil {
		s.logger.Warn("failed to journal settlement", "req", result.ReqID, "error", err)
	}

	if result.HasWinner() {
		s.logger.Info("auction settled",
			"tick", s.tick,
			"req", result.ReqID,
			"seller", result.SellerName,
			"winner", result.WinnerName,
			"price", result.ClearingPrice)
	} else {
		s.logger.Info("auction settled without bids",
			"tick", s.tick,
			"req", result.ReqID,
			"seller", result.SellerName)
	}
}
