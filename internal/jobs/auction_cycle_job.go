package jobs

import (
	"context"
	"log/slog"
	"sync"

	"carriernet/internal/core/application/fleet"

	"github.com/robfig/cron/v3"
)

// AuctionCycleJob advances the fleet scheduler by one tick every second.
// With a positive tick budget the job stops itself once the budget is spent.
type AuctionCycleJob struct {
	scheduler *fleet.Scheduler
	maxTicks  int
	cron      *cron.Cron
	logger    *slog.Logger

	mu   sync.Mutex
	done bool
}

// NewAuctionCycleJob creates a job that drives the scheduler.
// A maxTicks of zero or less means the job runs until stopped.
func NewAuctionCycleJob(scheduler *fleet.Scheduler, maxTicks int, logger *slog.Logger) *AuctionCycleJob {
	return &AuctionCycleJob{
		scheduler: scheduler,
		maxTicks:  maxTicks,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "auction_cycle_job"),
	}
}

// Start begins ticking the scheduler every second.
func (j *AuctionCycleJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()

		j.mu.Lock()
		defer j.mu.Unlock()
		if j.done {
			return
		}

		if err := j.scheduler.Step(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Auction cycle tick failed", "error", err)
			return
		}

		if j.maxTicks > 0 && j.scheduler.Tick() >= j.maxTicks {
			j.done = true
			j.cron.Stop()
			j.logger.InfoContext(ctx, "Auction cycle finished", "ticks", j.scheduler.Tick())
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Auction cycle job started (ticking every second)")
	return nil
}

// Stop stops the auction cycle job.
func (j *AuctionCycleJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Auction cycle job stopped")
}

// Done reports whether the job has spent its tick budget.
func (j *AuctionCycleJob) Done() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.done
}
