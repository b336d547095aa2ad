package jobs

import (
	"fmt"
	"log/slog"

	"carriernet/internal/core/application/fleet"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	auctionCycleJob *AuctionCycleJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(scheduler *fleet.Scheduler, maxTicks int, logger *slog.Logger) *JobManager {
	return &JobManager{
		auctionCycleJob: NewAuctionCycleJob(scheduler, maxTicks, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.auctionCycleJob.Start(); err != nil {
		return fmt.Errorf("failed to start auction cycle job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.auctionCycleJob.Stop()
}

// Finished reports whether the auction cycle has spent its tick budget.
func (jm *JobManager) Finished() bool {
	return jm.auctionCycleJob.Done()
}
