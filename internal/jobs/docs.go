// Package jobs provides scheduled background tasks for the auction fleet.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to drive the discrete auction cycle in wall-clock time.
//
// # Available Jobs
//
// 1. AuctionCycleJob - Runs every second to advance the fleet scheduler by one tick
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the fleet scheduler
//	jobManager := jobs.NewJobManager(scheduler, maxTicks, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The cycle job uses the cron expression "* * * * * *" which means it runs
// every second, giving every carrier one phase step per second of wall time.
//
// # Error Handling
//
//   - A failed tick is logged and the next tick proceeds as usual
//   - With a positive tick budget the job stops itself once the budget is spent
package jobs
