// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order processing.
//
// # Available Jobs
//
// 1. DispatchOrderJob - Runs every second to assign the oldest waiting order
// to the nearest restaurant whose menu covers it entirely
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(dispatchOrderHandler, logger)
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
// The dispatch job uses the cron expression "* * * * * *" which means it runs
// every second. One waiting order is processed per tick, oldest first.
//
// # Error Handling
//
// - The dispatch job ignores expected business outcomes (no waiting orders,
// no restaurant able to fulfill the order); anything else is logged
// - Failed job starts will stop any already running jobs
package jobs
