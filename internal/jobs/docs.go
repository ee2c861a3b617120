// Package jobs provides scheduled background tasks for the workflow tracker.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic bookkeeping the workshop relies on.
//
// # Available Jobs
//
// 1. OrderCompletionJob - Runs every minute to recompute order statuses from
// their stage sets and stamp completion dates
// 2. OverdueInvoiceJob - Runs daily to report unpaid invoices past their due date
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(refreshHandler, overdueHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Job failures are logged and the next scheduled run proceeds normally.
// Failed job starts will stop any already running jobs.
package jobs
