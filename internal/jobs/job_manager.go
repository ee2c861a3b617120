package jobs

import (
	"fmt"
	"log/slog"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderCompletionJob *OrderCompletionJob
	overdueInvoiceJob  *OverdueInvoiceJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes handlers as dependencies to wire up the job execution.
func NewJobManager(
	refreshOrderStatusesHandler commands.RefreshOrderStatusesCommandHandler,
	overdueInvoicesHandler queries.GetOverdueInvoicesQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderCompletionJob: NewOrderCompletionJob(refreshOrderStatusesHandler, logger),
		overdueInvoiceJob:  NewOverdueInvoiceJob(overdueInvoicesHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderCompletionJob.Start(); err != nil {
		return fmt.Errorf("failed to start order completion job: %w", err)
	}

	if err := jm.overdueInvoiceJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.orderCompletionJob.Stop()
		return fmt.Errorf("failed to start overdue invoice job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderCompletionJob.Stop()
	jm.overdueInvoiceJob.Stop()
}
