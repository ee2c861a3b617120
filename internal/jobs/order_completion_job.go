package jobs

import (
	"context"
	"log/slog"

	"atelier/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderCompletionJob manages the scheduled order status sweep.
// Runs every minute to recompute order statuses from their stage sets.
type OrderCompletionJob struct {
	handler commands.RefreshOrderStatusesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderCompletionJob creates a new job for the order status sweep.
// Uses RefreshOrderStatusesCommandHandler to process all uncompleted orders.
func NewOrderCompletionJob(handler commands.RefreshOrderStatusesCommandHandler, logger *slog.Logger) *OrderCompletionJob {
	return &OrderCompletionJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "order_completion_job"),
	}
}

// Start begins the order status sweep to run every minute.
func (j *OrderCompletionJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewRefreshOrderStatusesCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Order status sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order completion job started (running every minute)")
	return nil
}

// Stop stops the order completion job.
func (j *OrderCompletionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order completion job stopped")
}
