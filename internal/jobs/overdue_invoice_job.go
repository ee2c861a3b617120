package jobs

import (
	"context"
	"log/slog"
	"time"

	"atelier/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OverdueInvoiceJob reports unpaid invoices past their due date.
// Runs every morning so the workshop can chase payments.
type OverdueInvoiceJob struct {
	handler queries.GetOverdueInvoicesQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueInvoiceJob creates a new job for the overdue invoice report.
// Uses GetOverdueInvoicesQueryHandler to find unpaid invoices past due.
func NewOverdueInvoiceJob(handler queries.GetOverdueInvoicesQueryHandler, logger *slog.Logger) *OverdueInvoiceJob {
	return &OverdueInvoiceJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "overdue_invoice_job"),
	}
}

// Start begins the overdue invoice report to run daily at 08:00.
func (j *OverdueInvoiceJob) Start() error {
	_, err := j.cron.AddFunc("0 8 * * *", j.report)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue invoice job started (running daily at 08:00)")
	return nil
}

// Stop stops the overdue invoice job.
func (j *OverdueInvoiceJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue invoice job stopped")
}

func (j *OverdueInvoiceJob) report() {
	ctx := context.Background()

	query, err := queries.NewGetOverdueInvoicesQuery(time.Now())
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue invoice report failed", "error", err)
		return
	}

	invoices, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue invoice report failed", "error", err)
		return
	}

	if len(invoices) == 0 {
		j.logger.InfoContext(ctx, "No overdue invoices")
		return
	}

	for _, invoice := range invoices {
		attrs := []any{
			"invoiceNumber", invoice.InvoiceNumber,
			"amount", invoice.Amount.StringFixed(2),
			"dueOn", invoice.DueOn.Format("2006-01-02"),
		}
		if invoice.OrderNumber != nil {
			attrs = append(attrs, "orderNumber", *invoice.OrderNumber)
		}
		j.logger.WarnContext(ctx, "Invoice overdue", attrs...)
	}
}
