package ports

import (
	"context"
	"time"

	"atelier/internal/core/domain/model/invoice"
	"atelier/internal/core/domain/model/kernel"
)

// InvoiceRepository defines the persistence contract for invoices.
type InvoiceRepository interface {
	// Add persists a new invoice. A duplicate invoice number surfaces as
	// errs.ObjectAlreadyExistsError.
	Add(ctx context.Context, aggregate *invoice.Invoice) error

	// Update persists changes to an existing invoice.
	Update(ctx context.Context, aggregate *invoice.Invoice) error

	// Get retrieves an invoice by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error)

	// GetAllUnpaidDueBefore retrieves all unpaid invoices whose due date lies
	// strictly before the given date. Used by the overdue report job.
	GetAllUnpaidDueBefore(ctx context.Context, date time.Time) ([]*invoice.Invoice, error)
}
