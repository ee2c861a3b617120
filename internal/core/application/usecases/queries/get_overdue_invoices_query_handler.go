package queries

import (
	"context"

	"atelier/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOverdueInvoicesQueryHandler retrieves overdue unpaid invoices from the
// database, joined with the order each invoice bills.
type GetOverdueInvoicesQueryHandler struct {
	db *gorm.DB
}

// NewGetOverdueInvoicesQueryHandler creates a handler for overdue invoice queries.
// Requires a GORM database connection for query execution.
func NewGetOverdueInvoicesQueryHandler(db *gorm.DB) GetOverdueInvoicesQueryHandler {
	return GetOverdueInvoicesQueryHandler{db: db}
}

// Handle executes the query to retrieve unpaid invoices past their due date.
func (h GetOverdueInvoicesQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueInvoicesQuery,
) ([]GetOverdueInvoicesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.id,
			i.invoice_number,
			i.amount,
			i.issued_on,
			i.due_on,
			o.order_number
		FROM invoices i
		LEFT JOIN orders o ON o.invoice_id = i.id
		WHERE i.paid = FALSE AND i.due_on < ?
		ORDER BY i.due_on ASC
	`, query.AsOf()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invoices := make([]GetOverdueInvoicesQueryResponse, 0)
	for rows.Next() {
		var invoiceResp GetOverdueInvoicesQueryResponse
		var id uuid.UUID
		var amount string

		if err = rows.Scan(
			&id,
			&invoiceResp.InvoiceNumber,
			&amount,
			&invoiceResp.IssuedOn,
			&invoiceResp.DueOn,
			&invoiceResp.OrderNumber,
		); err != nil {
			return nil, err
		}

		if invoiceResp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if invoiceResp.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, err
		}

		invoices = append(invoices, invoiceResp)
	}

	return invoices, rows.Err()
}
