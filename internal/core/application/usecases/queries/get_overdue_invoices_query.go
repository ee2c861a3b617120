package queries

import (
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOverdueInvoicesQueryIsNotConstructed = errors.New(
	"GetOverdueInvoicesQuery must be created via NewGetOverdueInvoicesQuery constructor",
)

// GetOverdueInvoicesQuery retrieves all unpaid invoices whose due date has
// passed, oldest due date first. Used by the daily follow-up report.
type GetOverdueInvoicesQuery struct {
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewGetOverdueInvoicesQuery creates a query for invoices overdue as of the
// given date.
func NewGetOverdueInvoicesQuery(asOf time.Time) (GetOverdueInvoicesQuery, error) {
	if asOf.IsZero() {
		return GetOverdueInvoicesQuery{}, errs.NewValueIsRequiredError("asOf")
	}

	return GetOverdueInvoicesQuery{
		asOf:  asOf,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOverdueInvoicesQueryIsNotConstructed if validation fails.
func (q GetOverdueInvoicesQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueInvoicesQueryIsNotConstructed)
}

// AsOf returns the reference date from the query.
func (q GetOverdueInvoicesQuery) AsOf() time.Time {
	return q.asOf
}

// GetOverdueInvoicesQueryResponse represents one overdue invoice with the
// order it bills, when one is linked.
type GetOverdueInvoicesQueryResponse struct {
	ID            kernel.UUID
	InvoiceNumber string
	Amount        decimal.Decimal
	IssuedOn      time.Time
	DueOn         time.Time
	OrderNumber   *string
}
