// Package invoice provides the Invoice aggregate: a bill issued for an order's
// line items. Orders reference invoices by ID (shared, not owned), so an
// invoice survives order reassignment.
package invoice

import (
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrInvoiceIsNotConstructed is returned when an Invoice instance was not
// created through the NewInvoice factory method.
var ErrInvoiceIsNotConstructed = errors.New("Invoice must be created via NewInvoice constructor")

// Invoice represents a bill for completed work.
//
// Invoice follows these invariants:
//   - Must have a valid unique identifier and a non-empty invoice number
//   - Amount must not be negative
//   - Due date must not precede the issue date
//   - PaidOn is set if and only if the invoice is paid
type Invoice struct {
	id            kernel.UUID
	invoiceNumber string
	amount        decimal.Decimal
	issuedOn      time.Time
	dueOn         time.Time
	paid          bool
	paidOn        *time.Time

	isConstructed bool
}

// NewInvoice creates a new unpaid Invoice with validation.
func NewInvoice(
	id kernel.UUID,
	invoiceNumber string,
	amount decimal.Decimal,
	issuedOn time.Time,
	dueOn time.Time,
) (*Invoice, error) {
	invoice := &Invoice{
		isConstructed: true,
	}

	if err := errors.Join(
		invoice.setID(id),
		invoice.setInvoiceNumber(invoiceNumber),
		invoice.setAmount(amount),
		invoice.setDates(issuedOn, dueOn),
	); err != nil {
		return nil, err
	}

	return invoice, nil
}

// RestoreInvoice reconstructs an Invoice from persisted state, including
// its paid flag and payment date.
func RestoreInvoice(
	id kernel.UUID,
	invoiceNumber string,
	amount decimal.Decimal,
	issuedOn time.Time,
	dueOn time.Time,
	paid bool,
	paidOn *time.Time,
) (*Invoice, error) {
	invoice, err := NewInvoice(id, invoiceNumber, amount, issuedOn, dueOn)
	if err != nil {
		return nil, err
	}

	if paid != (paidOn != nil) {
		return nil, errs.NewValueIsInvalidError("paidOn: must be set if and only if the invoice is paid")
	}

	invoice.paid = paid
	invoice.paidOn = paidOn
	return invoice, nil
}

// Validate ensures the Invoice instance was properly constructed.
func (i *Invoice) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrInvoiceIsNotConstructed
	}
	return nil
}

// ID returns the invoice's unique identifier.
func (i *Invoice) ID() kernel.UUID {
	return i.id
}

// InvoiceNumber returns the human-facing invoice number.
func (i *Invoice) InvoiceNumber() string {
	return i.invoiceNumber
}

// Amount returns the billed amount.
func (i *Invoice) Amount() decimal.Decimal {
	return i.amount
}

// IssuedOn returns the date the invoice was issued.
func (i *Invoice) IssuedOn() time.Time {
	return i.issuedOn
}

// DueOn returns the date payment is due.
func (i *Invoice) DueOn() time.Time {
	return i.dueOn
}

// Paid reports whether the invoice has been paid.
func (i *Invoice) Paid() bool {
	return i.paid
}

// PaidOn returns the payment date, or nil for unpaid invoices.
func (i *Invoice) PaidOn() *time.Time {
	return i.paidOn
}

// IsOverdue reports whether the invoice is unpaid and past its due date.
func (i *Invoice) IsOverdue(today time.Time) bool {
	return !i.paid && today.After(i.dueOn)
}

// MarkPaid records payment of the invoice on the given date.
// Marking an already paid invoice again is a no-op: the original payment
// date is preserved.
func (i *Invoice) MarkPaid(paidOn time.Time) error {
	if paidOn.IsZero() {
		return errs.NewValueIsRequiredError("paidOn")
	}

	if i.paid {
		return nil
	}

	i.paid = true
	i.paidOn = &paidOn
	return nil
}

func (i *Invoice) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Invoice) setInvoiceNumber(invoiceNumber string) error {
	if invoiceNumber == "" {
		return errs.NewValueIsRequiredError("invoiceNumber")
	}
	i.invoiceNumber = invoiceNumber
	return nil
}

func (i *Invoice) setAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidError("amount: must not be negative")
	}
	i.amount = amount
	return nil
}

func (i *Invoice) setDates(issuedOn, dueOn time.Time) error {
	if issuedOn.IsZero() {
		return errs.NewValueIsRequiredError("issuedOn")
	}
	if dueOn.IsZero() {
		return errs.NewValueIsRequiredError("dueOn")
	}
	if dueOn.Before(issuedOn) {
		return errs.NewValueIsInvalidError("dueOn: must not precede issuedOn")
	}

	i.issuedOn = issuedOn
	i.dueOn = dueOn
	return nil
}
