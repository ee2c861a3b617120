package commands

import (
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var ErrMarkInvoicePaidCommandIsNotConstructed = errors.New(
	"MarkInvoicePaidCommand must be created via NewMarkInvoicePaidCommand constructor",
)

// MarkInvoicePaidCommand represents a request to record the payment of an
// invoice. Paying an already paid invoice is a no-op.
type MarkInvoicePaidCommand struct { //nolint:recvcheck //using for validation
	invoiceID kernel.UUID
	paidOn    time.Time

	guard guard.ConstructorGuard
}

// NewMarkInvoicePaidCommand creates a command to record an invoice payment.
func NewMarkInvoicePaidCommand(invoiceID kernel.UUID, paidOn time.Time) (MarkInvoicePaidCommand, error) {
	command := MarkInvoicePaidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setInvoiceID(invoiceID),
		command.setPaidOn(paidOn),
	); err != nil {
		return MarkInvoicePaidCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrMarkInvoicePaidCommandIsNotConstructed if validation fails.
func (c MarkInvoicePaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkInvoicePaidCommandIsNotConstructed)
}

// InvoiceID returns the invoice ID from the command.
func (c MarkInvoicePaidCommand) InvoiceID() kernel.UUID {
	return c.invoiceID
}

// PaidOn returns the payment date from the command.
func (c MarkInvoicePaidCommand) PaidOn() time.Time {
	return c.paidOn
}

func (c *MarkInvoicePaidCommand) setInvoiceID(invoiceID kernel.UUID) error {
	if err := invoiceID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("invoiceID", err)
	}

	c.invoiceID = invoiceID
	return nil
}

func (c *MarkInvoicePaidCommand) setPaidOn(paidOn time.Time) error {
	if paidOn.IsZero() {
		return errs.NewValueIsRequiredError("paidOn")
	}

	c.paidOn = paidOn
	return nil
}
