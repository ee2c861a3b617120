package commands

import (
	"context"
)

// MarkInvoicePaidCommandHandler handles the business logic for invoice payment
// recording.
type MarkInvoicePaidCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

// NewMarkInvoicePaidCommandHandler creates a handler for invoice payment recording.
// Requires an InvoiceUoWFactory for transactional persistence operations.
func NewMarkInvoicePaidCommandHandler(uowFactory InvoiceUoWFactory) MarkInvoicePaidCommandHandler {
	return MarkInvoicePaidCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment recording command.
// An unknown invoice surfaces as errs.ErrObjectNotFound; paying an already
// paid invoice leaves the stored payment date untouched.
func (h MarkInvoicePaidCommandHandler) Handle(ctx context.Context, cmd MarkInvoicePaidCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	invoiceRepo := uow.InvoiceRepository()

	aggregate, err := invoiceRepo.Get(ctx, cmd.InvoiceID())
	if err != nil {
		return err
	}

	if err = aggregate.MarkPaid(cmd.PaidOn()); err != nil {
		return err
	}

	if err = invoiceRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
