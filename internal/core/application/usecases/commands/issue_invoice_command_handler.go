package commands

import (
	"context"
	"time"

	"atelier/internal/core/domain/model/invoice"
)

// IssueInvoiceCommandHandler handles the business logic for invoice issuing.
// The invoice amount is the sum of the order's particulars, and linking the
// invoice to the order happens in the same transaction as creating it.
//
// Example:
//
//	handler := NewIssueInvoiceCommandHandler(uowFactory)
//	cmd, _ := NewIssueInvoiceCommand(orderID, "INV-2025-031", dueOn)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("invoice issuing failed: %w", err)
//	}
type IssueInvoiceCommandHandler struct {
	uowFactory IssueInvoiceUoWFactory
}

// NewIssueInvoiceCommandHandler creates a handler for invoice issuing.
// Requires an IssueInvoiceUoWFactory for transactional persistence operations.
func NewIssueInvoiceCommandHandler(uowFactory IssueInvoiceUoWFactory) IssueInvoiceCommandHandler {
	return IssueInvoiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the invoice issuing command.
// An unknown order surfaces as errs.ErrObjectNotFound, an order that already
// carries an invoice as errs.ErrObjectAlreadyExists, and a duplicate invoice
// number as errs.ErrObjectAlreadyExists from the repository.
func (h IssueInvoiceCommandHandler) Handle(ctx context.Context, cmd IssueInvoiceCommand) error {
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

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	inv, err := invoice.NewInvoice(
		cmd.InvoiceID(), cmd.InvoiceNumber(), aggregate.TotalAmount(), time.Now(), cmd.DueOn())
	if err != nil {
		return err
	}

	if err = aggregate.AttachInvoice(inv.ID()); err != nil {
		return err
	}

	if err = uow.InvoiceRepository().Add(ctx, inv); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
