package commands

import (
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var ErrIssueInvoiceCommandIsNotConstructed = errors.New(
	"IssueInvoiceCommand must be created via NewIssueInvoiceCommand constructor",
)

// IssueInvoiceCommand represents a request to issue an invoice for an order.
// The invoice amount is computed from the order's particulars; the invoice is
// created and linked to the order in one transaction.
//
// Example:
//
//	cmd, err := NewIssueInvoiceCommand(orderID, "INV-2025-031", dueOn)
//	if err != nil {
//	    return fmt.Errorf("invalid invoice request: %w", err)
//	}
//
//	handler := NewIssueInvoiceCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to issue invoice: %w", err)
//	}
//	fmt.Printf("Issued invoice with ID: %s", cmd.InvoiceID())
type IssueInvoiceCommand struct { //nolint:recvcheck //using for validation
	invoiceID     kernel.UUID
	orderID       kernel.UUID
	invoiceNumber string
	dueOn         time.Time

	guard guard.ConstructorGuard
}

// NewIssueInvoiceCommand creates a command to issue an invoice for an order.
// Automatically generates a unique ID for the invoice.
func NewIssueInvoiceCommand(orderID kernel.UUID, invoiceNumber string, dueOn time.Time) (IssueInvoiceCommand, error) {
	command := IssueInvoiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setInvoiceID(kernel.NewUUID()),
		command.setOrderID(orderID),
		command.setInvoiceNumber(invoiceNumber),
		command.setDueOn(dueOn),
	); err != nil {
		return IssueInvoiceCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrIssueInvoiceCommandIsNotConstructed if validation fails.
func (c IssueInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrIssueInvoiceCommandIsNotConstructed)
}

// InvoiceID returns the generated invoice ID from the command.
func (c IssueInvoiceCommand) InvoiceID() kernel.UUID {
	return c.invoiceID
}

// OrderID returns the order ID from the command.
func (c IssueInvoiceCommand) OrderID() kernel.UUID {
	return c.orderID
}

// InvoiceNumber returns the invoice number from the command.
func (c IssueInvoiceCommand) InvoiceNumber() string {
	return c.invoiceNumber
}

// DueOn returns the invoice due date from the command.
func (c IssueInvoiceCommand) DueOn() time.Time {
	return c.dueOn
}

func (c *IssueInvoiceCommand) setInvoiceID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.invoiceID = id
	return nil
}

func (c *IssueInvoiceCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("orderID", err)
	}

	c.orderID = orderID
	return nil
}

func (c *IssueInvoiceCommand) setInvoiceNumber(invoiceNumber string) error {
	if invoiceNumber == "" {
		return errs.NewValueIsRequiredError("invoiceNumber")
	}

	c.invoiceNumber = invoiceNumber
	return nil
}

func (c *IssueInvoiceCommand) setDueOn(dueOn time.Time) error {
	if dueOn.IsZero() {
		return errs.NewValueIsRequiredError("dueOn")
	}

	c.dueOn = dueOn
	return nil
}
