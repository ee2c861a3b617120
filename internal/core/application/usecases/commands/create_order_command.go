package commands

import (
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// ParticularData carries one billable line item of a new order.
type ParticularData struct {
	Name   string
	Detail string
	Amount decimal.Decimal
}

// CreateOrderCommand represents a request to register a new custom order with
// its billable line items. Stages are appended separately as work is planned.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("ORD-2025-014", customerID, placedOn, []ParticularData{
//	    {Name: "Wedding suit", Detail: "Three piece, navy", Amount: decimal.NewFromInt(1200)},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Created order with ID: %s", cmd.OrderID())
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	orderNumber string
	customerID  kernel.UUID
	placedOn    time.Time
	particulars []ParticularData

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Automatically generates a unique ID for the order.
func NewCreateOrderCommand(
	orderNumber string,
	customerID kernel.UUID,
	placedOn time.Time,
	particulars []ParticularData,
) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(kernel.NewUUID()),
		command.setOrderNumber(orderNumber),
		command.setCustomerID(customerID),
		command.setPlacedOn(placedOn),
		command.setParticulars(particulars),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the generated order ID from the command.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderNumber returns the order number from the command.
func (c CreateOrderCommand) OrderNumber() string {
	return c.orderNumber
}

// CustomerID returns the customer ID from the command.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// PlacedOn returns the order placement date from the command.
func (c CreateOrderCommand) PlacedOn() time.Time {
	return c.placedOn
}

// Particulars returns the line items from the command.
func (c CreateOrderCommand) Particulars() []ParticularData {
	return c.particulars
}

func (c *CreateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customerID", err)
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setPlacedOn(placedOn time.Time) error {
	if placedOn.IsZero() {
		return errs.NewValueIsRequiredError("placedOn")
	}

	c.placedOn = placedOn
	return nil
}

func (c *CreateOrderCommand) setParticulars(particulars []ParticularData) error {
	for _, particular := range particulars {
		if particular.Name == "" {
			return errs.NewValueIsRequiredError("particulars: name")
		}
		if particular.Amount.IsNegative() {
			return errs.NewValueIsInvalidError("particulars: amount must not be negative")
		}
	}

	c.particulars = particulars
	return nil
}
