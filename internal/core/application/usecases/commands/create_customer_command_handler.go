package commands

import (
	"context"

	"atelier/internal/core/domain/model/customer"
)

// CreateCustomerCommandHandler handles the business logic for customer registration.
//
// Example:
//
//	handler := NewCreateCustomerCommandHandler(uowFactory)
//	cmd, _ := NewCreateCustomerCommand("Jane Doe", "jane@example.com", "+1 555 0100", "12 Main St")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("customer registration failed: %w", err)
//	}
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewCreateCustomerCommandHandler creates a handler for customer registration.
// Requires a CustomerUoWFactory for transactional persistence operations.
func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the customer creation command.
// Creates a new customer entity and persists it within a transaction.
func (h CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) error {
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

	aggregate, err := customer.NewCustomer(
		cmd.CustomerID(), cmd.Name(), cmd.Email(), cmd.Phone(), cmd.Address())
	if err != nil {
		return err
	}

	if err = uow.CustomerRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
