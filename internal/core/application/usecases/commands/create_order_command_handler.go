package commands

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order registration.
// Verifies the customer exists and persists the new order with its line items.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand("ORD-2025-014", customerID, placedOn, particulars)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order registration failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order registration.
// Requires a CreateOrderUoWFactory for transactional persistence operations.
func NewCreateOrderCommandHandler(uowFactory CreateOrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// An unknown customer surfaces as errs.ErrObjectNotFound and a duplicate
// order number as errs.ErrObjectAlreadyExists.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	if _, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	particulars := make([]*order.Particular, 0, len(cmd.Particulars()))
	for _, data := range cmd.Particulars() {
		particular, err := order.NewParticular(kernel.NewUUID(), data.Name, data.Detail, data.Amount)
		if err != nil {
			return err
		}
		particulars = append(particulars, particular)
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(), cmd.OrderNumber(), cmd.CustomerID(), cmd.PlacedOn(), particulars)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
