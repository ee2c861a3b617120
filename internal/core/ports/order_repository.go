package ports

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order is stored together with its stages and particulars; Update persists
// the whole aggregate, so a completed stage and its activated successor are
// written in the same transaction.
type OrderRepository interface {
	// Add persists a new order aggregate with its stages and particulars.
	// A duplicate order number surfaces as errs.ObjectAlreadyExistsError.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, including
	// stage rows and particulars.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByStageID retrieves the order that owns the given order stage.
	// Returns errs.ObjectNotFoundError if no order owns such a stage.
	//
	// Inside a transaction the order row is locked for update, so two
	// concurrent stage advancements on the same order serialize.
	GetByStageID(ctx context.Context, stageID kernel.UUID) (*order.Order, error)

	// GetAllUncompleted retrieves all orders that are not yet Completed.
	// Used by the completion sweep to promote finished orders.
	GetAllUncompleted(ctx context.Context) ([]*order.Order, error)
}
