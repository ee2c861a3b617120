package commands

import (
	"context"

	"atelier/internal/core/domain/model/order"
)

// AddOrderStageCommandHandler handles the business logic for appending a
// production stage to an order. The sequence position is copied from the
// pipeline stage definition at append time, so later edits to the definition
// never reshuffle work already planned.
//
// Example:
//
//	handler := NewAddOrderStageCommandHandler(uowFactory)
//	cmd, _ := NewAddOrderStageCommand(orderID, stitchingStageID, &vendorID, startDate, order.StagePending)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add stage: %w", err)
//	}
type AddOrderStageCommandHandler struct {
	uowFactory AddStageUoWFactory
}

// NewAddOrderStageCommandHandler creates a handler for stage appends.
// Requires an AddStageUoWFactory for transactional persistence operations.
func NewAddOrderStageCommandHandler(uowFactory AddStageUoWFactory) AddOrderStageCommandHandler {
	return AddOrderStageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the stage append command.
// Loads the order and the pipeline definition, verifies the vendor when one is
// assigned, and persists the grown aggregate. A duplicate sequence position on
// the order surfaces as errs.ErrObjectAlreadyExists.
func (h AddOrderStageCommandHandler) Handle(ctx context.Context, cmd AddOrderStageCommand) error {
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

	definition, err := uow.PipelineStageRepository().Get(ctx, cmd.PipelineStageID())
	if err != nil {
		return err
	}

	if cmd.VendorID() != nil {
		if _, err = uow.VendorRepository().Get(ctx, *cmd.VendorID()); err != nil {
			return err
		}
	}

	stage, err := order.NewStage(
		cmd.StageID(),
		definition.ID(),
		definition.SequencePosition(),
		cmd.Status(),
		cmd.StartDate(),
		cmd.VendorID(),
	)
	if err != nil {
		return err
	}

	if err = aggregate.AddStage(stage); err != nil {
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
