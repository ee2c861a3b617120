package commands

import (
	"context"
	"time"
)

// AdvanceOrderStageCommandHandler handles the business logic for stage
// advancement, the central operation of the production workflow.
//
// The owning order aggregate is loaded with its row locked FOR UPDATE, so the
// completed stage and the activated next stage are written in the same
// transaction and concurrent advances on the same order serialize.
//
// Example:
//
//	handler := NewAdvanceOrderStageCommandHandler(uowFactory)
//	cmd, _ := NewAdvanceOrderStageCommand(stageID, order.StageCompleted, &vendorID)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("stage advancement failed: %w", err)
//	}
type AdvanceOrderStageCommandHandler struct {
	uowFactory AdvanceOrderUoWFactory
}

// NewAdvanceOrderStageCommandHandler creates a handler for stage advancement.
// Requires an AdvanceOrderUoWFactory for transactional persistence operations.
func NewAdvanceOrderStageCommandHandler(uowFactory AdvanceOrderUoWFactory) AdvanceOrderStageCommandHandler {
	return AdvanceOrderStageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the stage advancement command.
// Verifies the assigned vendor exists before anything is written, applies the
// status change to the aggregate, and persists the whole order in one
// transaction. Unknown stage or vendor surfaces as errs.ErrObjectNotFound
// without touching the database.
func (h AdvanceOrderStageCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderStageCommand) error {
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

	aggregate, err := orderRepo.GetByStageID(ctx, cmd.StageID())
	if err != nil {
		return err
	}

	if cmd.VendorID() != nil {
		if _, err = uow.VendorRepository().Get(ctx, *cmd.VendorID()); err != nil {
			return err
		}
	}

	if _, err = aggregate.AdvanceStage(cmd.StageID(), cmd.Status(), cmd.VendorID(), time.Now()); err != nil {
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
