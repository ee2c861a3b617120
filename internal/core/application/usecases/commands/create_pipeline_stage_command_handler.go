package commands

import (
	"context"

	"atelier/internal/core/domain/model/pipeline"
)

// CreatePipelineStageCommandHandler handles the business logic for pipeline
// stage definition.
type CreatePipelineStageCommandHandler struct {
	uowFactory PipelineUoWFactory
}

// NewCreatePipelineStageCommandHandler creates a handler for pipeline stage definition.
// Requires a PipelineUoWFactory for transactional persistence operations.
func NewCreatePipelineStageCommandHandler(uowFactory PipelineUoWFactory) CreatePipelineStageCommandHandler {
	return CreatePipelineStageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pipeline stage creation command.
// A duplicate sequence position surfaces as errs.ErrObjectAlreadyExists.
func (h CreatePipelineStageCommandHandler) Handle(ctx context.Context, cmd CreatePipelineStageCommand) error {
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

	aggregate, err := pipeline.NewStage(
		cmd.StageID(), cmd.Name(), cmd.Description(), cmd.SequencePosition())
	if err != nil {
		return err
	}

	if err = uow.PipelineStageRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
