package commands

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/pipeline"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var ErrCreatePipelineStageCommandIsNotConstructed = errors.New(
	"CreatePipelineStageCommand must be created via NewCreatePipelineStageCommand constructor",
)

// CreatePipelineStageCommand represents a request to define a new production
// pipeline stage. Sequence positions order the pipeline; gaps between
// positions are fine and leave room for later insertions.
//
// Example:
//
//	cmd, err := NewCreatePipelineStageCommand("Cutting", "Fabric cutting on the main table", 10)
//	if err != nil {
//	    return fmt.Errorf("invalid stage definition: %w", err)
//	}
//
//	handler := NewCreatePipelineStageCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create pipeline stage: %w", err)
//	}
type CreatePipelineStageCommand struct { //nolint:recvcheck //using for validation
	stageID          kernel.UUID
	name             string
	description      string
	sequencePosition int

	guard guard.ConstructorGuard
}

// NewCreatePipelineStageCommand creates a command to define a pipeline stage.
// Automatically generates a unique ID for the definition.
func NewCreatePipelineStageCommand(name, description string, sequencePosition int) (CreatePipelineStageCommand, error) {
	command := CreatePipelineStageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setStageID(kernel.NewUUID()),
		command.setName(name),
		command.setSequencePosition(sequencePosition),
	); err != nil {
		return CreatePipelineStageCommand{}, err
	}

	command.description = description

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreatePipelineStageCommandIsNotConstructed if validation fails.
func (c CreatePipelineStageCommand) Validate() error {
	return c.guard.Validate(ErrCreatePipelineStageCommandIsNotConstructed)
}

// StageID returns the generated definition ID from the command.
func (c CreatePipelineStageCommand) StageID() kernel.UUID {
	return c.stageID
}

// Name returns the stage name from the command.
func (c CreatePipelineStageCommand) Name() string {
	return c.name
}

// Description returns the stage description from the command.
func (c CreatePipelineStageCommand) Description() string {
	return c.description
}

// SequencePosition returns the pipeline position from the command.
func (c CreatePipelineStageCommand) SequencePosition() int {
	return c.sequencePosition
}

func (c *CreatePipelineStageCommand) setStageID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.stageID = id
	return nil
}

func (c *CreatePipelineStageCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreatePipelineStageCommand) setSequencePosition(sequencePosition int) error {
	if sequencePosition < 1 || sequencePosition > pipeline.MaxSequencePosition {
		return errs.NewValueIsOutOfRangeError(
			"sequencePosition", sequencePosition, 1, pipeline.MaxSequencePosition)
	}

	c.sequencePosition = sequencePosition
	return nil
}
