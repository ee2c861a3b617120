// Package pipeline provides the pipeline stage definition: a named, ordered
// step template in the production process, shared across all orders.
//
// Ordering is carried by an explicit sequence position rather than by the
// storage identifier, so definitions can be reordered or inserted between
// existing steps without renumbering anything already attached to orders.
package pipeline

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
)

// MaxSequencePosition bounds the sequence position of a stage definition.
// Positions are small hand-assigned integers; the bound exists to catch
// obviously wrong input like 0 or negative values.
const MaxSequencePosition = 1000

// ErrStageIsNotConstructed is returned when a Stage instance was not created
// through the NewStage factory method.
var ErrStageIsNotConstructed = errors.New("pipeline Stage must be created via NewStage constructor")

// Stage is a pipeline stage definition, e.g. "Cutting", "Stitching",
// "Finishing". The sequence position defines the global pipeline order;
// order stages copy it when they are appended to an order.
type Stage struct {
	id               kernel.UUID
	name             string
	description      string
	sequencePosition int

	isConstructed bool
}

// NewStage creates a new pipeline stage definition with validation.
// Sequence positions start at 1 and need not be contiguous; leaving gaps
// (10, 20, 30, ...) makes later insertions cheap.
func NewStage(id kernel.UUID, name, description string, sequencePosition int) (*Stage, error) {
	stage := &Stage{
		isConstructed: true,
	}

	if err := errors.Join(
		stage.setID(id),
		stage.setName(name),
		stage.setSequencePosition(sequencePosition),
	); err != nil {
		return nil, err
	}

	stage.description = description
	return stage, nil
}

// RestoreStage reconstructs a pipeline stage definition from persisted state.
func RestoreStage(id kernel.UUID, name, description string, sequencePosition int) (*Stage, error) {
	return NewStage(id, name, description, sequencePosition)
}

// Validate ensures the Stage instance was properly constructed.
func (s *Stage) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStageIsNotConstructed
	}
	return nil
}

// ID returns the stage definition's unique identifier.
func (s *Stage) ID() kernel.UUID {
	return s.id
}

// Name returns the stage definition's display name.
func (s *Stage) Name() string {
	return s.name
}

// Description returns the stage definition's free-text description.
func (s *Stage) Description() string {
	return s.description
}

// SequencePosition returns the stage definition's position in the pipeline.
// Lower positions run first.
func (s *Stage) SequencePosition() int {
	return s.sequencePosition
}

func (s *Stage) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Stage) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}

func (s *Stage) setSequencePosition(sequencePosition int) error {
	if sequencePosition < 1 || sequencePosition > MaxSequencePosition {
		return errs.NewValueIsOutOfRangeError("sequencePosition", sequencePosition, 1, MaxSequencePosition)
	}
	s.sequencePosition = sequencePosition
	return nil
}
