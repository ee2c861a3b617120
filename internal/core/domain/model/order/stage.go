package order

import (
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
)

// ErrStageIsNotConstructed is returned when a Stage instance was not created
// through the NewStage factory method.
var ErrStageIsNotConstructed = errors.New("order Stage must be created via NewStage constructor")

// Stage is the per-order instantiation of a pipeline stage definition.
// It carries its own status, dates, and vendor assignment, while the pipeline
// definition supplies the name and ordering.
//
// The sequence position is copied from the definition when the stage is
// appended to an order, so reordering or inserting pipeline definitions later
// never renumbers stages already attached to orders.
//
// Stage follows these invariants:
//   - Must reference exactly one pipeline stage definition
//   - End date is set if and only if the status is Completed
//   - Vendor assignment is optional and may be cleared
type Stage struct {
	id               kernel.UUID
	pipelineStageID  kernel.UUID
	sequencePosition int
	status           StageStatus
	startDate        time.Time
	endDate          *time.Time
	vendorID         *kernel.UUID

	isConstructed bool
}

// NewStage creates a new order stage with validation.
//
// The initial status must be Pending or In Progress; a stage cannot be born
// Completed because completion is what stamps the end date. Vendor is
// optional.
func NewStage(
	id kernel.UUID,
	pipelineStageID kernel.UUID,
	sequencePosition int,
	status StageStatus,
	startDate time.Time,
	vendorID *kernel.UUID,
) (*Stage, error) {
	stage := &Stage{
		isConstructed: true,
	}

	if err := errors.Join(
		stage.setID(id),
		stage.setPipelineStageID(pipelineStageID),
		stage.setSequencePosition(sequencePosition),
		stage.setInitialStatus(status),
		stage.setStartDate(startDate),
		stage.setVendorID(vendorID),
	); err != nil {
		return nil, err
	}

	return stage, nil
}

// RestoreStage reconstructs an order stage from persisted state, including
// its end date.
func RestoreStage(
	id kernel.UUID,
	pipelineStageID kernel.UUID,
	sequencePosition int,
	status StageStatus,
	startDate time.Time,
	endDate *time.Time,
	vendorID *kernel.UUID,
) (*Stage, error) {
	stage := &Stage{
		isConstructed: true,
	}

	if err := errors.Join(
		stage.setID(id),
		stage.setPipelineStageID(pipelineStageID),
		stage.setSequencePosition(sequencePosition),
		stage.setStartDate(startDate),
		stage.setVendorID(vendorID),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if (status == StageCompleted) != (endDate != nil) {
		return nil, errs.NewValueIsInvalidError("endDate: must be set if and only if the stage is Completed")
	}

	stage.status = status
	stage.endDate = endDate
	return stage, nil
}

// Validate ensures the Stage instance was properly constructed.
func (s *Stage) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStageIsNotConstructed
	}
	return nil
}

// ID returns the order stage's unique identifier.
func (s *Stage) ID() kernel.UUID {
	return s.id
}

// PipelineStageID returns the identifier of the pipeline stage definition
// this stage instantiates.
func (s *Stage) PipelineStageID() kernel.UUID {
	return s.pipelineStageID
}

// SequencePosition returns the stage's position in the order's pipeline.
// Lower positions run first; positions may have gaps.
func (s *Stage) SequencePosition() int {
	return s.sequencePosition
}

// Status returns the current status of the stage.
func (s *Stage) Status() StageStatus {
	return s.status
}

// StartDate returns the date the stage was scheduled to start.
func (s *Stage) StartDate() time.Time {
	return s.startDate
}

// EndDate returns the completion date, or nil while the stage is unfinished.
func (s *Stage) EndDate() *time.Time {
	return s.endDate
}

// VendorID returns the assigned vendor's ID, or nil if unassigned.
func (s *Stage) VendorID() *kernel.UUID {
	return s.vendorID
}

// changeStatus applies a recognized status to the stage and keeps the
// end-date invariant: completing stamps the end date with today (preserving
// an already present date), any other status clears it.
func (s *Stage) changeStatus(status StageStatus, today time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}

	s.status = status

	if status == StageCompleted {
		if s.endDate == nil {
			endDate := today
			s.endDate = &endDate
		}
	} else {
		s.endDate = nil
	}

	return nil
}

// assignVendor replaces the stage's vendor assignment.
// A nil vendorID clears the assignment.
func (s *Stage) assignVendor(vendorID *kernel.UUID) error {
	return s.setVendorID(vendorID)
}

// activate promotes a Pending stage to In Progress. Stages already
// In Progress or Completed are left untouched so a repeated completion of the
// predecessor never regresses finished work. Reports whether the stage was
// promoted.
func (s *Stage) activate() bool {
	if s.status != StagePending {
		return false
	}

	s.status = StageInProgress
	return true
}

func (s *Stage) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Stage) setPipelineStageID(pipelineStageID kernel.UUID) error {
	if err := pipelineStageID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("pipelineStageID", err)
	}
	s.pipelineStageID = pipelineStageID
	return nil
}

func (s *Stage) setSequencePosition(sequencePosition int) error {
	if sequencePosition < 1 {
		return errs.NewValueIsInvalidError("sequencePosition: must be at least 1")
	}
	s.sequencePosition = sequencePosition
	return nil
}

func (s *Stage) setInitialStatus(status StageStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if status == StageCompleted {
		return errs.NewValueIsInvalidError("status: a new stage cannot start out Completed")
	}
	s.status = status
	return nil
}

func (s *Stage) setStartDate(startDate time.Time) error {
	if startDate.IsZero() {
		return errs.NewValueIsRequiredError("startDate")
	}
	s.startDate = startDate
	return nil
}

func (s *Stage) setVendorID(vendorID *kernel.UUID) error {
	if vendorID != nil {
		if err := vendorID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("vendorID", err)
		}
	}
	s.vendorID = vendorID
	return nil
}
