package commands

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var ErrAdvanceOrderStageCommandIsNotConstructed = errors.New(
	"AdvanceOrderStageCommand must be created via NewAdvanceOrderStageCommand constructor",
)

// AdvanceOrderStageCommand represents a request to change the status of one
// order stage, optionally assigning a vendor. Completing a stage triggers the
// automatic activation of the next stage in sequence position order.
//
// Example:
//
//	cmd, err := NewAdvanceOrderStageCommand(stageID, order.StageCompleted, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid advance request: %w", err)
//	}
//
//	handler := NewAdvanceOrderStageCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to advance stage: %w", err)
//	}
type AdvanceOrderStageCommand struct { //nolint:recvcheck //using for validation
	stageID  kernel.UUID
	status   order.StageStatus
	vendorID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewAdvanceOrderStageCommand creates a command to advance an order stage.
// The vendor ID is optional; nil clears any current assignment.
func NewAdvanceOrderStageCommand(
	stageID kernel.UUID,
	status order.StageStatus,
	vendorID *kernel.UUID,
) (AdvanceOrderStageCommand, error) {
	command := AdvanceOrderStageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setStageID(stageID),
		command.setStatus(status),
		command.setVendorID(vendorID),
	); err != nil {
		return AdvanceOrderStageCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvanceOrderStageCommandIsNotConstructed if validation fails.
func (c AdvanceOrderStageCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderStageCommandIsNotConstructed)
}

// StageID returns the order stage ID from the command.
func (c AdvanceOrderStageCommand) StageID() kernel.UUID {
	return c.stageID
}

// Status returns the requested stage status from the command.
func (c AdvanceOrderStageCommand) Status() order.StageStatus {
	return c.status
}

// VendorID returns the optional vendor ID from the command.
func (c AdvanceOrderStageCommand) VendorID() *kernel.UUID {
	return c.vendorID
}

func (c *AdvanceOrderStageCommand) setStageID(stageID kernel.UUID) error {
	if err := stageID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("stageID", err)
	}

	c.stageID = stageID
	return nil
}

func (c *AdvanceOrderStageCommand) setStatus(status order.StageStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *AdvanceOrderStageCommand) setVendorID(vendorID *kernel.UUID) error {
	if vendorID != nil {
		if err := vendorID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("vendorID", err)
		}
	}

	c.vendorID = vendorID
	return nil
}
