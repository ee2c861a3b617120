package commands

import (
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var ErrAddOrderStageCommandIsNotConstructed = errors.New(
	"AddOrderStageCommand must be created via NewAddOrderStageCommand constructor",
)

// AddOrderStageCommand represents a request to append one production stage to
// an existing order. The stage takes its sequence position from the referenced
// pipeline definition; appending never triggers progression on other stages.
//
// Example:
//
//	cmd, err := NewAddOrderStageCommand(orderID, cuttingStageID, nil, startDate, order.StagePending)
//	if err != nil {
//	    return fmt.Errorf("invalid stage data: %w", err)
//	}
//
//	handler := NewAddOrderStageCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add stage: %w", err)
//	}
type AddOrderStageCommand struct { //nolint:recvcheck //using for validation
	stageID         kernel.UUID
	orderID         kernel.UUID
	pipelineStageID kernel.UUID
	vendorID        *kernel.UUID
	startDate       time.Time
	status          order.StageStatus

	guard guard.ConstructorGuard
}

// NewAddOrderStageCommand creates a command to append a stage to an order.
// Automatically generates a unique ID for the new stage.
func NewAddOrderStageCommand(
	orderID kernel.UUID,
	pipelineStageID kernel.UUID,
	vendorID *kernel.UUID,
	startDate time.Time,
	status order.StageStatus,
) (AddOrderStageCommand, error) {
	command := AddOrderStageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setStageID(kernel.NewUUID()),
		command.setOrderID(orderID),
		command.setPipelineStageID(pipelineStageID),
		command.setVendorID(vendorID),
		command.setStartDate(startDate),
		command.setStatus(status),
	); err != nil {
		return AddOrderStageCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddOrderStageCommandIsNotConstructed if validation fails.
func (c AddOrderStageCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderStageCommandIsNotConstructed)
}

// StageID returns the generated order stage ID from the command.
func (c AddOrderStageCommand) StageID() kernel.UUID {
	return c.stageID
}

// OrderID returns the order ID from the command.
func (c AddOrderStageCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PipelineStageID returns the pipeline stage definition ID from the command.
func (c AddOrderStageCommand) PipelineStageID() kernel.UUID {
	return c.pipelineStageID
}

// VendorID returns the optional vendor ID from the command.
func (c AddOrderStageCommand) VendorID() *kernel.UUID {
	return c.vendorID
}

// StartDate returns the stage start date from the command.
func (c AddOrderStageCommand) StartDate() time.Time {
	return c.startDate
}

// Status returns the initial stage status from the command.
func (c AddOrderStageCommand) Status() order.StageStatus {
	return c.status
}

func (c *AddOrderStageCommand) setStageID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.stageID = id
	return nil
}

func (c *AddOrderStageCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("orderID", err)
	}

	c.orderID = orderID
	return nil
}

func (c *AddOrderStageCommand) setPipelineStageID(pipelineStageID kernel.UUID) error {
	if err := pipelineStageID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("pipelineStageID", err)
	}

	c.pipelineStageID = pipelineStageID
	return nil
}

func (c *AddOrderStageCommand) setVendorID(vendorID *kernel.UUID) error {
	if vendorID != nil {
		if err := vendorID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("vendorID", err)
		}
	}

	c.vendorID = vendorID
	return nil
}

func (c *AddOrderStageCommand) setStartDate(startDate time.Time) error {
	if startDate.IsZero() {
		return errs.NewValueIsRequiredError("startDate")
	}

	c.startDate = startDate
	return nil
}

func (c *AddOrderStageCommand) setStatus(status order.StageStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
