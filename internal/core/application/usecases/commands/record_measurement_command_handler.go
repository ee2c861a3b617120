package commands

import (
	"context"

	"atelier/internal/core/domain/model/measurement"
)

// RecordMeasurementCommandHandler handles the business logic for recording
// customer measurements.
//
// Example:
//
//	handler := NewRecordMeasurementCommandHandler(uowFactory)
//	cmd, _ := NewRecordMeasurementCommand(customerID, measurement.Shirt, values, recordedOn)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("measurement recording failed: %w", err)
//	}
type RecordMeasurementCommandHandler struct {
	uowFactory MeasurementUoWFactory
}

// NewRecordMeasurementCommandHandler creates a handler for measurement recording.
// Requires a MeasurementUoWFactory for transactional persistence operations.
func NewRecordMeasurementCommandHandler(uowFactory MeasurementUoWFactory) RecordMeasurementCommandHandler {
	return RecordMeasurementCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the measurement recording command.
// Verifies the customer exists before creating the measurement; an unknown
// customer surfaces as errs.ErrObjectNotFound.
func (h RecordMeasurementCommandHandler) Handle(ctx context.Context, cmd RecordMeasurementCommand) error {
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

	aggregate, err := measurement.NewMeasurement(
		cmd.MeasurementID(), cmd.CustomerID(), cmd.Garment(), cmd.Values(), cmd.RecordedOn())
	if err != nil {
		return err
	}

	if err = uow.MeasurementRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
