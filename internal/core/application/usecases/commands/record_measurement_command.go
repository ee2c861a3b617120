package commands

import (
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/measurement"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var ErrRecordMeasurementCommandIsNotConstructed = errors.New(
	"RecordMeasurementCommand must be created via NewRecordMeasurementCommand constructor",
)

// RecordMeasurementCommand represents a request to record a set of body
// measurements for a customer, categorized by garment type.
//
// Example:
//
//	values := map[string]float64{"chest": 96.5, "waist": 82.0}
//	cmd, err := NewRecordMeasurementCommand(customerID, measurement.Suit, values, recordedOn)
//	if err != nil {
//	    return fmt.Errorf("invalid measurement data: %w", err)
//	}
//
//	handler := NewRecordMeasurementCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to record measurement: %w", err)
//	}
type RecordMeasurementCommand struct { //nolint:recvcheck //using for validation
	measurementID kernel.UUID
	customerID    kernel.UUID
	garment       measurement.Garment
	values        map[string]float64
	recordedOn    time.Time

	guard guard.ConstructorGuard
}

// NewRecordMeasurementCommand creates a command to record customer measurements.
// Automatically generates a unique ID for the measurement. Value content is
// validated by the domain model on creation.
func NewRecordMeasurementCommand(
	customerID kernel.UUID,
	garment measurement.Garment,
	values map[string]float64,
	recordedOn time.Time,
) (RecordMeasurementCommand, error) {
	command := RecordMeasurementCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setMeasurementID(kernel.NewUUID()),
		command.setCustomerID(customerID),
		command.setGarment(garment),
		command.setValues(values),
		command.setRecordedOn(recordedOn),
	); err != nil {
		return RecordMeasurementCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRecordMeasurementCommandIsNotConstructed if validation fails.
func (c RecordMeasurementCommand) Validate() error {
	return c.guard.Validate(ErrRecordMeasurementCommandIsNotConstructed)
}

// MeasurementID returns the generated measurement ID from the command.
func (c RecordMeasurementCommand) MeasurementID() kernel.UUID {
	return c.measurementID
}

// CustomerID returns the customer ID from the command.
func (c RecordMeasurementCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Garment returns the garment category from the command.
func (c RecordMeasurementCommand) Garment() measurement.Garment {
	return c.garment
}

// Values returns the measurement values from the command.
func (c RecordMeasurementCommand) Values() map[string]float64 {
	return c.values
}

// RecordedOn returns the measurement date from the command.
func (c RecordMeasurementCommand) RecordedOn() time.Time {
	return c.recordedOn
}

func (c *RecordMeasurementCommand) setMeasurementID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.measurementID = id
	return nil
}

func (c *RecordMeasurementCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customerID", err)
	}

	c.customerID = customerID
	return nil
}

func (c *RecordMeasurementCommand) setGarment(garment measurement.Garment) error {
	if err := garment.Validate(); err != nil {
		return err
	}

	c.garment = garment
	return nil
}

func (c *RecordMeasurementCommand) setValues(values map[string]float64) error {
	if len(values) == 0 {
		return errs.NewValueIsRequiredError("values")
	}

	c.values = values
	return nil
}

func (c *RecordMeasurementCommand) setRecordedOn(recordedOn time.Time) error {
	if recordedOn.IsZero() {
		return errs.NewValueIsRequiredError("recordedOn")
	}

	c.recordedOn = recordedOn
	return nil
}
