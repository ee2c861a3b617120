// Package measurement provides the Measurement aggregate: a set of recorded
// body measurements for one customer, categorized by garment type. Measurements
// have a lifecycle independent of orders.
package measurement

import (
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
)

// ErrMeasurementIsNotConstructed is returned when a Measurement instance was not
// created through the NewMeasurement factory method.
var ErrMeasurementIsNotConstructed = errors.New("Measurement must be created via NewMeasurement constructor")

// Measurement captures a customer's measurements for one garment category.
// Values are free-form key-value pairs (e.g. "chest" -> 96.5) recorded in
// centimeters; the set of keys varies per garment.
type Measurement struct {
	id         kernel.UUID
	customerID kernel.UUID
	garment    Garment
	values     map[string]float64
	recordedOn time.Time

	isConstructed bool
}

// NewMeasurement creates a new Measurement with validation.
// At least one measurement value is required.
func NewMeasurement(
	id kernel.UUID,
	customerID kernel.UUID,
	garment Garment,
	values map[string]float64,
	recordedOn time.Time,
) (*Measurement, error) {
	measurement := &Measurement{
		isConstructed: true,
	}

	if err := errors.Join(
		measurement.setID(id),
		measurement.setCustomerID(customerID),
		measurement.setGarment(garment),
		measurement.setValues(values),
		measurement.setRecordedOn(recordedOn),
	); err != nil {
		return nil, err
	}

	return measurement, nil
}

// RestoreMeasurement reconstructs a Measurement from persisted state.
func RestoreMeasurement(
	id kernel.UUID,
	customerID kernel.UUID,
	garment Garment,
	values map[string]float64,
	recordedOn time.Time,
) (*Measurement, error) {
	return NewMeasurement(id, customerID, garment, values, recordedOn)
}

// Validate ensures the Measurement instance was properly constructed.
func (m *Measurement) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMeasurementIsNotConstructed
	}
	return nil
}

// ID returns the measurement's unique identifier.
func (m *Measurement) ID() kernel.UUID {
	return m.id
}

// CustomerID returns the identifier of the customer the measurement belongs to.
func (m *Measurement) CustomerID() kernel.UUID {
	return m.customerID
}

// Garment returns the garment category the measurement applies to.
func (m *Measurement) Garment() Garment {
	return m.garment
}

// Values returns a copy of the recorded key-value measurement data.
func (m *Measurement) Values() map[string]float64 {
	values := make(map[string]float64, len(m.values))
	for k, v := range m.values {
		values[k] = v
	}
	return values
}

// RecordedOn returns the date the measurement was taken.
func (m *Measurement) RecordedOn() time.Time {
	return m.recordedOn
}

func (m *Measurement) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Measurement) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customerID", err)
	}
	m.customerID = customerID
	return nil
}

func (m *Measurement) setGarment(garment Garment) error {
	if err := garment.Validate(); err != nil {
		return err
	}
	m.garment = garment
	return nil
}

func (m *Measurement) setValues(values map[string]float64) error {
	if len(values) == 0 {
		return errs.NewValueIsRequiredError("values")
	}

	copied := make(map[string]float64, len(values))
	for k, v := range values {
		if k == "" {
			return errs.NewValueIsRequiredError("values key")
		}
		if v <= 0 {
			return errs.NewValueIsInvalidError("values: measurements must be positive")
		}
		copied[k] = v
	}

	m.values = copied
	return nil
}

func (m *Measurement) setRecordedOn(recordedOn time.Time) error {
	if recordedOn.IsZero() {
		return errs.NewValueIsRequiredError("recordedOn")
	}
	m.recordedOn = recordedOn
	return nil
}
