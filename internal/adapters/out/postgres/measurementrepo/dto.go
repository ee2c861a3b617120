// Package measurementrepo provides data transfer objects and mapping functions
// for measurement persistence. Measurement values are free-form key-value pairs
// and are stored as a jsonb column.
package measurementrepo

import (
	"encoding/json"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/measurement"

	"github.com/google/uuid"
)

// MeasurementDTO represents the database structure for persisting measurements.
type MeasurementDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Garment    int       `gorm:"type:int;not null"`
	Values     string    `gorm:"type:jsonb;not null"`
	RecordedOn time.Time `gorm:"type:date;not null"`
}

// TableName specifies the database table name for measurement entities.
func (MeasurementDTO) TableName() string {
	return "measurements"
}

// fromDomain converts a measurement domain aggregate to its database representation.
func fromDomain(aggregate *measurement.Measurement) (MeasurementDTO, error) {
	values, err := json.Marshal(aggregate.Values())
	if err != nil {
		return MeasurementDTO{}, err
	}

	return MeasurementDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		Garment:    int(aggregate.Garment()),
		Values:     string(values),
		RecordedOn: aggregate.RecordedOn(),
	}, nil
}

// toDomain converts a database DTO to a measurement domain aggregate.
func toDomain(dto MeasurementDTO) (*measurement.Measurement, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var values map[string]float64
	if err = json.Unmarshal([]byte(dto.Values), &values); err != nil {
		return nil, err
	}

	return measurement.RestoreMeasurement(
		id,
		customerID,
		measurement.Garment(dto.Garment),
		values,
		dto.RecordedOn,
	)
}
