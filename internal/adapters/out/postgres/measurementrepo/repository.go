package measurementrepo

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/measurement"

	"gorm.io/gorm"
)

// GormMeasurementRepository implements MeasurementRepository using GORM.
type GormMeasurementRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMeasurementRepository creates a new GORM measurement repository.
func NewGormMeasurementRepository(db *gorm.DB, tracker aggregateTracker) *GormMeasurementRepository {
	return &GormMeasurementRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new measurement to the database.
func (r *GormMeasurementRepository) Add(ctx context.Context, aggregate *measurement.Measurement) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetAllForCustomer retrieves all measurements recorded for a customer,
// most recent first.
func (r *GormMeasurementRepository) GetAllForCustomer(ctx context.Context, customerID kernel.UUID) ([]*measurement.Measurement, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []MeasurementDTO
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID.Bytes()).
		Order("recorded_on DESC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	measurements := make([]*measurement.Measurement, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		measurements = append(measurements, m)
	}

	return measurements, nil
}
