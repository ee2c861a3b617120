// Package ports defines the persistence interfaces of the production tracker.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"atelier/internal/core/domain/model/customer"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/measurement"
)

// CustomerRepository defines the persistence contract for customer aggregates.
type CustomerRepository interface {
	// Add persists a new customer.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
}

// MeasurementRepository defines the persistence contract for measurement
// aggregates. Measurements live independently of orders.
type MeasurementRepository interface {
	// Add persists a new measurement set.
	Add(ctx context.Context, aggregate *measurement.Measurement) error

	// GetAllForCustomer retrieves all measurement sets recorded for a
	// customer, newest first.
	GetAllForCustomer(ctx context.Context, customerID kernel.UUID) ([]*measurement.Measurement, error)
}
