package vendorrepo

import (
	"context"
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/vendor"
	"atelier/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormVendorRepository implements VendorRepository using GORM.
type GormVendorRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormVendorRepository creates a new GORM vendor repository.
func NewGormVendorRepository(db *gorm.DB, tracker aggregateTracker) *GormVendorRepository {
	return &GormVendorRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new vendor to the database.
func (r *GormVendorRepository) Add(ctx context.Context, aggregate *vendor.Vendor) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := vendorFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a vendor by ID.
func (r *GormVendorRepository) Get(ctx context.Context, id kernel.UUID) (*vendor.Vendor, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VendorDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vendor", id.String())
		}
		return nil, err
	}

	return vendorToDomain(dto)
}

// GormVendorRoleRepository implements VendorRoleRepository using GORM.
type GormVendorRoleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormVendorRoleRepository creates a new GORM vendor role repository.
func NewGormVendorRoleRepository(db *gorm.DB, tracker aggregateTracker) *GormVendorRoleRepository {
	return &GormVendorRoleRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new vendor role to the database.
func (r *GormVendorRoleRepository) Add(ctx context.Context, aggregate *vendor.Role) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := roleFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a vendor role by ID.
func (r *GormVendorRoleRepository) Get(ctx context.Context, id kernel.UUID) (*vendor.Role, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RoleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vendorRole", id.String())
		}
		return nil, err
	}

	return roleToDomain(dto)
}
