package ports

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/vendor"
)

// VendorRepository defines the persistence contract for vendors.
type VendorRepository interface {
	// Add persists a new vendor.
	Add(ctx context.Context, aggregate *vendor.Vendor) error

	// Get retrieves a vendor by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*vendor.Vendor, error)
}

// VendorRoleRepository defines the persistence contract for vendor roles.
type VendorRoleRepository interface {
	// Add persists a new vendor role.
	Add(ctx context.Context, aggregate *vendor.Role) error

	// Get retrieves a vendor role by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*vendor.Role, error)
}
