// Package vendorrepo provides data transfer objects and mapping functions for
// vendor and vendor role persistence.
package vendorrepo

import (
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/vendor"

	"github.com/google/uuid"
)

// VendorDTO represents the database structure for persisting vendors.
type VendorDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string    `gorm:"type:varchar(255);not null"`
	RoleID uuid.UUID `gorm:"type:uuid;not null;index"`
	Phone  string    `gorm:"type:varchar(50)"`
}

// TableName specifies the database table name for vendor entities.
func (VendorDTO) TableName() string {
	return "vendors"
}

// RoleDTO represents the database structure for persisting vendor roles.
type RoleDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(255);not null"`
}

// TableName specifies the database table name for vendor role entities.
func (RoleDTO) TableName() string {
	return "vendor_roles"
}

// vendorFromDomain converts a vendor domain aggregate to its database representation.
func vendorFromDomain(aggregate *vendor.Vendor) VendorDTO {
	return VendorDTO{
		ID:     aggregate.ID().Bytes(),
		Name:   aggregate.Name(),
		RoleID: aggregate.RoleID().Bytes(),
		Phone:  aggregate.Phone(),
	}
}

// vendorToDomain converts a database DTO to a vendor domain aggregate.
func vendorToDomain(dto VendorDTO) (*vendor.Vendor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	roleID, err := kernel.UUIDFromBytes(dto.RoleID[:])
	if err != nil {
		return nil, err
	}

	return vendor.RestoreVendor(id, dto.Name, roleID, dto.Phone)
}

// roleFromDomain converts a role domain aggregate to its database representation.
func roleFromDomain(aggregate *vendor.Role) RoleDTO {
	return RoleDTO{
		ID:   aggregate.ID().Bytes(),
		Name: aggregate.Name(),
	}
}

// roleToDomain converts a database DTO to a role domain aggregate.
func roleToDomain(dto RoleDTO) (*vendor.Role, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return vendor.RestoreRole(id, dto.Name)
}
