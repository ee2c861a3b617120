package commands

import (
	"context"

	"atelier/internal/core/domain/model/vendor"
)

// CreateVendorRoleCommandHandler handles the business logic for vendor role
// registration.
type CreateVendorRoleCommandHandler struct {
	uowFactory VendorRoleUoWFactory
}

// NewCreateVendorRoleCommandHandler creates a handler for vendor role registration.
// Requires a VendorRoleUoWFactory for transactional persistence operations.
func NewCreateVendorRoleCommandHandler(uowFactory VendorRoleUoWFactory) CreateVendorRoleCommandHandler {
	return CreateVendorRoleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vendor role creation command.
func (h CreateVendorRoleCommandHandler) Handle(ctx context.Context, cmd CreateVendorRoleCommand) error {
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

	aggregate, err := vendor.NewRole(cmd.RoleID(), cmd.Name())
	if err != nil {
		return err
	}

	if err = uow.VendorRoleRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
