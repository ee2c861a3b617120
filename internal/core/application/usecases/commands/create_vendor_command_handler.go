package commands

import (
	"context"

	"atelier/internal/core/domain/model/vendor"
)

// CreateVendorCommandHandler handles the business logic for vendor registration.
// Verifies the referenced role exists before persisting the vendor.
type CreateVendorCommandHandler struct {
	uowFactory VendorUoWFactory
}

// NewCreateVendorCommandHandler creates a handler for vendor registration.
// Requires a VendorUoWFactory for transactional persistence operations.
func NewCreateVendorCommandHandler(uowFactory VendorUoWFactory) CreateVendorCommandHandler {
	return CreateVendorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vendor creation command.
// An unknown role surfaces as errs.ErrObjectNotFound before any write.
func (h CreateVendorCommandHandler) Handle(ctx context.Context, cmd CreateVendorCommand) error {
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

	if _, err := uow.VendorRoleRepository().Get(ctx, cmd.RoleID()); err != nil {
		return err
	}

	aggregate, err := vendor.NewVendor(cmd.VendorID(), cmd.Name(), cmd.RoleID(), cmd.Phone())
	if err != nil {
		return err
	}

	if err = uow.VendorRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
