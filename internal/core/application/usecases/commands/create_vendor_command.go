package commands

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var ErrCreateVendorCommandIsNotConstructed = errors.New(
	"CreateVendorCommand must be created via NewCreateVendorCommand constructor",
)

// CreateVendorCommand represents a request to register a new external vendor
// with one of the known vendor roles.
//
// Example:
//
//	cmd, err := NewCreateVendorCommand("Silk Road Dyeworks", dyerRoleID, "+1 555 0199")
//	if err != nil {
//	    return fmt.Errorf("invalid vendor data: %w", err)
//	}
//
//	handler := NewCreateVendorCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create vendor: %w", err)
//	}
type CreateVendorCommand struct { //nolint:recvcheck //using for validation
	vendorID kernel.UUID
	name     string
	roleID   kernel.UUID
	phone    string

	guard guard.ConstructorGuard
}

// NewCreateVendorCommand creates a command to register a new vendor.
// Automatically generates a unique ID for the vendor.
func NewCreateVendorCommand(name string, roleID kernel.UUID, phone string) (CreateVendorCommand, error) {
	command := CreateVendorCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setVendorID(kernel.NewUUID()),
		command.setName(name),
		command.setRoleID(roleID),
	); err != nil {
		return CreateVendorCommand{}, err
	}

	command.phone = phone

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateVendorCommandIsNotConstructed if validation fails.
func (c CreateVendorCommand) Validate() error {
	return c.guard.Validate(ErrCreateVendorCommandIsNotConstructed)
}

// VendorID returns the generated vendor ID from the command.
func (c CreateVendorCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// Name returns the vendor name from the command.
func (c CreateVendorCommand) Name() string {
	return c.name
}

// RoleID returns the vendor role ID from the command.
func (c CreateVendorCommand) RoleID() kernel.UUID {
	return c.roleID
}

// Phone returns the vendor phone from the command.
func (c CreateVendorCommand) Phone() string {
	return c.phone
}

func (c *CreateVendorCommand) setVendorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.vendorID = id
	return nil
}

func (c *CreateVendorCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateVendorCommand) setRoleID(roleID kernel.UUID) error {
	if err := roleID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("roleID", err)
	}

	c.roleID = roleID
	return nil
}
