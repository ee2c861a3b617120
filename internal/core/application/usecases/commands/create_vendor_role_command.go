package commands

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var ErrCreateVendorRoleCommandIsNotConstructed = errors.New(
	"CreateVendorRoleCommand must be created via NewCreateVendorRoleCommand constructor",
)

// CreateVendorRoleCommand represents a request to register a new vendor role,
// e.g. "Embroiderer" or "Dyer".
type CreateVendorRoleCommand struct { //nolint:recvcheck //using for validation
	roleID kernel.UUID
	name   string

	guard guard.ConstructorGuard
}

// NewCreateVendorRoleCommand creates a command to register a new vendor role.
// Automatically generates a unique ID for the role.
func NewCreateVendorRoleCommand(name string) (CreateVendorRoleCommand, error) {
	command := CreateVendorRoleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRoleID(kernel.NewUUID()),
		command.setName(name),
	); err != nil {
		return CreateVendorRoleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateVendorRoleCommandIsNotConstructed if validation fails.
func (c CreateVendorRoleCommand) Validate() error {
	return c.guard.Validate(ErrCreateVendorRoleCommandIsNotConstructed)
}

// RoleID returns the generated role ID from the command.
func (c CreateVendorRoleCommand) RoleID() kernel.UUID {
	return c.roleID
}

// Name returns the role name from the command.
func (c CreateVendorRoleCommand) Name() string {
	return c.name
}

func (c *CreateVendorRoleCommand) setRoleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.roleID = id
	return nil
}

func (c *CreateVendorRoleCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}
