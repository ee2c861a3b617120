package commands

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand represents a request to register a new customer.
//
// Example:
//
//	cmd, err := NewCreateCustomerCommand("Jane Doe", "jane@example.com", "+1 555 0100", "12 Main St")
//	if err != nil {
//	    return fmt.Errorf("invalid customer data: %w", err)
//	}
//
//	handler := NewCreateCustomerCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create customer: %w", err)
//	}
//	fmt.Printf("Created customer with ID: %s", cmd.CustomerID())
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	name       string
	email      string
	phone      string
	address    string

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a new customer.
// Automatically generates a unique ID for the customer. Email format is
// validated by the domain model on creation.
func NewCreateCustomerCommand(name, email, phone, address string) (CreateCustomerCommand, error) {
	command := CreateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(kernel.NewUUID()),
		command.setName(name),
		command.setEmail(email),
	); err != nil {
		return CreateCustomerCommand{}, err
	}

	command.phone = phone
	command.address = address

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateCustomerCommandIsNotConstructed if validation fails.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// CustomerID returns the generated customer ID from the command.
func (c CreateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Name returns the customer name from the command.
func (c CreateCustomerCommand) Name() string {
	return c.name
}

// Email returns the customer email from the command.
func (c CreateCustomerCommand) Email() string {
	return c.email
}

// Phone returns the customer phone from the command.
func (c CreateCustomerCommand) Phone() string {
	return c.phone
}

// Address returns the customer address from the command.
func (c CreateCustomerCommand) Address() string {
	return c.address
}

func (c *CreateCustomerCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.customerID = id
	return nil
}

func (c *CreateCustomerCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateCustomerCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}
