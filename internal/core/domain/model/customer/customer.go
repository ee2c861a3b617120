// Package customer provides the Customer aggregate for the production tracker.
// A customer places orders and has body measurements recorded against them;
// both orders and measurements reference the customer by ID and have their own
// lifecycles.
package customer

import (
	"errors"
	"net/mail"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not created
// through the NewCustomer factory method.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer represents a client of the workshop: identity plus contact details.
//
// Customer follows these invariants:
//   - Must have a valid unique identifier
//   - Name, email, and phone are required
//   - Email must be a parseable address
//   - Can only be created through NewCustomer or RestoreCustomer
type Customer struct {
	id      kernel.UUID
	name    string
	email   string
	phone   string
	address string

	isConstructed bool
}

// NewCustomer creates a new Customer instance with validation.
// Address is optional; all other fields are required.
func NewCustomer(id kernel.UUID, name, email, phone, address string) (*Customer, error) {
	customer := &Customer{
		isConstructed: true,
	}

	if err := errors.Join(
		customer.setID(id),
		customer.setName(name),
		customer.setEmail(email),
		customer.setPhone(phone),
	); err != nil {
		return nil, err
	}

	customer.address = address
	return customer, nil
}

// RestoreCustomer reconstructs a Customer from persisted state.
// Used by the repository layer; applies the same validation as NewCustomer.
func RestoreCustomer(id kernel.UUID, name, email, phone, address string) (*Customer, error) {
	return NewCustomer(id, name, email, phone, address)
}

// Validate ensures the Customer instance was properly constructed.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's name.
func (c *Customer) Name() string {
	return c.name
}

// Email returns the customer's email address.
func (c *Customer) Email() string {
	return c.email
}

// Phone returns the customer's phone number.
func (c *Customer) Phone() string {
	return c.phone
}

// Address returns the customer's postal address. May be empty.
func (c *Customer) Address() string {
	return c.address
}

// UpdateContact replaces the customer's contact details.
// Applies the same validation rules as construction.
func (c *Customer) UpdateContact(email, phone, address string) error {
	if err := errors.Join(
		c.setEmail(email),
		c.setPhone(phone),
	); err != nil {
		return err
	}

	c.address = address
	return nil
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	c.email = email
	return nil
}

func (c *Customer) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}
