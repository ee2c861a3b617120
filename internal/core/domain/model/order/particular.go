package order

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrParticularIsNotConstructed is returned when a Particular instance was not
// created through the NewParticular factory method.
var ErrParticularIsNotConstructed = errors.New("Particular must be created via NewParticular constructor")

// Particular is a billable line item on an order: a name, optional detail
// text, and an amount. The order total is the sum of its particulars.
type Particular struct {
	id     kernel.UUID
	name   string
	detail string
	amount decimal.Decimal

	isConstructed bool
}

// NewParticular creates a new line item with validation.
// Detail is optional; amount must not be negative.
func NewParticular(id kernel.UUID, name, detail string, amount decimal.Decimal) (*Particular, error) {
	particular := &Particular{
		isConstructed: true,
	}

	if err := errors.Join(
		particular.setID(id),
		particular.setName(name),
		particular.setAmount(amount),
	); err != nil {
		return nil, err
	}

	particular.detail = detail
	return particular, nil
}

// RestoreParticular reconstructs a line item from persisted state.
func RestoreParticular(id kernel.UUID, name, detail string, amount decimal.Decimal) (*Particular, error) {
	return NewParticular(id, name, detail, amount)
}

// Validate ensures the Particular instance was properly constructed.
func (p *Particular) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParticularIsNotConstructed
	}
	return nil
}

// ID returns the line item's unique identifier.
func (p *Particular) ID() kernel.UUID {
	return p.id
}

// Name returns the line item's name.
func (p *Particular) Name() string {
	return p.name
}

// Detail returns the line item's free-text detail. May be empty.
func (p *Particular) Detail() string {
	return p.detail
}

// Amount returns the billable amount of the line item.
func (p *Particular) Amount() decimal.Decimal {
	return p.amount
}

func (p *Particular) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Particular) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Particular) setAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidError("amount: must not be negative")
	}
	p.amount = amount
	return nil
}
