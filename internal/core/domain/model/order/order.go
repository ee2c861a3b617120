package order

import (
	"errors"
	"sort"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder factory method. This ensures all orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order represents a custom production order. It is the aggregate root that
// owns the order's billable line items and its production stages, and it hosts
// the stage progression rule.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a non-empty order number
//   - Must belong to exactly one customer
//   - Stage IDs and stage sequence positions are unique within the order
//   - Completion date is set if and only if the order status is Completed
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id          kernel.UUID
	orderNumber string
	customerID  kernel.UUID
	placedOn    time.Time
	status      Status
	completedOn *time.Time
	invoiceID   *kernel.UUID
	stages      []*Stage
	particulars []*Particular

	isConstructed bool
}

// NewOrder creates a new Order in Pending status with its line items.
// Stages are appended separately via AddStage.
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	customerID kernel.UUID,
	placedOn time.Time,
	particulars []*Particular,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderNumber(orderNumber),
		order.setCustomerID(customerID),
		order.setPlacedOn(placedOn),
		order.setParticulars(particulars),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persisted state, including its
// status, stages, particulars, and invoice reference.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	customerID kernel.UUID,
	placedOn time.Time,
	status Status,
	completedOn *time.Time,
	invoiceID *kernel.UUID,
	stages []*Stage,
	particulars []*Particular,
) (*Order, error) {
	order, err := NewOrder(id, orderNumber, customerID, placedOn, particulars)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if (status == Completed) != (completedOn != nil) {
		return nil, errs.NewValueIsInvalidError("completedOn: must be set if and only if the order is Completed")
	}
	if invoiceID != nil {
		if err = invoiceID.Validate(); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("invoiceID", err)
		}
	}

	for _, stage := range stages {
		if err = order.AddStage(stage); err != nil {
			return nil, err
		}
	}

	order.status = status
	order.completedOn = completedOn
	order.invoiceID = invoiceID
	return order, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-facing order number.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// PlacedOn returns the date the order was placed.
func (o *Order) PlacedOn() time.Time {
	return o.placedOn
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CompletedOn returns the completion date, or nil while the order is unfinished.
func (o *Order) CompletedOn() *time.Time {
	return o.completedOn
}

// InvoiceID returns the linked invoice's ID, or nil if no invoice was issued.
func (o *Order) InvoiceID() *kernel.UUID {
	return o.invoiceID
}

// Stages returns the order's stages sorted by sequence position ascending.
// The returned slice is a copy; the stages themselves are shared.
func (o *Order) Stages() []*Stage {
	stages := make([]*Stage, len(o.stages))
	copy(stages, o.stages)
	sort.Slice(stages, func(i, j int) bool {
		return stages[i].SequencePosition() < stages[j].SequencePosition()
	})
	return stages
}

// Particulars returns the order's billable line items.
// The returned slice is a copy; the particulars themselves are shared.
func (o *Order) Particulars() []*Particular {
	particulars := make([]*Particular, len(o.particulars))
	copy(particulars, o.particulars)
	return particulars
}

// TotalAmount returns the sum of the order's line item amounts.
func (o *Order) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, p := range o.particulars {
		total = total.Add(p.Amount())
	}
	return total
}

// StageByID returns the order stage with the given ID.
// Returns an errs.ObjectNotFoundError if no such stage exists on this order.
func (o *Order) StageByID(stageID kernel.UUID) (*Stage, error) {
	if err := stageID.Validate(); err != nil {
		return nil, err
	}

	for _, stage := range o.stages {
		if stage.ID().IsEqual(stageID) {
			return stage, nil
		}
	}

	return nil, errs.NewObjectNotFoundError("orderStage", stageID.String())
}

// AddStage appends a production stage to the order.
//
// The stage must be valid and its ID and sequence position must be unique
// within the order: the pair (order, sequence position) is the pipeline
// position, so a duplicate position would make "next stage" ambiguous.
// Appending never triggers progression.
func (o *Order) AddStage(stage *Stage) error {
	if err := stage.Validate(); err != nil {
		return err
	}

	for _, existing := range o.stages {
		if existing.ID().IsEqual(stage.ID()) {
			return errs.NewObjectAlreadyExistsError("orderStage", stage.ID().String())
		}
		if existing.SequencePosition() == stage.SequencePosition() {
			return errs.NewObjectAlreadyExistsError("sequencePosition", stage.SequencePosition())
		}
	}

	o.stages = append(o.stages, stage)
	return nil
}

// AddParticular appends a billable line item to the order.
func (o *Order) AddParticular(particular *Particular) error {
	if err := particular.Validate(); err != nil {
		return err
	}

	for _, existing := range o.particulars {
		if existing.ID().IsEqual(particular.ID()) {
			return errs.NewObjectAlreadyExistsError("particular", particular.ID().String())
		}
	}

	o.particulars = append(o.particulars, particular)
	return nil
}

// AdvanceStage applies a status and vendor update to one of the order's
// stages and, on completion, activates the next stage in sequence.
//
// The update semantics are:
//  1. The target stage must exist on this order (errs.ObjectNotFoundError otherwise).
//  2. The submitted status must be a recognized value; there is deliberately
//     no ordering guard, so out-of-order updates are allowed.
//  3. The vendor assignment is applied as submitted: a nil vendorID clears it.
//  4. If the resulting status is Completed, the stage's end date is stamped
//     with today (an already present end date is preserved), and the stage
//     with the smallest sequence position strictly greater than the completed
//     stage's is activated. Activation promotes Pending stages only; a next
//     stage already In Progress or Completed is left alone.
//
// At most one stage is activated per call. Returns the activated stage, or
// nil when the completed stage was the last in sequence, the next stage was
// not Pending, or the update did not complete the stage.
func (o *Order) AdvanceStage(
	stageID kernel.UUID,
	newStatus StageStatus,
	vendorID *kernel.UUID,
	today time.Time,
) (*Stage, error) {
	stage, err := o.StageByID(stageID)
	if err != nil {
		return nil, err
	}

	if err = newStatus.Validate(); err != nil {
		return nil, err
	}

	if err = stage.assignVendor(vendorID); err != nil {
		return nil, err
	}

	if err = stage.changeStatus(newStatus, today); err != nil {
		return nil, err
	}

	if newStatus != StageCompleted {
		return nil, nil
	}

	next := o.nextStageAfter(stage.SequencePosition())
	if next == nil {
		// End of the pipeline. Not an error, and nothing else changes.
		return nil, nil
	}

	if !next.activate() {
		return nil, nil
	}

	return next, nil
}

// nextStageAfter returns the stage with the smallest sequence position
// strictly greater than the given position, or nil if none exists.
// A greater-than filter with a minimum select, not "position + 1":
// sequence positions may have gaps.
func (o *Order) nextStageAfter(position int) *Stage {
	var next *Stage
	for _, stage := range o.stages {
		if stage.SequencePosition() <= position {
			continue
		}
		if next == nil || stage.SequencePosition() < next.SequencePosition() {
			next = stage
		}
	}
	return next
}

// RefreshStatus recomputes the order status from its stage set:
//   - all stages Completed (and at least one stage) -> Completed, with the
//     completion date stamped with today on the transition
//   - any stage In Progress or Completed -> In Progress
//   - otherwise -> Pending
//
// Reports whether the status changed. The progression rule itself never
// touches the order status; this method is driven by the completion sweep.
func (o *Order) RefreshStatus(today time.Time) bool {
	previous := o.status

	switch {
	case len(o.stages) > 0 && o.allStagesCompleted():
		if o.status != Completed {
			o.status = Completed
			completedOn := today
			o.completedOn = &completedOn
		}
	case o.anyStageStarted():
		o.status = InProgress
		o.completedOn = nil
	default:
		o.status = Pending
		o.completedOn = nil
	}

	return o.status != previous
}

// AttachInvoice links an issued invoice to the order.
// An order points to at most one invoice; attaching a second one is a conflict.
func (o *Order) AttachInvoice(invoiceID kernel.UUID) error {
	if err := invoiceID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("invoiceID", err)
	}

	if o.invoiceID != nil {
		return errs.NewObjectAlreadyExistsError("invoice", o.invoiceID.String())
	}

	o.invoiceID = &invoiceID
	return nil
}

func (o *Order) allStagesCompleted() bool {
	for _, stage := range o.stages {
		if stage.Status() != StageCompleted {
			return false
		}
	}
	return true
}

func (o *Order) anyStageStarted() bool {
	for _, stage := range o.stages {
		if stage.Status() != StagePending {
			return true
		}
	}
	return false
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customerID", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setPlacedOn(placedOn time.Time) error {
	if placedOn.IsZero() {
		return errs.NewValueIsRequiredError("placedOn")
	}
	o.placedOn = placedOn
	return nil
}

func (o *Order) setParticulars(particulars []*Particular) error {
	for _, particular := range particulars {
		if err := o.AddParticular(particular); err != nil {
			return err
		}
	}
	return nil
}
