// Package queries contains read-only operations for the production workflow.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly and return plain response structs, bypassing the domain
// aggregates.
package queries

import (
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves the full detail view of one order: stages in
// sequence position order, particulars, computed total, and the invoice
// reference when one was issued.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderQueryHandler(db)
//	detail, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load order: %w", err)
//	}
//	fmt.Printf("Order %s: %s\n", detail.OrderNumber, detail.Status)
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve one order's detail view.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, errs.NewValueIsInvalidErrorWithCause("orderID", err)
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the order ID from the query.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse represents the detail view of one order.
type GetOrderQueryResponse struct {
	ID            kernel.UUID
	OrderNumber   string
	CustomerID    kernel.UUID
	CustomerName  string
	PlacedOn      time.Time
	Status        string
	CompletedOn   *time.Time
	Total         decimal.Decimal
	InvoiceNumber *string
	Stages        []OrderStageResponse
	Particulars   []ParticularResponse
}

// OrderStageResponse represents one production stage in the detail view.
type OrderStageResponse struct {
	ID               kernel.UUID
	StageName        string
	SequencePosition int
	Status           string
	StartDate        time.Time
	EndDate          *time.Time
	VendorName       *string
}

// ParticularResponse represents one billable line item in the detail view.
type ParticularResponse struct {
	ID     kernel.UUID
	Name   string
	Detail string
	Amount decimal.Decimal
}
