package queries

import (
	"errors"

	"atelier/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetDashboardQueryIsNotConstructed = errors.New(
	"GetDashboardQuery must be created via NewGetDashboardQuery constructor",
)

// GetDashboardQuery retrieves the workshop dashboard aggregates: order counts
// by status, the number of stages currently in progress, customer and vendor
// totals, and the unpaid invoice position.
//
// Example:
//
//	query := NewGetDashboardQuery()
//	handler := NewGetDashboardQueryHandler(db)
//
//	dashboard, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load dashboard: %w", err)
//	}
//	fmt.Printf("%d orders in progress\n", dashboard.InProgressOrders)
type GetDashboardQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardQuery creates a query to retrieve the dashboard aggregates.
// This is a parameterless query.
func NewGetDashboardQuery() GetDashboardQuery {
	return GetDashboardQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDashboardQueryIsNotConstructed if validation fails.
func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}

// GetDashboardQueryResponse represents the workshop dashboard aggregates.
type GetDashboardQueryResponse struct {
	PendingOrders     int64
	InProgressOrders  int64
	CompletedOrders   int64
	ActiveStages      int64
	Customers         int64
	Vendors           int64
	UnpaidInvoices    int64
	OutstandingAmount decimal.Decimal
}
