package queries

import (
	"context"
	"database/sql"

	"atelier/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetDashboardQueryHandler computes the workshop dashboard aggregates from
// the database in a handful of aggregate reads.
type GetDashboardQueryHandler struct {
	db *gorm.DB
}

// NewGetDashboardQueryHandler creates a handler for dashboard queries.
// Requires a GORM database connection for query execution.
func NewGetDashboardQueryHandler(db *gorm.DB) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{db: db}
}

// Handle executes the dashboard aggregate reads.
func (h GetDashboardQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardQuery,
) (GetDashboardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardQueryResponse{}, err
	}

	var response GetDashboardQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ?)
		FROM orders
	`, int(order.Pending), int(order.InProgress), int(order.Completed)).Row()
	if err := row.Scan(
		&response.PendingOrders,
		&response.InProgressOrders,
		&response.CompletedOrders,
	); err != nil {
		return GetDashboardQueryResponse{}, err
	}

	row = h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM order_stages WHERE status = ?
	`, int(order.StageInProgress)).Row()
	if err := row.Scan(&response.ActiveStages); err != nil {
		return GetDashboardQueryResponse{}, err
	}

	row = h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM customers),
			(SELECT COUNT(*) FROM vendors)
	`).Row()
	if err := row.Scan(&response.Customers, &response.Vendors); err != nil {
		return GetDashboardQueryResponse{}, err
	}

	row = h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*), COALESCE(SUM(amount), 0)
		FROM invoices
		WHERE paid = FALSE
	`).Row()
	var outstanding sql.NullString
	if err := row.Scan(&response.UnpaidInvoices, &outstanding); err != nil {
		return GetDashboardQueryResponse{}, err
	}

	response.OutstandingAmount = decimal.Zero
	if outstanding.Valid {
		amount, err := decimal.NewFromString(outstanding.String)
		if err != nil {
			return GetDashboardQueryResponse{}, err
		}
		response.OutstandingAmount = amount
	}

	return response, nil
}
