package queries

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves the order list from the database.
// Newest orders come first, matching how the workshop reviews its book.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders with their customer names.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.order_number,
			c.name,
			o.placed_on,
			o.status
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		ORDER BY o.placed_on DESC, o.order_number
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetAllOrdersQueryResponse, 0)
	for rows.Next() {
		var orderResp GetAllOrdersQueryResponse
		var id uuid.UUID
		var status int

		if err = rows.Scan(
			&id,
			&orderResp.OrderNumber,
			&orderResp.CustomerName,
			&orderResp.PlacedOn,
			&status,
		); err != nil {
			return nil, err
		}

		if orderResp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		orderResp.Status = order.Status(status).String()

		orders = append(orders, orderResp)
	}

	return orders, rows.Err()
}
