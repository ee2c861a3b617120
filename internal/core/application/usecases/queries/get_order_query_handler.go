package queries

import (
	"context"
	"database/sql"
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order's detail view from the database.
// Reads join against customers, pipeline stage definitions, vendors, and
// invoices so the response carries display names instead of bare IDs.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve the order detail view.
// Returns errs.ErrObjectNotFound when the order does not exist. Stages are
// ordered by sequence position and the total is summed from the particulars.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	response, err := h.loadHeader(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	response.Stages, err = h.loadStages(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	response.Particulars, err = h.loadParticulars(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	for _, particular := range response.Particulars {
		response.Total = response.Total.Add(particular.Amount)
	}

	return response, nil
}

func (h GetOrderQueryHandler) loadHeader(ctx context.Context, orderID kernel.UUID) (GetOrderQueryResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.order_number,
			o.customer_id,
			c.name,
			o.placed_on,
			o.status,
			o.completed_on,
			i.invoice_number
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		LEFT JOIN invoices i ON i.id = o.invoice_id
		WHERE o.id = ?
	`, orderID.Bytes()).Row()

	var response GetOrderQueryResponse
	var id, customerID uuid.UUID
	var status int
	var completedOn sql.NullTime
	var invoiceNumber sql.NullString

	err := row.Scan(
		&id,
		&response.OrderNumber,
		&customerID,
		&response.CustomerName,
		&response.PlacedOn,
		&status,
		&completedOn,
		&invoiceNumber,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", orderID.String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}

	response.Status = order.Status(status).String()
	if completedOn.Valid {
		completed := completedOn.Time
		response.CompletedOn = &completed
	}
	if invoiceNumber.Valid {
		number := invoiceNumber.String
		response.InvoiceNumber = &number
	}
	response.Total = decimal.Zero

	return response, nil
}

func (h GetOrderQueryHandler) loadStages(ctx context.Context, orderID kernel.UUID) ([]OrderStageResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			p.name,
			s.sequence_position,
			s.status,
			s.start_date,
			s.end_date,
			v.name
		FROM order_stages s
		JOIN pipeline_stages p ON p.id = s.pipeline_stage_id
		LEFT JOIN vendors v ON v.id = s.vendor_id
		WHERE s.order_id = ?
		ORDER BY s.sequence_position
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stages := make([]OrderStageResponse, 0)
	for rows.Next() {
		var stage OrderStageResponse
		var id uuid.UUID
		var status int
		var endDate sql.NullTime
		var vendorName sql.NullString

		if err = rows.Scan(
			&id,
			&stage.StageName,
			&stage.SequencePosition,
			&status,
			&stage.StartDate,
			&endDate,
			&vendorName,
		); err != nil {
			return nil, err
		}

		if stage.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		stage.Status = order.StageStatus(status).String()
		if endDate.Valid {
			end := endDate.Time
			stage.EndDate = &end
		}
		if vendorName.Valid {
			name := vendorName.String
			stage.VendorName = &name
		}

		stages = append(stages, stage)
	}

	return stages, rows.Err()
}

func (h GetOrderQueryHandler) loadParticulars(ctx context.Context, orderID kernel.UUID) ([]ParticularResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			detail,
			amount
		FROM particulars
		WHERE order_id = ?
		ORDER BY name
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	particulars := make([]ParticularResponse, 0)
	for rows.Next() {
		var particular ParticularResponse
		var id uuid.UUID

		if err = rows.Scan(
			&id,
			&particular.Name,
			&particular.Detail,
			&particular.Amount,
		); err != nil {
			return nil, err
		}

		if particular.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		particulars = append(particulars, particular)
	}

	return particulars, rows.Err()
}
