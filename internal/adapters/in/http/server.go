// Package http provides the inbound REST adapter. Handlers translate JSON
// requests into commands and queries, invoke the application layer, and map
// domain errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/measurement"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server handles HTTP requests for the production workflow tracker.
type Server struct {
	createCustomerHandler      commands.CreateCustomerCommandHandler
	recordMeasurementHandler   commands.RecordMeasurementCommandHandler
	createVendorRoleHandler    commands.CreateVendorRoleCommandHandler
	createVendorHandler        commands.CreateVendorCommandHandler
	createPipelineStageHandler commands.CreatePipelineStageCommandHandler
	createOrderHandler         commands.CreateOrderCommandHandler
	addOrderStageHandler       commands.AddOrderStageCommandHandler
	advanceOrderStageHandler   commands.AdvanceOrderStageCommandHandler
	issueInvoiceHandler        commands.IssueInvoiceCommandHandler
	markInvoicePaidHandler     commands.MarkInvoicePaidCommandHandler

	getOrderHandler     queries.GetOrderQueryHandler
	getAllOrdersHandler queries.GetAllOrdersQueryHandler
	getDashboardHandler queries.GetDashboardQueryHandler
}

// NewServer creates the HTTP server with all command and query handlers wired.
func NewServer(
	createCustomerHandler commands.CreateCustomerCommandHandler,
	recordMeasurementHandler commands.RecordMeasurementCommandHandler,
	createVendorRoleHandler commands.CreateVendorRoleCommandHandler,
	createVendorHandler commands.CreateVendorCommandHandler,
	createPipelineStageHandler commands.CreatePipelineStageCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	addOrderStageHandler commands.AddOrderStageCommandHandler,
	advanceOrderStageHandler commands.AdvanceOrderStageCommandHandler,
	issueInvoiceHandler commands.IssueInvoiceCommandHandler,
	markInvoicePaidHandler commands.MarkInvoicePaidCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getDashboardHandler queries.GetDashboardQueryHandler,
) *Server {
	return &Server{
		createCustomerHandler:      createCustomerHandler,
		recordMeasurementHandler:   recordMeasurementHandler,
		createVendorRoleHandler:    createVendorRoleHandler,
		createVendorHandler:        createVendorHandler,
		createPipelineStageHandler: createPipelineStageHandler,
		createOrderHandler:         createOrderHandler,
		addOrderStageHandler:       addOrderStageHandler,
		advanceOrderStageHandler:   advanceOrderStageHandler,
		issueInvoiceHandler:        issueInvoiceHandler,
		markInvoicePaidHandler:     markInvoicePaidHandler,
		getOrderHandler:            getOrderHandler,
		getAllOrdersHandler:        getAllOrdersHandler,
		getDashboardHandler:        getDashboardHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/customers", s.CreateCustomer)
	api.POST("/measurements", s.RecordMeasurement)
	api.POST("/vendor-roles", s.CreateVendorRole)
	api.POST("/vendors", s.CreateVendor)
	api.POST("/pipeline-stages", s.CreatePipelineStage)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetAllOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/stages", s.AddOrderStage)
	api.POST("/order-stages/:id/advance", s.AdvanceOrderStage)
	api.POST("/orders/:id/invoice", s.IssueInvoice)
	api.POST("/invoices/:id/pay", s.MarkInvoicePaid)
	api.GET("/dashboard", s.GetDashboard)
}

// Health reports service liveness.
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateCustomer registers a new customer.
func (s *Server) CreateCustomer(c echo.Context) error {
	var req CreateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, err)
	}

	cmd, err := commands.NewCreateCustomerCommand(req.Name, req.Email, req.Phone, req.Address)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.createCustomerHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: cmd.CustomerID().String()})
}

// RecordMeasurement records a measurement set for a customer.
func (s *Server) RecordMeasurement(c echo.Context) error {
	var req RecordMeasurementRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, err)
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return respondError(c, err)
	}
	garment, err := measurement.GarmentFromString(req.Garment)
	if err != nil {
		return respondError(c, err)
	}
	recordedOn, err := parseDate(req.RecordedOn)
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewRecordMeasurementCommand(customerID, garment, req.Values, recordedOn)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.recordMeasurementHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: cmd.MeasurementID().String()})
}

// CreateVendorRole registers a new vendor role.
func (s *Server) CreateVendorRole(c echo.Context) error {
	var req CreateVendorRoleRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, err)
	}

	cmd, err := commands.NewCreateVendorRoleCommand(req.Name)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.createVendorRoleHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: cmd.RoleID().String()})
}

// CreateVendor registers a new vendor under an existing role.
func (s *Server) CreateVendor(c echo.Context) error {
	var req CreateVendorRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, err)
	}

	roleID, err := kernel.UUIDFromString(req.RoleID)
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewCreateVendorCommand(req.Name, roleID, req.Phone)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.createVendorHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: cmd.VendorID().String()})
}

// CreatePipelineStage registers a new stage definition in the pipeline.
func (s *Server) CreatePipelineStage(c echo.Context) error {
	var req CreatePipelineStageRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, err)
	}

	cmd, err := commands.NewCreatePipelineStageCommand(req.Name, req.Description, req.SequencePosition)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.createPipelineStageHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: cmd.StageID().String()})
}

// CreateOrder registers a new order with its billable line items.
func (s *Server) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, err)
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return respondError(c, err)
	}
	placedOn, err := parseDate(req.PlacedOn)
	if err != nil {
		return respondError(c, err)
	}

	particulars := make([]commands.ParticularData, 0, len(req.Particulars))
	for _, p := range req.Particulars {
		amount, amountErr := decimal.NewFromString(p.Amount)
		if amountErr != nil {
			return respondError(c, errs.NewValueIsInvalidErrorWithCause("amount", amountErr))
		}
		particulars = append(particulars, commands.ParticularData{
			Name:   p.Name,
			Detail: p.Detail,
			Amount: amount,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(req.OrderNumber, customerID, placedOn, particulars)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.createOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: cmd.OrderID().String()})
}

// AddOrderStage appends a production stage to an order.
func (s *Server) AddOrderStage(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	var req AddOrderStageRequest
	if err = c.Bind(&req); err != nil {
		return respondBadRequest(c, err)
	}

	pipelineStageID, err := kernel.UUIDFromString(req.PipelineStageID)
	if err != nil {
		return respondError(c, err)
	}
	vendorID, err := parseOptionalUUID(req.VendorID)
	if err != nil {
		return respondError(c, err)
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return respondError(c, err)
	}
	status, err := order.StageStatusFromString(req.Status)
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewAddOrderStageCommand(orderID, pipelineStageID, vendorID, startDate, status)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.addOrderStageHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: cmd.StageID().String()})
}

// AdvanceOrderStage moves an order stage to a new status and applies the
// downstream activation and order completion rules.
func (s *Server) AdvanceOrderStage(c echo.Context) error {
	stageID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	var req AdvanceOrderStageRequest
	if err = c.Bind(&req); err != nil {
		return respondBadRequest(c, err)
	}

	status, err := order.StageStatusFromString(req.Status)
	if err != nil {
		return respondError(c, err)
	}
	vendorID, err := parseOptionalUUID(req.VendorID)
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewAdvanceOrderStageCommand(stageID, status, vendorID)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.advanceOrderStageHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// IssueInvoice issues an invoice for an order's accumulated particulars.
func (s *Server) IssueInvoice(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	var req IssueInvoiceRequest
	if err = c.Bind(&req); err != nil {
		return respondBadRequest(c, err)
	}

	dueOn, err := parseDate(req.DueOn)
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewIssueInvoiceCommand(orderID, req.InvoiceNumber, dueOn)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.issueInvoiceHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: cmd.InvoiceID().String()})
}

// MarkInvoicePaid settles an invoice.
func (s *Server) MarkInvoicePaid(c echo.Context) error {
	invoiceID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	var req MarkInvoicePaidRequest
	if err = c.Bind(&req); err != nil {
		return respondBadRequest(c, err)
	}

	paidOn, err := parseDate(req.PaidOn)
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewMarkInvoicePaidCommand(invoiceID, paidOn)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.markInvoicePaidHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetAllOrders returns the order book, newest first.
func (s *Server) GetAllOrders(c echo.Context) error {
	responses, err := s.getAllOrdersHandler.Handle(c.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return respondError(c, err)
	}

	items := make([]OrderListItem, 0, len(responses))
	for _, resp := range responses {
		items = append(items, OrderListItem{
			ID:           resp.ID.String(),
			OrderNumber:  resp.OrderNumber,
			CustomerName: resp.CustomerName,
			PlacedOn:     formatDate(resp.PlacedOn),
			Status:       resp.Status,
		})
	}

	return c.JSON(http.StatusOK, items)
}

// GetOrder returns the full detail view of one order.
func (s *Server) GetOrder(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(c, err)
	}

	resp, err := s.getOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, orderDetailFromResponse(resp))
}

// GetDashboard returns the workshop dashboard aggregates.
func (s *Server) GetDashboard(c echo.Context) error {
	resp, err := s.getDashboardHandler.Handle(c.Request().Context(), queries.NewGetDashboardQuery())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, DashboardResponse{
		PendingOrders:     resp.PendingOrders,
		InProgressOrders:  resp.InProgressOrders,
		CompletedOrders:   resp.CompletedOrders,
		ActiveStages:      resp.ActiveStages,
		Customers:         resp.Customers,
		Vendors:           resp.Vendors,
		UnpaidInvoices:    resp.UnpaidInvoices,
		OutstandingAmount: resp.OutstandingAmount.StringFixed(2),
	})
}

func orderDetailFromResponse(resp queries.GetOrderQueryResponse) OrderDetailResponse {
	stages := make([]OrderStageItem, 0, len(resp.Stages))
	for _, stage := range resp.Stages {
		stages = append(stages, OrderStageItem{
			ID:               stage.ID.String(),
			StageName:        stage.StageName,
			SequencePosition: stage.SequencePosition,
			Status:           stage.Status,
			StartDate:        formatDate(stage.StartDate),
			EndDate:          formatDatePtr(stage.EndDate),
			VendorName:       stage.VendorName,
		})
	}

	particulars := make([]ParticularItem, 0, len(resp.Particulars))
	for _, particular := range resp.Particulars {
		particulars = append(particulars, ParticularItem{
			ID:     particular.ID.String(),
			Name:   particular.Name,
			Detail: particular.Detail,
			Amount: particular.Amount.StringFixed(2),
		})
	}

	return OrderDetailResponse{
		ID:            resp.ID.String(),
		OrderNumber:   resp.OrderNumber,
		CustomerID:    resp.CustomerID.String(),
		CustomerName:  resp.CustomerName,
		PlacedOn:      formatDate(resp.PlacedOn),
		Status:        resp.Status,
		CompletedOn:   formatDatePtr(resp.CompletedOn),
		Total:         resp.Total.StringFixed(2),
		InvoiceNumber: resp.InvoiceNumber,
		Stages:        stages,
		Particulars:   particulars,
	}
}

func parseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause("date", err)
	}
	return parsed, nil
}

func parseOptionalUUID(value *string) (*kernel.UUID, error) {
	if value == nil {
		return nil, nil
	}
	parsed, err := kernel.UUIDFromString(*value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func respondBadRequest(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

// respondError maps application and domain errors to HTTP status codes.
// Validation failures are reported back to the caller, never swallowed.
func respondError(c echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusUnprocessableEntity
	}

	return c.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}
