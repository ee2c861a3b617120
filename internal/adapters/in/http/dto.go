package http

import (
	"time"
)

const dateLayout = "2006-01-02"

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateCustomerRequest is the body of POST /api/v1/customers.
type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// RecordMeasurementRequest is the body of POST /api/v1/measurements.
type RecordMeasurementRequest struct {
	CustomerID string             `json:"customerId"`
	Garment    string             `json:"garment"`
	Values     map[string]float64 `json:"values"`
	RecordedOn string             `json:"recordedOn"`
}

// CreateVendorRoleRequest is the body of POST /api/v1/vendor-roles.
type CreateVendorRoleRequest struct {
	Name string `json:"name"`
}

// CreateVendorRequest is the body of POST /api/v1/vendors.
type CreateVendorRequest struct {
	Name   string `json:"name"`
	RoleID string `json:"roleId"`
	Phone  string `json:"phone"`
}

// CreatePipelineStageRequest is the body of POST /api/v1/pipeline-stages.
type CreatePipelineStageRequest struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	SequencePosition int    `json:"sequencePosition"`
}

// ParticularRequest is one billable line item of a new order.
type ParticularRequest struct {
	Name   string `json:"name"`
	Detail string `json:"detail"`
	Amount string `json:"amount"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	OrderNumber string              `json:"orderNumber"`
	CustomerID  string              `json:"customerId"`
	PlacedOn    string              `json:"placedOn"`
	Particulars []ParticularRequest `json:"particulars"`
}

// AddOrderStageRequest is the body of POST /api/v1/orders/:id/stages.
type AddOrderStageRequest struct {
	PipelineStageID string  `json:"pipelineStageId"`
	VendorID        *string `json:"vendorId"`
	StartDate       string  `json:"startDate"`
	Status          string  `json:"status"`
}

// AdvanceOrderStageRequest is the body of POST /api/v1/order-stages/:id/advance.
type AdvanceOrderStageRequest struct {
	Status   string  `json:"status"`
	VendorID *string `json:"vendorId"`
}

// IssueInvoiceRequest is the body of POST /api/v1/orders/:id/invoice.
type IssueInvoiceRequest struct {
	InvoiceNumber string `json:"invoiceNumber"`
	DueOn         string `json:"dueOn"`
}

// MarkInvoicePaidRequest is the body of POST /api/v1/invoices/:id/pay.
type MarkInvoicePaidRequest struct {
	PaidOn string `json:"paidOn"`
}

// CreatedResponse carries the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// OrderListItem is one row of GET /api/v1/orders.
type OrderListItem struct {
	ID           string `json:"id"`
	OrderNumber  string `json:"orderNumber"`
	CustomerName string `json:"customerName"`
	PlacedOn     string `json:"placedOn"`
	Status       string `json:"status"`
}

// OrderStageItem is one production stage of GET /api/v1/orders/:id.
type OrderStageItem struct {
	ID               string  `json:"id"`
	StageName        string  `json:"stageName"`
	SequencePosition int     `json:"sequencePosition"`
	Status           string  `json:"status"`
	StartDate        string  `json:"startDate"`
	EndDate          *string `json:"endDate"`
	VendorName       *string `json:"vendorName"`
}

// ParticularItem is one billable line item of GET /api/v1/orders/:id.
type ParticularItem struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Detail string `json:"detail"`
	Amount string `json:"amount"`
}

// OrderDetailResponse is the body of GET /api/v1/orders/:id.
type OrderDetailResponse struct {
	ID            string           `json:"id"`
	OrderNumber   string           `json:"orderNumber"`
	CustomerID    string           `json:"customerId"`
	CustomerName  string           `json:"customerName"`
	PlacedOn      string           `json:"placedOn"`
	Status        string           `json:"status"`
	CompletedOn   *string          `json:"completedOn"`
	Total         string           `json:"total"`
	InvoiceNumber *string          `json:"invoiceNumber"`
	Stages        []OrderStageItem `json:"stages"`
	Particulars   []ParticularItem `json:"particulars"`
}

// DashboardResponse is the body of GET /api/v1/dashboard.
type DashboardResponse struct {
	PendingOrders     int64  `json:"pendingOrders"`
	InProgressOrders  int64  `json:"inProgressOrders"`
	CompletedOrders   int64  `json:"completedOrders"`
	ActiveStages      int64  `json:"activeStages"`
	Customers         int64  `json:"customers"`
	Vendors           int64  `json:"vendors"`
	UnpaidInvoices    int64  `json:"unpaidInvoices"`
	OutstandingAmount string `json:"outstandingAmount"`
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(dateLayout)
	return &formatted
}
