// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"atelier/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the repositories it actually touches, so the
// scoped interfaces below combine TxManager with the needed repo factories.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// MeasurementRepoFactory provides access to the measurement repository within a transaction.
	MeasurementRepoFactory interface {
		MeasurementRepository() ports.MeasurementRepository
	}

	// VendorRepoFactory provides access to the vendor repository within a transaction.
	VendorRepoFactory interface {
		VendorRepository() ports.VendorRepository
	}

	// VendorRoleRepoFactory provides access to the vendor role repository within a transaction.
	VendorRoleRepoFactory interface {
		VendorRoleRepository() ports.VendorRoleRepository
	}

	// PipelineStageRepoFactory provides access to the pipeline stage repository within a transaction.
	PipelineStageRepoFactory interface {
		PipelineStageRepository() ports.PipelineStageRepository
	}

	// InvoiceRepoFactory provides access to the invoice repository within a transaction.
	InvoiceRepoFactory interface {
		InvoiceRepository() ports.InvoiceRepository
	}

	// AdvanceOrderUoW manages transactions for stage advancement.
	// The vendor repository is needed to verify an assigned vendor exists
	// before any write happens.
	AdvanceOrderUoW interface {
		TxManager
		OrderRepoFactory
		VendorRepoFactory
	}

	// AdvanceOrderUoWFactory creates unit of work instances for stage advancement.
	AdvanceOrderUoWFactory interface {
		Create() AdvanceOrderUoW
	}

	// CreateOrderUoW manages transactions for order creation.
	// The customer repository is needed to verify the customer exists.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		CustomerRepoFactory
	}

	// CreateOrderUoWFactory creates unit of work instances for order creation.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// AddStageUoW manages transactions for appending a stage to an order.
	// The pipeline stage repository provides the definition whose sequence
	// position is copied onto the new stage.
	AddStageUoW interface {
		TxManager
		OrderRepoFactory
		PipelineStageRepoFactory
		VendorRepoFactory
	}

	// AddStageUoWFactory creates unit of work instances for stage appends.
	AddStageUoWFactory interface {
		Create() AddStageUoW
	}

	// CustomerUoW manages transactions for customer-only operations.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	// CustomerUoWFactory creates unit of work instances for customer operations.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// MeasurementUoW manages transactions for measurement recording.
	// The customer repository is needed to verify the customer exists.
	MeasurementUoW interface {
		TxManager
		MeasurementRepoFactory
		CustomerRepoFactory
	}

	// MeasurementUoWFactory creates unit of work instances for measurement recording.
	MeasurementUoWFactory interface {
		Create() MeasurementUoW
	}

	// VendorRoleUoW manages transactions for vendor role operations.
	VendorRoleUoW interface {
		TxManager
		VendorRoleRepoFactory
	}

	// VendorRoleUoWFactory creates unit of work instances for vendor role operations.
	VendorRoleUoWFactory interface {
		Create() VendorRoleUoW
	}

	// VendorUoW manages transactions for vendor creation.
	// The vendor role repository is needed to verify the role exists.
	VendorUoW interface {
		TxManager
		VendorRepoFactory
		VendorRoleRepoFactory
	}

	// VendorUoWFactory creates unit of work instances for vendor creation.
	VendorUoWFactory interface {
		Create() VendorUoW
	}

	// PipelineUoW manages transactions for pipeline stage definition operations.
	PipelineUoW interface {
		TxManager
		PipelineStageRepoFactory
	}

	// PipelineUoWFactory creates unit of work instances for pipeline definition operations.
	PipelineUoWFactory interface {
		Create() PipelineUoW
	}

	// IssueInvoiceUoW manages transactions for invoice issuing.
	// Creating the invoice and linking it to the order happen atomically.
	IssueInvoiceUoW interface {
		TxManager
		InvoiceRepoFactory
		OrderRepoFactory
	}

	// IssueInvoiceUoWFactory creates unit of work instances for invoice issuing.
	IssueInvoiceUoWFactory interface {
		Create() IssueInvoiceUoW
	}

	// InvoiceUoW manages transactions for invoice-only operations.
	InvoiceUoW interface {
		TxManager
		InvoiceRepoFactory
	}

	// InvoiceUoWFactory creates unit of work instances for invoice operations.
	InvoiceUoWFactory interface {
		Create() InvoiceUoW
	}

	// OrderSweepUoW manages transactions for the periodic order status sweep.
	OrderSweepUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderSweepUoWFactory creates unit of work instances for the status sweep.
	OrderSweepUoWFactory interface {
		Create() OrderSweepUoW
	}
)
