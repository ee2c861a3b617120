package cmd

import (
	"atelier/internal/adapters/out/postgres"
	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordMeasurementCommandHandler() commands.RecordMeasurementCommandHandler {
	var f commands.MeasurementUoWFactory = FuncMeasurementUoWFactory(func() commands.MeasurementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordMeasurementCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateVendorRoleCommandHandler() commands.CreateVendorRoleCommandHandler {
	var f commands.VendorRoleUoWFactory = FuncVendorRoleUoWFactory(func() commands.VendorRoleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateVendorRoleCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateVendorCommandHandler() commands.CreateVendorCommandHandler {
	var f commands.VendorUoWFactory = FuncVendorUoWFactory(func() commands.VendorUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateVendorCommandHandler(f)
}

func (c *CompositionRoot) CreateCreatePipelineStageCommandHandler() commands.CreatePipelineStageCommandHandler {
	var f commands.PipelineUoWFactory = FuncPipelineUoWFactory(func() commands.PipelineUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePipelineStageCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAddOrderStageCommandHandler() commands.AddOrderStageCommandHandler {
	var f commands.AddStageUoWFactory = FuncAddStageUoWFactory(func() commands.AddStageUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddOrderStageCommandHandler(f)
}

func (c *CompositionRoot) CreateAdvanceOrderStageCommandHandler() commands.AdvanceOrderStageCommandHandler {
	var f commands.AdvanceOrderUoWFactory = FuncAdvanceOrderUoWFactory(func() commands.AdvanceOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderStageCommandHandler(f)
}

func (c *CompositionRoot) CreateIssueInvoiceCommandHandler() commands.IssueInvoiceCommandHandler {
	var f commands.IssueInvoiceUoWFactory = FuncIssueInvoiceUoWFactory(func() commands.IssueInvoiceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewIssueInvoiceCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkInvoicePaidCommandHandler() commands.MarkInvoicePaidCommandHandler {
	var f commands.InvoiceUoWFactory = FuncInvoiceUoWFactory(func() commands.InvoiceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkInvoicePaidCommandHandler(f)
}

func (c *CompositionRoot) CreateRefreshOrderStatusesCommandHandler() commands.RefreshOrderStatusesCommandHandler {
	var f commands.OrderSweepUoWFactory = FuncOrderSweepUoWFactory(func() commands.OrderSweepUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRefreshOrderStatusesCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDashboardQueryHandler() queries.GetDashboardQueryHandler {
	return queries.NewGetDashboardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOverdueInvoicesQueryHandler() queries.GetOverdueInvoicesQueryHandler {
	return queries.NewGetOverdueInvoicesQueryHandler(c.gormDB)
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncMeasurementUoWFactory func() commands.MeasurementUoW

func (f FuncMeasurementUoWFactory) Create() commands.MeasurementUoW {
	return f()
}

type FuncVendorRoleUoWFactory func() commands.VendorRoleUoW

func (f FuncVendorRoleUoWFactory) Create() commands.VendorRoleUoW {
	return f()
}

type FuncVendorUoWFactory func() commands.VendorUoW

func (f FuncVendorUoWFactory) Create() commands.VendorUoW {
	return f()
}

type FuncPipelineUoWFactory func() commands.PipelineUoW

func (f FuncPipelineUoWFactory) Create() commands.PipelineUoW {
	return f()
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncAddStageUoWFactory func() commands.AddStageUoW

func (f FuncAddStageUoWFactory) Create() commands.AddStageUoW {
	return f()
}

type FuncAdvanceOrderUoWFactory func() commands.AdvanceOrderUoW

func (f FuncAdvanceOrderUoWFactory) Create() commands.AdvanceOrderUoW {
	return f()
}

type FuncIssueInvoiceUoWFactory func() commands.IssueInvoiceUoW

func (f FuncIssueInvoiceUoWFactory) Create() commands.IssueInvoiceUoW {
	return f()
}

type FuncInvoiceUoWFactory func() commands.InvoiceUoW

func (f FuncInvoiceUoWFactory) Create() commands.InvoiceUoW {
	return f()
}

type FuncOrderSweepUoWFactory func() commands.OrderSweepUoW

func (f FuncOrderSweepUoWFactory) Create() commands.OrderSweepUoW {
	return f()
}
