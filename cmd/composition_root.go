package cmd

import (
	"gorm.io/gorm"

	"logistics/internal/adapters/out/postgres"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
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

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	var f commands.CreateShipmentUoWFactory = FuncCreateShipmentUoWFactory(func() commands.CreateShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateAppendStatusCommandHandler() commands.AppendStatusCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAppendStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateReturnCommandHandler() commands.CreateReturnCommandHandler {
	var f commands.ReturnUoWFactory = FuncReturnUoWFactory(func() commands.ReturnUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateReturnCommandHandler(f)
}

func (c *CompositionRoot) CreateAdvanceReturnCommandHandler() commands.AdvanceReturnCommandHandler {
	var f commands.ReturnUoWFactory = FuncReturnUoWFactory(func() commands.ReturnUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceReturnCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateShippingMethodCommandHandler() commands.CreateShippingMethodCommandHandler {
	var f commands.MethodUoWFactory = FuncMethodUoWFactory(func() commands.MethodUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShippingMethodCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateWarehouseCommandHandler() commands.CreateWarehouseCommandHandler {
	var f commands.WarehouseUoWFactory = FuncWarehouseUoWFactory(func() commands.WarehouseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateWarehouseCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateEmployeeCommandHandler() commands.CreateEmployeeCommandHandler {
	var f commands.EmployeeUoWFactory = FuncEmployeeUoWFactory(func() commands.EmployeeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateEmployeeCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordMovementCommandHandler() commands.RecordMovementCommandHandler {
	var f commands.MovementUoWFactory = FuncMovementUoWFactory(func() commands.MovementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordMovementCommandHandler(f)
}

func (c *CompositionRoot) CreateGetShipmentQueryHandler() queries.GetShipmentQueryHandler {
	return queries.NewGetShipmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentHistoryQueryHandler() queries.GetShipmentHistoryQueryHandler {
	return queries.NewGetShipmentHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCurrentStatusQueryHandler() queries.GetCurrentStatusQueryHandler {
	return queries.NewGetCurrentStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetReturnQueryHandler() queries.GetReturnQueryHandler {
	return queries.NewGetReturnQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListShipmentsQueryHandler() queries.ListShipmentsQueryHandler {
	return queries.NewListShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOverdueShipmentsQueryHandler() queries.ListOverdueShipmentsQueryHandler {
	return queries.NewListOverdueShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListReturnsQueryHandler() queries.ListReturnsQueryHandler {
	return queries.NewListReturnsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListShippingMethodsQueryHandler() queries.ListShippingMethodsQueryHandler {
	return queries.NewListShippingMethodsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListWarehousesQueryHandler() queries.ListWarehousesQueryHandler {
	return queries.NewListWarehousesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListEmployeesQueryHandler() queries.ListEmployeesQueryHandler {
	return queries.NewListEmployeesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListMovementsQueryHandler() queries.ListMovementsQueryHandler {
	return queries.NewListMovementsQueryHandler(c.gormDB)
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncCreateShipmentUoWFactory func() commands.CreateShipmentUoW

func (f FuncCreateShipmentUoWFactory) Create() commands.CreateShipmentUoW {
	return f()
}

type FuncReturnUoWFactory func() commands.ReturnUoW

func (f FuncReturnUoWFactory) Create() commands.ReturnUoW {
	return f()
}

type FuncMethodUoWFactory func() commands.MethodUoW

func (f FuncMethodUoWFactory) Create() commands.MethodUoW {
	return f()
}

type FuncWarehouseUoWFactory func() commands.WarehouseUoW

func (f FuncWarehouseUoWFactory) Create() commands.WarehouseUoW {
	return f()
}

type FuncEmployeeUoWFactory func() commands.EmployeeUoW

func (f FuncEmployeeUoWFactory) Create() commands.EmployeeUoW {
	return f()
}

type FuncMovementUoWFactory func() commands.MovementUoW

func (f FuncMovementUoWFactory) Create() commands.MovementUoW {
	return f()
}
