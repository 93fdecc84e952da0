// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the narrowest interface that covers the
// repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// ReturnRepoFactory provides access to the return repository within a transaction.
	ReturnRepoFactory interface {
		ReturnRepository() ports.ReturnRepository
	}

	// MethodRepoFactory provides access to the shipping method repository within a transaction.
	MethodRepoFactory interface {
		MethodRepository() ports.MethodRepository
	}

	// WarehouseRepoFactory provides access to the warehouse repository within a transaction.
	WarehouseRepoFactory interface {
		WarehouseRepository() ports.WarehouseRepository
	}

	// EmployeeRepoFactory provides access to the employee repository within a transaction.
	EmployeeRepoFactory interface {
		EmployeeRepository() ports.EmployeeRepository
	}

	// MovementRepoFactory provides access to the stock log repository within a transaction.
	MovementRepoFactory interface {
		MovementRepository() ports.MovementRepository
	}

	// ShipmentUoW manages transactions for shipment-only operations,
	// such as appending a status record.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// CreateShipmentUoW manages transactions for shipment creation, which
	// reads the shipping method and writes the shipment plus its initial
	// status record atomically.
	CreateShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
		MethodRepoFactory
	}

	// CreateShipmentUoWFactory creates new shipment creation unit of work instances.
	CreateShipmentUoWFactory interface {
		Create() CreateShipmentUoW
	}

	// ReturnUoW manages transactions spanning return and shipment
	// aggregates. Receiving a return appends to the shipment's status
	// history in the same transaction.
	ReturnUoW interface {
		TxManager
		ReturnRepoFactory
		ShipmentRepoFactory
	}

	// ReturnUoWFactory creates new return unit of work instances.
	ReturnUoWFactory interface {
		Create() ReturnUoW
	}

	// MethodUoW manages transactions for shipping method operations.
	MethodUoW interface {
		TxManager
		MethodRepoFactory
	}

	// MethodUoWFactory creates new shipping method unit of work instances.
	MethodUoWFactory interface {
		Create() MethodUoW
	}

	// WarehouseUoW manages transactions for warehouse operations.
	WarehouseUoW interface {
		TxManager
		WarehouseRepoFactory
	}

	// WarehouseUoWFactory creates new warehouse unit of work instances.
	WarehouseUoWFactory interface {
		Create() WarehouseUoW
	}

	// EmployeeUoW manages transactions for employee operations.
	EmployeeUoW interface {
		TxManager
		EmployeeRepoFactory
	}

	// EmployeeUoWFactory creates new employee unit of work instances.
	EmployeeUoWFactory interface {
		Create() EmployeeUoW
	}

	// MovementUoW manages transactions for stock log operations. Warehouse
	// and employee repositories are needed to verify the references before
	// appending.
	MovementUoW interface {
		TxManager
		MovementRepoFactory
		WarehouseRepoFactory
		EmployeeRepoFactory
	}

	// MovementUoWFactory creates new stock log unit of work instances.
	MovementUoWFactory interface {
		Create() MovementUoW
	}
)
