package commands_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/employee"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/returns"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/shippingmethod"
	"logistics/internal/core/domain/model/stocklog"
	"logistics/internal/core/domain/model/warehouse"
	"logistics/internal/core/ports"
)

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) AppendStatus(ctx context.Context, record *shipment.StatusRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockShipmentRepository) GetCurrentStatus(ctx context.Context, shipmentID kernel.UUID) (*shipment.StatusRecord, error) {
	args := m.Called(ctx, shipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.StatusRecord), args.Error(1)
}

func (m *MockShipmentRepository) ListStatusHistory(ctx context.Context, shipmentID kernel.UUID) ([]*shipment.StatusRecord, error) {
	args := m.Called(ctx, shipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.StatusRecord), args.Error(1)
}

type MockReturnRepository struct{ mock.Mock }

func (m *MockReturnRepository) Add(ctx context.Context, aggregate *returns.Return) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockReturnRepository) Update(ctx context.Context, aggregate *returns.Return) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockReturnRepository) Get(ctx context.Context, id kernel.UUID) (*returns.Return, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*returns.Return), args.Error(1)
}

type MockMethodRepository struct{ mock.Mock }

func (m *MockMethodRepository) Add(ctx context.Context, method *shippingmethod.Method) error {
	args := m.Called(ctx, method)
	return args.Error(0)
}

func (m *MockMethodRepository) Get(ctx context.Context, id kernel.UUID) (*shippingmethod.Method, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shippingmethod.Method), args.Error(1)
}

type MockWarehouseRepository struct{ mock.Mock }

func (m *MockWarehouseRepository) Add(ctx context.Context, aggregate *warehouse.Warehouse) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockWarehouseRepository) Get(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*warehouse.Warehouse), args.Error(1)
}

type MockEmployeeRepository struct{ mock.Mock }

func (m *MockEmployeeRepository) Add(ctx context.Context, aggregate *employee.Employee) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Get(ctx context.Context, id kernel.UUID) (*employee.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*employee.Employee), args.Error(1)
}

type MockMovementRepository struct{ mock.Mock }

func (m *MockMovementRepository) Append(ctx context.Context, movement *stocklog.Movement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

// MockUoW satisfies every command unit of work interface so a single mock
// type serves all handler tests.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

func (m *MockUoW) ReturnRepository() ports.ReturnRepository {
	args := m.Called()
	return args.Get(0).(ports.ReturnRepository)
}

func (m *MockUoW) MethodRepository() ports.MethodRepository {
	args := m.Called()
	return args.Get(0).(ports.MethodRepository)
}

func (m *MockUoW) WarehouseRepository() ports.WarehouseRepository {
	args := m.Called()
	return args.Get(0).(ports.WarehouseRepository)
}

func (m *MockUoW) EmployeeRepository() ports.EmployeeRepository {
	args := m.Called()
	return args.Get(0).(ports.EmployeeRepository)
}

func (m *MockUoW) MovementRepository() ports.MovementRepository {
	args := m.Called()
	return args.Get(0).(ports.MovementRepository)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockCreateShipmentUoWFactory struct{ mock.Mock }

func (m *MockCreateShipmentUoWFactory) Create() commands.CreateShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateShipmentUoW)
}

type MockReturnUoWFactory struct{ mock.Mock }

func (m *MockReturnUoWFactory) Create() commands.ReturnUoW {
	args := m.Called()
	return args.Get(0).(commands.ReturnUoW)
}

type MockMethodUoWFactory struct{ mock.Mock }

func (m *MockMethodUoWFactory) Create() commands.MethodUoW {
	args := m.Called()
	return args.Get(0).(commands.MethodUoW)
}

type MockWarehouseUoWFactory struct{ mock.Mock }

func (m *MockWarehouseUoWFactory) Create() commands.WarehouseUoW {
	args := m.Called()
	return args.Get(0).(commands.WarehouseUoW)
}

type MockEmployeeUoWFactory struct{ mock.Mock }

func (m *MockEmployeeUoWFactory) Create() commands.EmployeeUoW {
	args := m.Called()
	return args.Get(0).(commands.EmployeeUoW)
}

type MockMovementUoWFactory struct{ mock.Mock }

func (m *MockMovementUoWFactory) Create() commands.MovementUoW {
	args := m.Called()
	return args.Get(0).(commands.MovementUoW)
}
