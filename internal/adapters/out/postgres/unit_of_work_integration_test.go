package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	postgres_adapter "logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/postgres/employeerepo"
	"logistics/internal/adapters/out/postgres/methodrepo"
	"logistics/internal/adapters/out/postgres/movementrepo"
	"logistics/internal/adapters/out/postgres/returnrepo"
	"logistics/internal/adapters/out/postgres/shipmentrepo"
	"logistics/internal/adapters/out/postgres/warehouserepo"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/returns"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/shippingmethod"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// UnitOfWorkIntegrationTestSuite tests the GORM-based Unit of Work
// implementation against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&methodrepo.MethodDTO{},
		&warehouserepo.WarehouseDTO{},
		&employeerepo.EmployeeDTO{},
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.StatusRecordDTO{},
		&returnrepo.ReturnDTO{},
		&returnrepo.ReturnLineDTO{},
		&movementrepo.MovementDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE shipping_methods, warehouses, employees, " +
		"shipments, shipment_statuses, returns, return_lines, stock_movements").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestMethod() *shippingmethod.Method {
	method, err := shippingmethod.NewMethod(kernel.NewUUID(), shippingmethod.KindFast,
		"two day air", 2, decimal.NewFromFloat(9.99))
	suite.Require().NoError(err)
	return method
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestShipment(method *shippingmethod.Method) *shipment.Shipment {
	shipDate := time.Date(2026, 5, 4, 8, 0, 0, 0, time.UTC)
	aggregate, err := shipment.NewShipment(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		method, shipment.GenerateTrackingCode(), shipDate)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "factory should create separate instances")
	suite.NotNil(uow1.ShipmentRepository())
	suite.NotNil(uow2.ReturnRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Repeated Begin must not open a nested transaction.
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().Error(uow.Commit(ctx), "commit without begin should fail")
	suite.Require().Error(uow.Rollback(ctx), "rollback without begin should fail")
}

// Creating a shipment writes the shipment row and its initial status record
// in one transaction; either both land or neither does.
func (suite *UnitOfWorkIntegrationTestSuite) TestShipmentWithInitialStatus_Commit() {
	ctx := context.Background()
	uow := suite.factory.Create()

	method := suite.createTestMethod()
	suite.Require().NoError(uow.MethodRepository().Add(ctx, method))

	aggregate := suite.createTestShipment(method)
	record, err := shipment.NewStatusRecord(kernel.NewUUID(), aggregate.ID(),
		shipment.StatusPending, shipment.InitialStatusDescription, nil, time.Now().UTC())
	suite.Require().NoError(err)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.ShipmentRepository().AppendStatus(ctx, record))
	suite.Require().NoError(uow.Commit(ctx))

	newUow := suite.factory.Create()
	retrieved, err := newUow.ShipmentRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.True(aggregate.ID().IsEqual(retrieved.ID()))

	current, err := newUow.ShipmentRepository().GetCurrentStatus(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.StatusPending, current.Status())
	suite.Equal(shipment.InitialStatusDescription, current.Description())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestShipmentWithInitialStatus_Rollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	method := suite.createTestMethod()
	suite.Require().NoError(uow.MethodRepository().Add(ctx, method))

	aggregate := suite.createTestShipment(method)
	record, err := shipment.NewStatusRecord(kernel.NewUUID(), aggregate.ID(),
		shipment.StatusPending, shipment.InitialStatusDescription, nil, time.Now().UTC())
	suite.Require().NoError(err)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.ShipmentRepository().AppendStatus(ctx, record))
	suite.Require().NoError(uow.Rollback(ctx))

	newUow := suite.factory.Create()
	_, err = newUow.ShipmentRepository().Get(ctx, aggregate.ID())
	suite.Require().Error(err, "shipment should not exist after rollback")

	history, err := newUow.ShipmentRepository().ListStatusHistory(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Empty(history, "no status records should exist after rollback")
}

// Receiving a return updates the return state and appends the returned
// status record to the shipment history atomically.
func (suite *UnitOfWorkIntegrationTestSuite) TestReceiveReturn_Atomic() {
	ctx := context.Background()
	setup := suite.factory.Create()

	method := suite.createTestMethod()
	suite.Require().NoError(setup.MethodRepository().Add(ctx, method))

	aggregate := suite.createTestShipment(method)
	suite.Require().NoError(setup.ShipmentRepository().Add(ctx, aggregate))

	line, err := returns.NewLine(kernel.NewUUID(), 2)
	suite.Require().NoError(err)
	ret, err := returns.NewReturn(kernel.NewUUID(), aggregate.ID(),
		"wrong size", time.Now().UTC(), []returns.Line{line})
	suite.Require().NoError(err)
	suite.Require().NoError(setup.ReturnRepository().Add(ctx, ret))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	loaded, err := uow.ReturnRepository().Get(ctx, ret.ID())
	suite.Require().NoError(err)

	receivedNow, err := loaded.Advance(returns.StateReceived)
	suite.Require().NoError(err)
	suite.Require().True(receivedNow)

	suite.Require().NoError(uow.ReturnRepository().Update(ctx, loaded))

	record, err := shipment.NewStatusRecord(kernel.NewUUID(), aggregate.ID(),
		shipment.StatusReturned, shipment.ReturnReceivedDescription, nil, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.ShipmentRepository().AppendStatus(ctx, record))

	suite.Require().NoError(uow.Commit(ctx))

	verify := suite.factory.Create()
	retrieved, err := verify.ReturnRepository().Get(ctx, ret.ID())
	suite.Require().NoError(err)
	suite.Equal(returns.StateReceived, retrieved.State())

	current, err := verify.ShipmentRepository().GetCurrentStatus(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.StatusReturned, current.Status())
	suite.Equal(shipment.ReturnReceivedDescription, current.Description())
}

// Two transactions receiving the same return must produce a single
// "returned" record. The return row lock taken on Get serializes them;
// the loser re-reads the received state and its Advance is a no-op.
func (suite *UnitOfWorkIntegrationTestSuite) TestReceiveReturn_ConcurrentReceipts() {
	ctx := context.Background()
	setup := suite.factory.Create()

	method := suite.createTestMethod()
	suite.Require().NoError(setup.MethodRepository().Add(ctx, method))

	aggregate := suite.createTestShipment(method)
	suite.Require().NoError(setup.ShipmentRepository().Add(ctx, aggregate))

	line, err := returns.NewLine(kernel.NewUUID(), 1)
	suite.Require().NoError(err)
	ret, err := returns.NewReturn(kernel.NewUUID(), aggregate.ID(),
		"damaged in transit", time.Now().UTC(), []returns.Line{line})
	suite.Require().NoError(err)
	suite.Require().NoError(setup.ReturnRepository().Add(ctx, ret))

	receive := func() (bool, error) {
		uow := suite.factory.Create()
		if err := uow.Begin(ctx); err != nil {
			return false, err
		}
		defer func() {
			_ = uow.Rollback(ctx)
		}()

		loaded, err := uow.ReturnRepository().Get(ctx, ret.ID())
		if err != nil {
			return false, err
		}
		receivedNow, err := loaded.Advance(returns.StateReceived)
		if err != nil {
			return false, err
		}
		if err := uow.ReturnRepository().Update(ctx, loaded); err != nil {
			return false, err
		}
		if receivedNow {
			record, err := shipment.NewStatusRecord(kernel.NewUUID(), aggregate.ID(),
				shipment.StatusReturned, shipment.ReturnReceivedDescription, nil, time.Now().UTC())
			if err != nil {
				return false, err
			}
			if err := uow.ShipmentRepository().AppendStatus(ctx, record); err != nil {
				return false, err
			}
		}
		return receivedNow, uow.Commit(ctx)
	}

	type outcome struct {
		receivedNow bool
		err         error
	}
	results := make(chan outcome, 2)

	var wg sync.WaitGroup
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			receivedNow, err := receive()
			results <- outcome{receivedNow: receivedNow, err: err}
		}()
	}
	wg.Wait()
	close(results)

	firstReceipts := 0
	for result := range results {
		suite.Require().NoError(result.err)
		if result.receivedNow {
			firstReceipts++
		}
	}
	suite.Equal(1, firstReceipts, "only one transaction should observe the transition")

	verify := suite.factory.Create()
	retrieved, err := verify.ReturnRepository().Get(ctx, ret.ID())
	suite.Require().NoError(err)
	suite.Equal(returns.StateReceived, retrieved.State())

	history, err := verify.ShipmentRepository().ListStatusHistory(ctx, aggregate.ID())
	suite.Require().NoError(err)
	returned := 0
	for _, record := range history {
		if record.Status() == shipment.StatusReturned {
			returned++
		}
	}
	suite.Equal(1, returned, "exactly one returned record per return")
}

// Two writers appending the same edge concurrently must not both land.
// Loading the shipment locks its row; the second writer then reads the
// first one's committed append and the edge validation rejects it.
func (suite *UnitOfWorkIntegrationTestSuite) TestAppendStatus_ConcurrentWritersSerialize() {
	ctx := context.Background()
	setup := suite.factory.Create()

	method := suite.createTestMethod()
	suite.Require().NoError(setup.MethodRepository().Add(ctx, method))

	aggregate := suite.createTestShipment(method)
	suite.Require().NoError(setup.ShipmentRepository().Add(ctx, aggregate))

	initial, err := shipment.NewStatusRecord(kernel.NewUUID(), aggregate.ID(),
		shipment.StatusPending, shipment.InitialStatusDescription, nil, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(setup.ShipmentRepository().AppendStatus(ctx, initial))

	appendInTransit := func() error {
		uow := suite.factory.Create()
		if err := uow.Begin(ctx); err != nil {
			return err
		}
		defer func() {
			_ = uow.Rollback(ctx)
		}()

		repo := uow.ShipmentRepository()
		if _, err := repo.Get(ctx, aggregate.ID()); err != nil {
			return err
		}
		current, err := repo.GetCurrentStatus(ctx, aggregate.ID())
		if err != nil {
			return err
		}
		if err := current.Status().ValidateAppend(shipment.StatusInTransit); err != nil {
			return err
		}
		record, err := shipment.NewStatusRecord(kernel.NewUUID(), aggregate.ID(),
			shipment.StatusInTransit, "", nil, time.Now().UTC())
		if err != nil {
			return err
		}
		if err := repo.AppendStatus(ctx, record); err != nil {
			return err
		}
		return uow.Commit(ctx)
	}

	results := make(chan error, 2)

	var wg sync.WaitGroup
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- appendInTransit()
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, rejected int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		default:
			suite.Require().ErrorIs(err, errs.ErrInvalidTransition)
			rejected++
		}
	}
	suite.Equal(1, succeeded)
	suite.Equal(1, rejected)

	verify := suite.factory.Create()
	history, err := verify.ShipmentRepository().ListStatusHistory(ctx, aggregate.ID())
	suite.Require().NoError(err)
	inTransit := 0
	for _, record := range history {
		if record.Status() == shipment.StatusInTransit {
			inTransit++
		}
	}
	suite.Equal(1, inTransit, "duplicate appends of the same edge must not land")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepositoryIsolation() {
	ctx := context.Background()

	method := suite.createTestMethod()
	setup := suite.factory.Create()
	suite.Require().NoError(setup.MethodRepository().Add(ctx, method))

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	shipment1 := suite.createTestShipment(method)
	shipment2 := suite.createTestShipment(method)

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	suite.Require().NoError(uow1.ShipmentRepository().Add(ctx, shipment1))
	suite.Require().NoError(uow2.ShipmentRepository().Add(ctx, shipment2))

	_, err := uow1.ShipmentRepository().Get(ctx, shipment1.ID())
	suite.Require().NoError(err, "uow1 should see its own shipment")

	_, err = uow1.ShipmentRepository().Get(ctx, shipment2.ID())
	suite.Require().Error(err, "uow1 should not see uow2's uncommitted shipment")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	verify := suite.factory.Create()
	_, err = verify.ShipmentRepository().Get(ctx, shipment1.ID())
	suite.Require().NoError(err, "committed shipment should persist")

	_, err = verify.ShipmentRepository().Get(ctx, shipment2.ID())
	suite.Require().Error(err, "rolled-back shipment should not persist")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestWithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	method := suite.createTestMethod()
	err := uow.MethodRepository().Add(ctx, method)
	suite.Require().NoError(err)

	retrieved, err := uow.MethodRepository().Get(ctx, method.ID())
	suite.Require().NoError(err)
	suite.True(method.IsEqual(retrieved))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
