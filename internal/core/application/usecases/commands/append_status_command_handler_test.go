package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
)

func testStatusRecord(t *testing.T, shipmentID kernel.UUID, status shipment.Status) *shipment.StatusRecord {
	t.Helper()
	record, err := shipment.NewStatusRecord(kernel.NewUUID(), shipmentID, status,
		"", nil, time.Now().UTC())
	require.NoError(t, err)
	return record
}

func TestAppendStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	shipmentID := kernel.NewUUID()
	employeeID := kernel.NewUUID()
	cmd, err := commands.NewAppendStatusCommand(shipmentID, shipment.StatusInTransit,
		"left the warehouse", &employeeID)
	require.NoError(t, err)

	repo := new(MockShipmentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, shipmentID).
			Return(testShipment(t, shipmentID), nil).Once(),
		repo.On("GetCurrentStatus", mock.Anything, shipmentID).
			Return(testStatusRecord(t, shipmentID, shipment.StatusPending), nil).Once(),
		repo.On("AppendStatus", mock.Anything, mock.AnythingOfType("*shipment.StatusRecord")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAppendStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	appended := repo.Calls[2].Arguments.Get(1).(*shipment.StatusRecord)
	assert.Equal(t, shipment.StatusInTransit, appended.Status())
	assert.Equal(t, "left the warehouse", appended.Description())
	require.NotNil(t, appended.EmployeeID())
	assert.Equal(t, employeeID, *appended.EmployeeID())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAppendStatusCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()
	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewAppendStatusCommand(shipmentID, shipment.StatusDelivered, "", nil)
	require.NoError(t, err)

	repo := new(MockShipmentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, shipmentID).
			Return(testShipment(t, shipmentID), nil).Once(),
		repo.On("GetCurrentStatus", mock.Anything, shipmentID).
			Return(testStatusRecord(t, shipmentID, shipment.StatusPending), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAppendStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	repo.AssertNotCalled(t, "AppendStatus", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestAppendStatusCommandHandler_Handle_ReturnedIsRejected(t *testing.T) {
	ctx := t.Context()
	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewAppendStatusCommand(shipmentID, shipment.StatusReturned, "", nil)
	require.NoError(t, err)

	repo := new(MockShipmentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, shipmentID).
			Return(testShipment(t, shipmentID), nil).Once(),
		repo.On("GetCurrentStatus", mock.Anything, shipmentID).
			Return(testStatusRecord(t, shipmentID, shipment.StatusDelivered), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAppendStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	uow.AssertExpectations(t)
}

func TestAppendStatusCommandHandler_Handle_ShipmentNotFound(t *testing.T) {
	ctx := t.Context()
	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewAppendStatusCommand(shipmentID, shipment.StatusInTransit, "", nil)
	require.NoError(t, err)

	repo := new(MockShipmentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, shipmentID).
			Return(nil, errs.NewObjectNotFoundError("shipmentId", shipmentID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAppendStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}
