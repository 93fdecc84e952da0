package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/returns"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
)

func testReturn(t *testing.T, id kernel.UUID, state returns.State) *returns.Return {
	t.Helper()
	line, err := returns.NewLine(kernel.NewUUID(), 1)
	require.NoError(t, err)
	aggregate, err := returns.RestoreReturn(id, kernel.NewUUID(), "damaged",
		time.Now().UTC(), state, []returns.Line{line})
	require.NoError(t, err)
	return aggregate
}

func TestAdvanceReturnCommandHandler_Handle_Shipped(t *testing.T) {
	ctx := t.Context()
	returnID := kernel.NewUUID()
	cmd, err := commands.NewAdvanceReturnCommand(returnID, returns.StateShipped)
	require.NoError(t, err)

	returnRepo := new(MockReturnRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReturnRepository").Return(returnRepo).Once(),
		returnRepo.On("Get", mock.Anything, returnID).
			Return(testReturn(t, returnID, returns.StatePending), nil).Once(),
		returnRepo.On("Update", mock.Anything, mock.AnythingOfType("*returns.Return")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReturnUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceReturnCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	// no shipment history write on the shipped edge
	uow.AssertNotCalled(t, "ShipmentRepository")
	returnRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAdvanceReturnCommandHandler_Handle_ReceivedAppendsReturnedRecord(t *testing.T) {
	ctx := t.Context()
	returnID := kernel.NewUUID()
	cmd, err := commands.NewAdvanceReturnCommand(returnID, returns.StateReceived)
	require.NoError(t, err)

	aggregate := testReturn(t, returnID, returns.StateShipped)

	returnRepo := new(MockReturnRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReturnRepository").Return(returnRepo).Once(),
		returnRepo.On("Get", mock.Anything, returnID).Return(aggregate, nil).Once(),
		returnRepo.On("Update", mock.Anything, mock.AnythingOfType("*returns.Return")).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("AppendStatus", mock.Anything, mock.AnythingOfType("*shipment.StatusRecord")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReturnUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceReturnCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	record := shipmentRepo.Calls[0].Arguments.Get(1).(*shipment.StatusRecord)
	assert.Equal(t, shipment.StatusReturned, record.Status())
	assert.Equal(t, shipment.ReturnReceivedDescription, record.Description())
	assert.True(t, aggregate.ShipmentID().IsEqual(record.ShipmentID()))
	assert.Nil(t, record.EmployeeID())

	shipmentRepo.AssertExpectations(t)
	returnRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAdvanceReturnCommandHandler_Handle_ReceiveTwiceIsIdempotent(t *testing.T) {
	ctx := t.Context()
	returnID := kernel.NewUUID()
	cmd, err := commands.NewAdvanceReturnCommand(returnID, returns.StateReceived)
	require.NoError(t, err)

	returnRepo := new(MockReturnRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReturnRepository").Return(returnRepo).Once(),
		returnRepo.On("Get", mock.Anything, returnID).
			Return(testReturn(t, returnID, returns.StateReceived), nil).Once(),
		returnRepo.On("Update", mock.Anything, mock.AnythingOfType("*returns.Return")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReturnUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceReturnCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	// already received: no second "returned" record
	uow.AssertNotCalled(t, "ShipmentRepository")
	returnRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAdvanceReturnCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()
	returnID := kernel.NewUUID()
	cmd, err := commands.NewAdvanceReturnCommand(returnID, returns.StateShipped)
	require.NoError(t, err)

	returnRepo := new(MockReturnRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReturnRepository").Return(returnRepo).Once(),
		returnRepo.On("Get", mock.Anything, returnID).
			Return(testReturn(t, returnID, returns.StateReceived), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReturnUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceReturnCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	returnRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestAdvanceReturnCommandHandler_Handle_ReturnNotFound(t *testing.T) {
	ctx := t.Context()
	returnID := kernel.NewUUID()
	cmd, err := commands.NewAdvanceReturnCommand(returnID, returns.StateShipped)
	require.NoError(t, err)

	returnRepo := new(MockReturnRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReturnRepository").Return(returnRepo).Once(),
		returnRepo.On("Get", mock.Anything, returnID).
			Return(nil, errs.NewObjectNotFoundError("returnId", returnID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReturnUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceReturnCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}
