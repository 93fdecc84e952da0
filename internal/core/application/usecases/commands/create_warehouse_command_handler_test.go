package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/warehouse"
)

func TestCreateWarehouseCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateWarehouseCommand(kernel.NewUUID(), "12 Dock Road", warehouse.KindSmall)
	require.NoError(t, err)

	repo := new(MockWarehouseRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WarehouseRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*warehouse.Warehouse")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWarehouseUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateWarehouseCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	added := repo.Calls[0].Arguments.Get(1).(*warehouse.Warehouse)
	assert.Equal(t, "12 Dock Road", added.Address())
	assert.Equal(t, warehouse.KindSmall, added.Kind())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateWarehouseCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateWarehouseCommand(kernel.NewUUID(), "12 Dock Road", warehouse.KindSmall)
	require.NoError(t, err)

	repo := new(MockWarehouseRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WarehouseRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*warehouse.Warehouse")).
			Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWarehouseUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateWarehouseCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}

func TestCreateWarehouseCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateWarehouseCommand{} // not constructed properly
	factory := new(MockWarehouseUoWFactory)
	h := commands.NewCreateWarehouseCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
