package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/warehouse"
	"logistics/internal/pkg/errs"
)

func TestNewCreateWarehouseCommand_ValidInput(t *testing.T) {
	warehouseID := kernel.NewUUID()

	cmd, err := commands.NewCreateWarehouseCommand(warehouseID, "12 Dock Road", warehouse.KindLarge)

	require.NoError(t, err)
	assert.Equal(t, warehouseID, cmd.WarehouseID())
	assert.Equal(t, "12 Dock Road", cmd.Address())
	assert.Equal(t, warehouse.KindLarge, cmd.Kind())
}

func TestNewCreateWarehouseCommand_EmptyAddress(t *testing.T) {
	_, err := commands.NewCreateWarehouseCommand(kernel.NewUUID(), "", warehouse.KindSmall)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateWarehouseCommand_InvalidKind(t *testing.T) {
	_, err := commands.NewCreateWarehouseCommand(kernel.NewUUID(), "12 Dock Road", warehouse.KindUnknown)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreateWarehouseCommand_NotConstructed(t *testing.T) {
	cmd := commands.CreateWarehouseCommand{}
	assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateWarehouseCommandIsNotConstructed)
}
