package queries_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

func TestNewGetShipmentQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id := kernel.NewUUID()
		query, err := queries.NewGetShipmentQuery(id)
		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, id, query.ShipmentID())
	})

	t.Run("empty id", func(t *testing.T) {
		_, err := queries.NewGetShipmentQuery(kernel.UUID{})
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("not constructed", func(t *testing.T) {
		query := queries.GetShipmentQuery{}
		assert.ErrorIs(t, query.Validate(), queries.ErrGetShipmentQueryIsNotConstructed)
	})
}

func TestNewGetShipmentHistoryQuery(t *testing.T) {
	_, err := queries.NewGetShipmentHistoryQuery(kernel.UUID{})
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	query, err := queries.NewGetShipmentHistoryQuery(kernel.NewUUID())
	require.NoError(t, err)
	assert.NoError(t, query.Validate())
}

func TestNewGetCurrentStatusQuery(t *testing.T) {
	_, err := queries.NewGetCurrentStatusQuery(kernel.UUID{})
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	query, err := queries.NewGetCurrentStatusQuery(kernel.NewUUID())
	require.NoError(t, err)
	assert.NoError(t, query.Validate())
}

func TestNewGetReturnQuery(t *testing.T) {
	_, err := queries.NewGetReturnQuery(kernel.UUID{})
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	query, err := queries.NewGetReturnQuery(kernel.NewUUID())
	require.NoError(t, err)
	assert.NoError(t, query.Validate())
}

func TestListQueries_Pagination(t *testing.T) {
	t.Run("defaults applied for zero limit", func(t *testing.T) {
		query, err := queries.NewListShipmentsQuery(0, 0)
		require.NoError(t, err)
		assert.Equal(t, 0, query.Offset())
		assert.Equal(t, 100, query.Limit())
	})

	t.Run("explicit page is kept", func(t *testing.T) {
		query, err := queries.NewListShipmentsQuery(40, 20)
		require.NoError(t, err)
		assert.Equal(t, 40, query.Offset())
		assert.Equal(t, 20, query.Limit())
	})

	t.Run("negative offset rejected", func(t *testing.T) {
		_, err := queries.NewListShipmentsQuery(-1, 10)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("oversized limit rejected", func(t *testing.T) {
		_, err := queries.NewListReturnsQuery(0, 501)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("negative limit rejected", func(t *testing.T) {
		_, err := queries.NewListEmployeesQuery(0, -5)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewListMovementsQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		warehouseID := kernel.NewUUID()
		query, err := queries.NewListMovementsQuery(warehouseID, 0, 25)
		require.NoError(t, err)
		assert.Equal(t, warehouseID, query.WarehouseID())
		assert.Equal(t, 25, query.Limit())
	})

	t.Run("empty warehouse id", func(t *testing.T) {
		_, err := queries.NewListMovementsQuery(kernel.UUID{}, 0, 25)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewListOverdueShipmentsQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		asOf := time.Now().UTC()
		query, err := queries.NewListOverdueShipmentsQuery(asOf)
		require.NoError(t, err)
		assert.Equal(t, asOf, query.AsOf())
	})

	t.Run("zero instant", func(t *testing.T) {
		_, err := queries.NewListOverdueShipmentsQuery(time.Time{})
		require.Error(t, err)
	})

	t.Run("not constructed", func(t *testing.T) {
		query := queries.ListOverdueShipmentsQuery{}
		assert.ErrorIs(t, query.Validate(), queries.ErrListOverdueShipmentsQueryIsNotConstructed)
	})
}
