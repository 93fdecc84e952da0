package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/warehouse"
)

// ListWarehousesQueryHandler reads pages of warehouses.
type ListWarehousesQueryHandler struct {
	db *gorm.DB
}

// NewListWarehousesQueryHandler creates a handler for warehouse listings.
// Requires a GORM database connection for query execution.
func NewListWarehousesQueryHandler(db *gorm.DB) ListWarehousesQueryHandler {
	return ListWarehousesQueryHandler{db: db}
}

// Handle executes the listing ordered by address.
func (h ListWarehousesQueryHandler) Handle(
	ctx context.Context,
	query ListWarehousesQuery,
) ([]WarehouseResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	warehouses := make([]WarehouseResponse, 0, query.Limit())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			address,
			kind
		FROM warehouses
		ORDER BY address
		OFFSET ? LIMIT ?
	`, query.Offset(), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response WarehouseResponse
		var id uuid.UUID
		var kind string

		if err = rows.Scan(&id, &response.Address, &kind); err != nil {
			return nil, err
		}

		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if response.Kind, err = warehouse.KindFromString(kind); err != nil {
			return nil, err
		}
		warehouses = append(warehouses, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return warehouses, nil
}
