package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/warehouse"
)

// WarehouseRepository defines the persistence contract for warehouses.
type WarehouseRepository interface {
	// Add persists a new warehouse.
	Add(ctx context.Context, aggregate *warehouse.Warehouse) error

	// Get retrieves a warehouse by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, error)
}
