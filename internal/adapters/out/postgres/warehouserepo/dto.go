// Package warehouserepo provides GORM-based persistence for warehouse aggregates.
package warehouserepo

import (
	"github.com/google/uuid"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/warehouse"
)

// WarehouseDTO represents the database structure for persisting warehouses.
type WarehouseDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Address string    `gorm:"type:text;not null"`
	Kind    string    `gorm:"type:text;not null"`
}

// TableName specifies the database table name for warehouses.
func (WarehouseDTO) TableName() string {
	return "warehouses"
}

func fromDomain(w *warehouse.Warehouse) WarehouseDTO {
	return WarehouseDTO{
		ID:      w.ID().Bytes(),
		Address: w.Address(),
		Kind:    w.Kind().String(),
	}
}

func toDomain(dto WarehouseDTO) (*warehouse.Warehouse, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	kind, err := warehouse.KindFromString(dto.Kind)
	if err != nil {
		return nil, err
	}

	return warehouse.RestoreWarehouse(id, dto.Address, kind)
}
