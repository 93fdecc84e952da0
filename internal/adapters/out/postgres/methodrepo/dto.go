// Package methodrepo provides GORM-based persistence for shipping method aggregates.
package methodrepo

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shippingmethod"
)

// MethodDTO represents the database structure for persisting shipping methods.
type MethodDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Kind          string          `gorm:"type:text;not null"`
	Description   string          `gorm:"type:text;not null"`
	EstimatedDays int             `gorm:"not null"`
	Cost          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName specifies the database table name for shipping methods.
func (MethodDTO) TableName() string {
	return "shipping_methods"
}

func fromDomain(method *shippingmethod.Method) MethodDTO {
	return MethodDTO{
		ID:            method.ID().Bytes(),
		Kind:          method.Kind().String(),
		Description:   method.Description(),
		EstimatedDays: method.EstimatedDays(),
		Cost:          method.Cost(),
	}
}

func toDomain(dto MethodDTO) (*shippingmethod.Method, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	kind, err := shippingmethod.KindFromString(dto.Kind)
	if err != nil {
		return nil, err
	}

	return shippingmethod.RestoreMethod(id, kind, dto.Description, dto.EstimatedDays, dto.Cost)
}
