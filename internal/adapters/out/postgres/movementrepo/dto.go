// Package movementrepo provides GORM-based persistence for the warehouse
// stock log.
package movementrepo

import (
	"time"

	"github.com/google/uuid"

	"logistics/internal/core/domain/model/stocklog"
)

// MovementDTO represents one append-only stock log entry.
type MovementDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	WarehouseID uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;not null"`
	Quantity    int       `gorm:"not null"`
	RecordedAt  time.Time `gorm:"not null"`
}

// TableName specifies the database table name for stock movements.
func (MovementDTO) TableName() string {
	return "stock_movements"
}

func fromDomain(m *stocklog.Movement) MovementDTO {
	return MovementDTO{
		ID:          m.ID().Bytes(),
		WarehouseID: m.WarehouseID().Bytes(),
		ProductID:   m.ProductID().Bytes(),
		EmployeeID:  m.EmployeeID().Bytes(),
		Quantity:    m.Quantity(),
		RecordedAt:  m.RecordedAt(),
	}
}
