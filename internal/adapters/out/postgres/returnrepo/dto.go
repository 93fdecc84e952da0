// Package returnrepo provides GORM-based persistence for return aggregates.
// A return persists as one row in "returns" plus one row per line in
// "return_lines"; lines are written once at creation and never change.
package returnrepo

import (
	"time"

	"github.com/google/uuid"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/returns"
)

// ReturnDTO represents the database structure for persisting returns.
type ReturnDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID uuid.UUID `gorm:"type:uuid;not null;index"`
	Reason     string    `gorm:"type:text;not null"`
	State      string    `gorm:"type:text;not null"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the database table name for returns.
func (ReturnDTO) TableName() string {
	return "returns"
}

// ReturnLineDTO represents one returned product line. Seq preserves the
// order lines were declared in.
type ReturnLineDTO struct {
	Seq       int64     `gorm:"primaryKey;autoIncrement"`
	ReturnID  uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	Quantity  int       `gorm:"not null"`
}

// TableName specifies the database table name for return lines.
func (ReturnLineDTO) TableName() string {
	return "return_lines"
}

func fromDomain(r *returns.Return) (ReturnDTO, []ReturnLineDTO) {
	dto := ReturnDTO{
		ID:         r.ID().Bytes(),
		ShipmentID: r.ShipmentID().Bytes(),
		Reason:     r.Reason(),
		State:      r.State().String(),
		CreatedAt:  r.CreatedAt(),
	}

	lines := make([]ReturnLineDTO, 0, len(r.Lines()))
	for _, line := range r.Lines() {
		lines = append(lines, ReturnLineDTO{
			ReturnID:  r.ID().Bytes(),
			ProductID: line.ProductID().Bytes(),
			Quantity:  line.Quantity(),
		})
	}

	return dto, lines
}

func toDomain(dto ReturnDTO, lineDTOs []ReturnLineDTO) (*returns.Return, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}

	state, err := returns.StateFromString(dto.State)
	if err != nil {
		return nil, err
	}

	lines := make([]returns.Line, 0, len(lineDTOs))
	for _, lineDTO := range lineDTOs {
		productID, lineErr := kernel.UUIDFromBytes(lineDTO.ProductID[:])
		if lineErr != nil {
			return nil, lineErr
		}

		line, lineErr := returns.NewLine(productID, lineDTO.Quantity)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return returns.RestoreReturn(id, shipmentID, dto.Reason, dto.CreatedAt, state, lines)
}
