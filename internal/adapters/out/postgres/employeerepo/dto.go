// Package employeerepo provides GORM-based persistence for employee aggregates.
package employeerepo

import (
	"github.com/google/uuid"

	"logistics/internal/core/domain/model/employee"
	"logistics/internal/core/domain/model/kernel"
)

// EmployeeDTO represents the database structure for persisting employees.
// Email carries a unique index so duplicate registrations fail at the
// storage layer even under concurrent inserts.
type EmployeeDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	PasswordHash string    `gorm:"type:text;not null"`
	FirstName    string    `gorm:"type:text;not null"`
	LastName1    string    `gorm:"type:text;not null"`
	LastName2    string    `gorm:"type:text"`
	Phone        string    `gorm:"type:text;not null"`
	Email        string    `gorm:"type:text;not null;uniqueIndex"`
	Position     string    `gorm:"type:text;not null"`
	Area         string    `gorm:"type:text;not null"`
}

// TableName specifies the database table name for employees.
func (EmployeeDTO) TableName() string {
	return "employees"
}

func fromDomain(e *employee.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:           e.ID().Bytes(),
		PasswordHash: e.PasswordHash(),
		FirstName:    e.FirstName(),
		LastName1:    e.LastName1(),
		LastName2:    e.LastName2(),
		Phone:        e.Phone(),
		Email:        e.Email(),
		Position:     e.Position().String(),
		Area:         e.Area().String(),
	}
}

func toDomain(dto EmployeeDTO) (*employee.Employee, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	position, err := employee.PositionFromString(dto.Position)
	if err != nil {
		return nil, err
	}

	area, err := employee.AreaFromString(dto.Area)
	if err != nil {
		return nil, err
	}

	return employee.RestoreEmployee(id, dto.PasswordHash,
		dto.FirstName, dto.LastName1, dto.LastName2,
		dto.Phone, dto.Email, position, area)
}
