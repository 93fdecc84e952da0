package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"logistics/internal/core/domain/model/employee"
	"logistics/internal/core/domain/model/kernel"
)

// ListEmployeesQueryHandler reads pages of employees.
type ListEmployeesQueryHandler struct {
	db *gorm.DB
}

// NewListEmployeesQueryHandler creates a handler for employee listings.
// Requires a GORM database connection for query execution.
func NewListEmployeesQueryHandler(db *gorm.DB) ListEmployeesQueryHandler {
	return ListEmployeesQueryHandler{db: db}
}

// Handle executes the listing ordered by surname then first name.
func (h ListEmployeesQueryHandler) Handle(
	ctx context.Context,
	query ListEmployeesQuery,
) ([]EmployeeResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	employees := make([]EmployeeResponse, 0, query.Limit())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			first_name,
			last_name1,
			last_name2,
			phone,
			email,
			position,
			area
		FROM employees
		ORDER BY last_name1, first_name
		OFFSET ? LIMIT ?
	`, query.Offset(), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response EmployeeResponse
		var id uuid.UUID
		var position, area string

		err = rows.Scan(
			&id,
			&response.FirstName,
			&response.LastName1,
			&response.LastName2,
			&response.Phone,
			&response.Email,
			&position,
			&area,
		)
		if err != nil {
			return nil, err
		}

		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if response.Position, err = employee.PositionFromString(position); err != nil {
			return nil, err
		}
		if response.Area, err = employee.AreaFromString(area); err != nil {
			return nil, err
		}
		employees = append(employees, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}
