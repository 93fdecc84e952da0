package queries

import (
	"errors"

	"logistics/internal/core/domain/model/employee"
	"logistics/internal/core/domain/model/kernel"
)

var ErrListEmployeesQueryIsNotConstructed = errors.New(
	"ListEmployeesQuery must be created via NewListEmployeesQuery constructor",
)

// ListEmployeesQuery retrieves a page of employees.
type ListEmployeesQuery struct {
	offset int
	limit  int

	guard kernel.ConstructorGuard
}

// NewListEmployeesQuery creates a paginated employee listing query.
// A zero limit selects the default page size.
func NewListEmployeesQuery(offset, limit int) (ListEmployeesQuery, error) {
	offset, limit, err := normalizePage(offset, limit)
	if err != nil {
		return ListEmployeesQuery{}, err
	}

	return ListEmployeesQuery{
		offset: offset,
		limit:  limit,
		guard:  kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListEmployeesQuery) Validate() error {
	return q.guard.Validate(ErrListEmployeesQueryIsNotConstructed)
}

// Offset returns the number of rows to skip.
func (q ListEmployeesQuery) Offset() int {
	return q.offset
}

// Limit returns the page size.
func (q ListEmployeesQuery) Limit() int {
	return q.limit
}

// EmployeeResponse represents an employee in the read model.
// The password hash never leaves the write side.
type EmployeeResponse struct {
	ID        kernel.UUID
	FirstName string
	LastName1 string
	LastName2 string
	Phone     string
	Email     string
	Position  employee.Position
	Area      employee.Area
}
