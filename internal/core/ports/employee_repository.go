package ports

import (
	"context"

	"logistics/internal/core/domain/model/employee"
	"logistics/internal/core/domain/model/kernel"
)

// EmployeeRepository defines the persistence contract for employees.
type EmployeeRepository interface {
	// Add persists a new employee. Email addresses are unique; adding an
	// employee with an email already in use returns a UniqueViolation error.
	Add(ctx context.Context, aggregate *employee.Employee) error

	// Get retrieves an employee by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*employee.Employee, error)
}
