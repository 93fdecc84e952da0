package employeerepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"logistics/internal/adapters/out/postgres/pgerr"
	"logistics/internal/core/domain/model/employee"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// GormEmployeeRepository implements EmployeeRepository using GORM.
type GormEmployeeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormEmployeeRepository creates a new GORM employee repository.
func NewGormEmployeeRepository(db *gorm.DB, tracker aggregateTracker) *GormEmployeeRepository {
	return &GormEmployeeRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new employee to the database. A duplicate email surfaces
// as a unique violation error.
func (r *GormEmployeeRepository) Add(ctx context.Context, aggregate *employee.Employee) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate("employees.add", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an employee by ID.
func (r *GormEmployeeRepository) Get(ctx context.Context, id kernel.UUID) (*employee.Employee, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto EmployeeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("employee", id.String())
		}
		return nil, pgerr.Translate("employees.get", err)
	}

	return toDomain(dto)
}
