package returnrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"logistics/internal/adapters/out/postgres/pgerr"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/returns"
	"logistics/internal/pkg/errs"
)

// GormReturnRepository implements ReturnRepository using GORM.
type GormReturnRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormReturnRepository creates a new GORM return repository.
func NewGormReturnRepository(db *gorm.DB, tracker aggregateTracker) *GormReturnRepository {
	return &GormReturnRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new return and its lines to the database.
func (r *GormReturnRepository) Add(ctx context.Context, aggregate *returns.Return) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, lines := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate("returns.add", err)
	}
	if err := r.db.WithContext(ctx).Create(&lines).Error; err != nil {
		return pgerr.Translate("return_lines.add", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves state changes to an existing return. Lines are immutable
// after creation and are left untouched.
func (r *GormReturnRepository) Update(ctx context.Context, aggregate *returns.Return) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, _ := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ReturnDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return pgerr.Translate("returns.update", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("return", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a return by ID, lines included. Inside a transaction the
// return row is locked until commit, so concurrent state transitions on
// the same return serialize and each sees the previous one's result.
func (r *GormReturnRepository) Get(ctx context.Context, id kernel.UUID) (*returns.Return, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ReturnDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("return", id.String())
		}
		return nil, pgerr.Translate("returns.get", err)
	}

	var lines []ReturnLineDTO
	err := r.db.WithContext(ctx).
		Where("return_id = ?", id.Bytes()).
		Order("seq").
		Find(&lines).Error
	if err != nil {
		return nil, pgerr.Translate("return_lines.get", err)
	}

	return toDomain(dto, lines)
}
