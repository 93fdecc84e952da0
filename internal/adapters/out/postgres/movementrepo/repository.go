package movementrepo

import (
	"context"

	"gorm.io/gorm"

	"logistics/internal/adapters/out/postgres/pgerr"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/stocklog"
)

// GormMovementRepository implements MovementRepository using GORM.
type GormMovementRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMovementRepository creates a new GORM stock movement repository.
func NewGormMovementRepository(db *gorm.DB, tracker aggregateTracker) *GormMovementRepository {
	return &GormMovementRepository{
		db:      db,
		tracker: tracker,
	}
}

// Append persists a new stock movement. The log is insert-only.
func (r *GormMovementRepository) Append(ctx context.Context, movement *stocklog.Movement) error {
	if err := movement.Validate(); err != nil {
		return err
	}

	dto := fromDomain(movement)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate("stock_movements.append", err)
	}

	r.tracker.TrackAggregate(movement.ID(), movement)
	return nil
}
