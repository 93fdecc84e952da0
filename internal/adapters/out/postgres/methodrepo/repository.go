package methodrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"logistics/internal/adapters/out/postgres/pgerr"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shippingmethod"
	"logistics/internal/pkg/errs"
)

// GormMethodRepository implements MethodRepository using GORM.
type GormMethodRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMethodRepository creates a new GORM shipping method repository.
func NewGormMethodRepository(db *gorm.DB, tracker aggregateTracker) *GormMethodRepository {
	return &GormMethodRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipping method to the database.
func (r *GormMethodRepository) Add(ctx context.Context, aggregate *shippingmethod.Method) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate("shipping_methods.add", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a shipping method by ID.
func (r *GormMethodRepository) Get(ctx context.Context, id kernel.UUID) (*shippingmethod.Method, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MethodDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shippingMethod", id.String())
		}
		return nil, pgerr.Translate("shipping_methods.get", err)
	}

	return toDomain(dto)
}
