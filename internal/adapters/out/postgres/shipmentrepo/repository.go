package shipmentrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"logistics/internal/adapters/out/postgres/pgerr"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
)

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipment to the database. A duplicate tracking code
// surfaces as a unique violation error.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate("shipments.add", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a shipment by ID. Inside a transaction the shipment row
// is locked until commit. History appends serialize on this parent-row
// lock: locking the latest status record cannot block a concurrent
// insert, locking the shipment can.
func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id.String())
		}
		return nil, pgerr.Translate("shipments.get", err)
	}

	return toDomain(dto)
}

// AppendStatus appends a record to the shipment's status history.
// Records are insert-only; nothing in the history is ever updated.
func (r *GormShipmentRepository) AppendStatus(ctx context.Context, record *shipment.StatusRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := recordFromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate("shipment_statuses.append", err)
	}

	return nil
}

// GetCurrentStatus retrieves the latest status record of a shipment.
// The insertion sequence breaks ties between records sharing a timestamp.
func (r *GormShipmentRepository) GetCurrentStatus(ctx context.Context, shipmentID kernel.UUID) (*shipment.StatusRecord, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dto StatusRecordDTO
	err := r.db.WithContext(ctx).
		Where("shipment_id = ?", shipmentID.Bytes()).
		Order("recorded_at DESC, seq DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", shipmentID.String())
		}
		return nil, pgerr.Translate("shipment_statuses.current", err)
	}

	return recordToDomain(dto)
}

// ListStatusHistory retrieves a shipment's status history, oldest first.
func (r *GormShipmentRepository) ListStatusHistory(ctx context.Context, shipmentID kernel.UUID) ([]*shipment.StatusRecord, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dtos []StatusRecordDTO
	err := r.db.WithContext(ctx).
		Where("shipment_id = ?", shipmentID.Bytes()).
		Order("recorded_at, seq").
		Find(&dtos).Error
	if err != nil {
		return nil, pgerr.Translate("shipment_statuses.list", err)
	}

	records := make([]*shipment.StatusRecord, 0, len(dtos))
	for _, dto := range dtos {
		record, err := recordToDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}
