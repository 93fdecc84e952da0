package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
)

// ListOverdueShipmentsQueryHandler finds shipments whose estimated delivery
// date has passed while their latest status record is still pending or in
// transit. Delivered and returned shipments are never overdue.
type ListOverdueShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewListOverdueShipmentsQueryHandler creates a handler for overdue
// shipment queries. Requires a GORM database connection.
func NewListOverdueShipmentsQueryHandler(db *gorm.DB) ListOverdueShipmentsQueryHandler {
	return ListOverdueShipmentsQueryHandler{db: db}
}

// Handle executes the overdue shipment query, most overdue first.
func (h ListOverdueShipmentsQueryHandler) Handle(
	ctx context.Context,
	query ListOverdueShipmentsQuery,
) ([]OverdueShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	overdue := make([]OverdueShipmentResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.tracking_code,
			s.estimated_delivery_date,
			cur.status
		FROM shipments s
		JOIN LATERAL (
			SELECT status
			FROM shipment_statuses
			WHERE shipment_id = s.id
			ORDER BY recorded_at DESC, seq DESC
			LIMIT 1
		) cur ON true
		WHERE s.estimated_delivery_date < ?
		  AND cur.status IN (?, ?)
		ORDER BY s.estimated_delivery_date, s.id
	`, query.AsOf(),
		shipment.StatusPending.String(),
		shipment.StatusInTransit.String(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response OverdueShipmentResponse
		var id uuid.UUID
		var status string

		err = rows.Scan(&id, &response.TrackingCode, &response.EstimatedDeliveryDate, &status)
		if err != nil {
			return nil, err
		}

		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if response.Status, err = shipment.StatusFromString(status); err != nil {
			return nil, err
		}
		overdue = append(overdue, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return overdue, nil
}
