package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"logistics/internal/pkg/errs"
)

// GetCurrentStatusQueryHandler reads the latest status record of a shipment.
type GetCurrentStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetCurrentStatusQueryHandler creates a handler for current status
// lookups. Requires a GORM database connection for query execution.
func NewGetCurrentStatusQueryHandler(db *gorm.DB) GetCurrentStatusQueryHandler {
	return GetCurrentStatusQueryHandler{db: db}
}

// Handle executes the current status lookup.
// Returns ObjectNotFound when the shipment has no history, which also
// covers unknown shipments (every shipment is created with its initial
// pending record).
func (h GetCurrentStatusQueryHandler) Handle(
	ctx context.Context,
	query GetCurrentStatusQuery,
) (StatusRecordResponse, error) {
	if err := query.Validate(); err != nil {
		return StatusRecordResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			shipment_id,
			status,
			description,
			employee_id,
			recorded_at
		FROM shipment_statuses
		WHERE shipment_id = ?
		ORDER BY recorded_at DESC, seq DESC
		LIMIT 1
	`, query.ShipmentID().Bytes()).Row()

	record, err := scanStatusRecordRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return StatusRecordResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"shipmentId", query.ShipmentID(), err)
	}
	if err != nil {
		return StatusRecordResponse{}, err
	}

	return record, nil
}
