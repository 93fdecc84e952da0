package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
)

// GetShipmentHistoryQueryHandler reads a shipment's status timeline from
// the database. The sequence column breaks ties between records that share
// a timestamp, so the order matches insertion order.
type GetShipmentHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentHistoryQueryHandler creates a handler for history queries.
// Requires a GORM database connection for query execution.
func NewGetShipmentHistoryQueryHandler(db *gorm.DB) GetShipmentHistoryQueryHandler {
	return GetShipmentHistoryQueryHandler{db: db}
}

// Handle executes the history query, returning entries oldest first.
// An unknown shipment yields an empty slice, not an error: history is a
// projection and absence of rows is a valid read.
func (h GetShipmentHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentHistoryQuery,
) ([]StatusRecordResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	records := make([]StatusRecordResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			shipment_id,
			status,
			description,
			employee_id,
			recorded_at
		FROM shipment_statuses
		WHERE shipment_id = ?
		ORDER BY recorded_at, seq
	`, query.ShipmentID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		record, scanErr := scanStatusRecordRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func scanStatusRecordRow(row rowScanner) (StatusRecordResponse, error) {
	var record StatusRecordResponse
	var id, shipmentID uuid.UUID
	var employeeID *uuid.UUID
	var status string

	err := row.Scan(
		&id,
		&shipmentID,
		&status,
		&record.Description,
		&employeeID,
		&record.RecordedAt,
	)
	if err != nil {
		return StatusRecordResponse{}, err
	}

	if record.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return StatusRecordResponse{}, err
	}
	if record.ShipmentID, err = kernel.UUIDFromBytes(shipmentID[:]); err != nil {
		return StatusRecordResponse{}, err
	}
	if employeeID != nil {
		converted, convErr := kernel.UUIDFromBytes((*employeeID)[:])
		if convErr != nil {
			return StatusRecordResponse{}, convErr
		}
		record.EmployeeID = &converted
	}
	if record.Status, err = shipment.StatusFromString(status); err != nil {
		return StatusRecordResponse{}, err
	}

	return record, nil
}
