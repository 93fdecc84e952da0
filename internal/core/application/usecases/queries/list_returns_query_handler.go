package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/returns"
)

// ListReturnsQueryHandler reads pages of returns.
type ListReturnsQueryHandler struct {
	db *gorm.DB
}

// NewListReturnsQueryHandler creates a handler for return listings.
// Requires a GORM database connection for query execution.
func NewListReturnsQueryHandler(db *gorm.DB) ListReturnsQueryHandler {
	return ListReturnsQueryHandler{db: db}
}

// Handle executes the listing, newest returns first.
func (h ListReturnsQueryHandler) Handle(
	ctx context.Context,
	query ListReturnsQuery,
) ([]ReturnSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	summaries := make([]ReturnSummaryResponse, 0, query.Limit())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			shipment_id,
			reason,
			state,
			created_at
		FROM returns
		ORDER BY created_at DESC, id
		OFFSET ? LIMIT ?
	`, query.Offset(), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var summary ReturnSummaryResponse
		var id, shipmentID uuid.UUID
		var state string

		err = rows.Scan(&id, &shipmentID, &summary.Reason, &state, &summary.CreatedAt)
		if err != nil {
			return nil, err
		}

		if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if summary.ShipmentID, err = kernel.UUIDFromBytes(shipmentID[:]); err != nil {
			return nil, err
		}
		if summary.State, err = returns.StateFromString(state); err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
