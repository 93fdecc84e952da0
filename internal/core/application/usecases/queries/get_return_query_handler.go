package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/returns"
	"logistics/internal/pkg/errs"
)

// GetReturnQueryHandler reads a return and its lines from the database.
type GetReturnQueryHandler struct {
	db *gorm.DB
}

// NewGetReturnQueryHandler creates a handler for return lookups.
// Requires a GORM database connection for query execution.
func NewGetReturnQueryHandler(db *gorm.DB) GetReturnQueryHandler {
	return GetReturnQueryHandler{db: db}
}

// Handle executes the return lookup.
// Returns ObjectNotFound when no return matches the identifier.
func (h GetReturnQueryHandler) Handle(
	ctx context.Context,
	query GetReturnQuery,
) (ReturnResponse, error) {
	if err := query.Validate(); err != nil {
		return ReturnResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			shipment_id,
			reason,
			state,
			created_at
		FROM returns
		WHERE id = ?
	`, query.ReturnID().Bytes()).Row()

	var response ReturnResponse
	var id, shipmentID uuid.UUID
	var state string

	err := row.Scan(&id, &shipmentID, &response.Reason, &state, &response.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ReturnResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"returnId", query.ReturnID(), err)
	}
	if err != nil {
		return ReturnResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return ReturnResponse{}, err
	}
	if response.ShipmentID, err = kernel.UUIDFromBytes(shipmentID[:]); err != nil {
		return ReturnResponse{}, err
	}
	if response.State, err = returns.StateFromString(state); err != nil {
		return ReturnResponse{}, err
	}

	if response.Lines, err = h.lines(ctx, query.ReturnID()); err != nil {
		return ReturnResponse{}, err
	}

	return response, nil
}

func (h GetReturnQueryHandler) lines(ctx context.Context, returnID kernel.UUID) ([]ReturnLineResponse, error) {
	lines := make([]ReturnLineResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			quantity
		FROM return_lines
		WHERE return_id = ?
		ORDER BY seq
	`, returnID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line ReturnLineResponse
		var productID uuid.UUID

		if err = rows.Scan(&productID, &line.Quantity); err != nil {
			return nil, err
		}

		if line.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
