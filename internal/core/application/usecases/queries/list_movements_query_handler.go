package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"logistics/internal/core/domain/model/kernel"
)

// ListMovementsQueryHandler reads pages of a warehouse's stock log.
type ListMovementsQueryHandler struct {
	db *gorm.DB
}

// NewListMovementsQueryHandler creates a handler for stock log listings.
// Requires a GORM database connection for query execution.
func NewListMovementsQueryHandler(db *gorm.DB) ListMovementsQueryHandler {
	return ListMovementsQueryHandler{db: db}
}

// Handle executes the listing, newest entries first.
// An unknown warehouse yields an empty slice.
func (h ListMovementsQueryHandler) Handle(
	ctx context.Context,
	query ListMovementsQuery,
) ([]MovementResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	movements := make([]MovementResponse, 0, query.Limit())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			warehouse_id,
			product_id,
			employee_id,
			quantity,
			recorded_at
		FROM stock_movements
		WHERE warehouse_id = ?
		ORDER BY recorded_at DESC, id
		OFFSET ? LIMIT ?
	`, query.WarehouseID().Bytes(), query.Offset(), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response MovementResponse
		var id, warehouseID, productID, employeeID uuid.UUID

		err = rows.Scan(
			&id,
			&warehouseID,
			&productID,
			&employeeID,
			&response.Quantity,
			&response.RecordedAt,
		)
		if err != nil {
			return nil, err
		}

		for dst, src := range map[*kernel.UUID]uuid.UUID{
			&response.ID:          id,
			&response.WarehouseID: warehouseID,
			&response.ProductID:   productID,
			&response.EmployeeID:  employeeID,
		} {
			converted, convErr := kernel.UUIDFromBytes(src[:])
			if convErr != nil {
				return nil, convErr
			}
			*dst = converted
		}
		movements = append(movements, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return movements, nil
}
