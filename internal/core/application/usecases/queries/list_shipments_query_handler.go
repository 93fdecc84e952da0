package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListShipmentsQueryHandler reads pages of shipments from the database.
type ListShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewListShipmentsQueryHandler creates a handler for shipment listings.
// Requires a GORM database connection for query execution.
func NewListShipmentsQueryHandler(db *gorm.DB) ListShipmentsQueryHandler {
	return ListShipmentsQueryHandler{db: db}
}

// Handle executes the listing, newest ship dates first.
func (h ListShipmentsQueryHandler) Handle(
	ctx context.Context,
	query ListShipmentsQuery,
) ([]ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shipments := make([]ShipmentResponse, 0, query.Limit())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			address_id,
			method_id,
			tracking_code,
			ship_date,
			estimated_delivery_date
		FROM shipments
		ORDER BY ship_date DESC, id
		OFFSET ? LIMIT ?
	`, query.Offset(), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		response, scanErr := scanShipmentRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		shipments = append(shipments, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
