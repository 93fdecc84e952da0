package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// GetShipmentQueryHandler retrieves shipment details from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetShipmentQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentQueryHandler creates a handler for shipment lookups.
// Requires a GORM database connection for query execution.
func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

// Handle executes the shipment lookup.
// Returns ObjectNotFound when no shipment matches the identifier.
func (h GetShipmentQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentQuery,
) (ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return ShipmentResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			address_id,
			method_id,
			tracking_code,
			ship_date,
			estimated_delivery_date
		FROM shipments
		WHERE id = ?
	`, query.ShipmentID().Bytes()).Row()

	response, err := scanShipmentRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return ShipmentResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"shipmentId", query.ShipmentID(), err)
	}
	if err != nil {
		return ShipmentResponse{}, err
	}

	return response, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanShipmentRow(row rowScanner) (ShipmentResponse, error) {
	var response ShipmentResponse
	var id, orderID, addressID, methodID uuid.UUID

	err := row.Scan(
		&id,
		&orderID,
		&addressID,
		&methodID,
		&response.TrackingCode,
		&response.ShipDate,
		&response.EstimatedDeliveryDate,
	)
	if err != nil {
		return ShipmentResponse{}, err
	}

	for dst, src := range map[*kernel.UUID]uuid.UUID{
		&response.ID:        id,
		&response.OrderID:   orderID,
		&response.AddressID: addressID,
		&response.MethodID:  methodID,
	} {
		converted, convErr := kernel.UUIDFromBytes(src[:])
		if convErr != nil {
			return ShipmentResponse{}, convErr
		}
		*dst = converted
	}

	return response, nil
}
