package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
)

var ErrGetShipmentHistoryQueryIsNotConstructed = errors.New(
	"GetShipmentHistoryQuery must be created via NewGetShipmentHistoryQuery constructor",
)

// GetShipmentHistoryQuery retrieves a shipment's full status history,
// oldest first.
type GetShipmentHistoryQuery struct {
	shipmentID kernel.UUID

	guard kernel.ConstructorGuard
}

// NewGetShipmentHistoryQuery creates a query for a shipment's status history.
func NewGetShipmentHistoryQuery(shipmentID kernel.UUID) (GetShipmentHistoryQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetShipmentHistoryQuery{}, err
	}

	return GetShipmentHistoryQuery{
		shipmentID: shipmentID,
		guard:      kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentHistoryQueryIsNotConstructed)
}

// ShipmentID returns the shipment whose history is being read.
func (q GetShipmentHistoryQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

// StatusRecordResponse represents one status history entry in the read model.
// EmployeeID is nil for system-generated entries.
type StatusRecordResponse struct {
	ID          kernel.UUID
	ShipmentID  kernel.UUID
	Status      shipment.Status
	Description string
	EmployeeID  *kernel.UUID
	RecordedAt  time.Time
}
