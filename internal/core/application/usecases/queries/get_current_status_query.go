package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
)

var ErrGetCurrentStatusQueryIsNotConstructed = errors.New(
	"GetCurrentStatusQuery must be created via NewGetCurrentStatusQuery constructor",
)

// GetCurrentStatusQuery retrieves the latest status record of a shipment.
type GetCurrentStatusQuery struct {
	shipmentID kernel.UUID

	guard kernel.ConstructorGuard
}

// NewGetCurrentStatusQuery creates a query for a shipment's current status.
func NewGetCurrentStatusQuery(shipmentID kernel.UUID) (GetCurrentStatusQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetCurrentStatusQuery{}, err
	}

	return GetCurrentStatusQuery{
		shipmentID: shipmentID,
		guard:      kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCurrentStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetCurrentStatusQueryIsNotConstructed)
}

// ShipmentID returns the shipment whose status is being read.
func (q GetCurrentStatusQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}
