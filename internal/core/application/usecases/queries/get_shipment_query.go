package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
)

var ErrGetShipmentQueryIsNotConstructed = errors.New(
	"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
)

// GetShipmentQuery retrieves a single shipment by its identifier.
//
// Example:
//
//	query, err := NewGetShipmentQuery(shipmentID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetShipmentQueryHandler(db)
//	shipment, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // no such shipment
//	}
type GetShipmentQuery struct {
	shipmentID kernel.UUID

	guard kernel.ConstructorGuard
}

// NewGetShipmentQuery creates a query for a shipment by identifier.
func NewGetShipmentQuery(shipmentID kernel.UUID) (GetShipmentQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetShipmentQuery{}, err
	}

	return GetShipmentQuery{
		shipmentID: shipmentID,
		guard:      kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

// ShipmentID returns the shipment being looked up.
func (q GetShipmentQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

// ShipmentResponse represents a shipment in the read model.
type ShipmentResponse struct {
	ID                    kernel.UUID
	OrderID               kernel.UUID
	AddressID             kernel.UUID
	MethodID              kernel.UUID
	TrackingCode          string
	ShipDate              time.Time
	EstimatedDeliveryDate time.Time
}
