package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
)

var ErrListOverdueShipmentsQueryIsNotConstructed = errors.New(
	"ListOverdueShipmentsQuery must be created via NewListOverdueShipmentsQuery constructor",
)

// ListOverdueShipmentsQuery retrieves shipments past their estimated
// delivery date whose current status is still pending or in transit.
// Feeds the overdue shipment watcher job.
type ListOverdueShipmentsQuery struct {
	asOf time.Time

	guard kernel.ConstructorGuard
}

// NewListOverdueShipmentsQuery creates an overdue shipment query evaluated
// against the given instant.
func NewListOverdueShipmentsQuery(asOf time.Time) (ListOverdueShipmentsQuery, error) {
	if asOf.IsZero() {
		return ListOverdueShipmentsQuery{}, errs.NewValueIsRequiredError("asOf")
	}

	return ListOverdueShipmentsQuery{
		asOf:  asOf,
		guard: kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOverdueShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListOverdueShipmentsQueryIsNotConstructed)
}

// AsOf returns the instant overdueness is evaluated against.
func (q ListOverdueShipmentsQuery) AsOf() time.Time {
	return q.asOf
}

// OverdueShipmentResponse represents an overdue shipment in the read model.
type OverdueShipmentResponse struct {
	ID                    kernel.UUID
	TrackingCode          string
	EstimatedDeliveryDate time.Time
	Status                shipment.Status
}
