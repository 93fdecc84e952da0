// Package ports defines repository interfaces for the logistics domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates
// and their append-only status history.
type ShipmentRepository interface {
	// Add persists a new shipment.
	// The shipment must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// AppendStatus appends a record to the shipment's status history.
	// History is append-only: records are never updated or removed.
	AppendStatus(ctx context.Context, record *shipment.StatusRecord) error

	// GetCurrentStatus retrieves the latest status record of a shipment.
	// Returns ObjectNotFound when the shipment has no history.
	GetCurrentStatus(ctx context.Context, shipmentID kernel.UUID) (*shipment.StatusRecord, error)

	// ListStatusHistory retrieves the shipment's full status history in
	// chronological order, oldest first.
	ListStatusHistory(ctx context.Context, shipmentID kernel.UUID) ([]*shipment.StatusRecord, error)
}
