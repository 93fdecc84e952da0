package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shippingmethod"
)

// MethodRepository defines the persistence contract for shipping methods.
type MethodRepository interface {
	// Add persists a new shipping method.
	Add(ctx context.Context, method *shippingmethod.Method) error

	// Get retrieves a shipping method by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*shippingmethod.Method, error)
}
