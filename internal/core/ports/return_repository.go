package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/returns"
)

// ReturnRepository defines the persistence contract for return aggregates.
type ReturnRepository interface {
	// Add persists a new return with its lines.
	// The return must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *returns.Return) error

	// Update persists state changes to an existing return.
	// Lines are immutable after creation and are not touched.
	Update(ctx context.Context, aggregate *returns.Return) error

	// Get retrieves a return by its unique identifier, lines included.
	Get(ctx context.Context, id kernel.UUID) (*returns.Return, error)
}
