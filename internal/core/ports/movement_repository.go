package ports

import (
	"context"

	"logistics/internal/core/domain/model/stocklog"
)

// MovementRepository defines the persistence contract for the warehouse
// stock log. The log is append-only.
type MovementRepository interface {
	// Append persists a new stock movement.
	Append(ctx context.Context, movement *stocklog.Movement) error
}
