// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models built from raw SQL.
package queries

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

const (
	defaultLimit = 100
	maxLimit     = 500
)

// normalizePage validates offset/limit pagination parameters.
// A zero limit selects the default page size.
func normalizePage(offset, limit int) (int, int, error) {
	if offset < 0 {
		return 0, 0, errs.NewValueIsInvalidErrorWithCause("offset",
			fmt.Errorf("must not be negative, got %d", offset))
	}
	if limit == 0 {
		limit = defaultLimit
	}
	if limit < 0 || limit > maxLimit {
		return 0, 0, errs.NewValueIsInvalidErrorWithCause("limit",
			fmt.Errorf("must be between 1 and %d, got %d", maxLimit, limit))
	}

	return offset, limit, nil
}
