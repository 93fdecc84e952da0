package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/returns"
)

var ErrListReturnsQueryIsNotConstructed = errors.New(
	"ListReturnsQuery must be created via NewListReturnsQuery constructor",
)

// ListReturnsQuery retrieves a page of returns, newest first.
type ListReturnsQuery struct {
	offset int
	limit  int

	guard kernel.ConstructorGuard
}

// NewListReturnsQuery creates a paginated return listing query.
// A zero limit selects the default page size.
func NewListReturnsQuery(offset, limit int) (ListReturnsQuery, error) {
	offset, limit, err := normalizePage(offset, limit)
	if err != nil {
		return ListReturnsQuery{}, err
	}

	return ListReturnsQuery{
		offset: offset,
		limit:  limit,
		guard:  kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListReturnsQuery) Validate() error {
	return q.guard.Validate(ErrListReturnsQueryIsNotConstructed)
}

// Offset returns the number of rows to skip.
func (q ListReturnsQuery) Offset() int {
	return q.offset
}

// Limit returns the page size.
func (q ListReturnsQuery) Limit() int {
	return q.limit
}

// ReturnSummaryResponse represents a return in listings, without its lines.
// Use GetReturnQuery for the full view.
type ReturnSummaryResponse struct {
	ID         kernel.UUID
	ShipmentID kernel.UUID
	Reason     string
	State      returns.State
	CreatedAt  time.Time
}
