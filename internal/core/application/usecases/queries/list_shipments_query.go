package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
)

var ErrListShipmentsQueryIsNotConstructed = errors.New(
	"ListShipmentsQuery must be created via NewListShipmentsQuery constructor",
)

// ListShipmentsQuery retrieves a page of shipments ordered by ship date,
// newest first.
type ListShipmentsQuery struct {
	offset int
	limit  int

	guard kernel.ConstructorGuard
}

// NewListShipmentsQuery creates a paginated shipment listing query.
// A zero limit selects the default page size.
func NewListShipmentsQuery(offset, limit int) (ListShipmentsQuery, error) {
	offset, limit, err := normalizePage(offset, limit)
	if err != nil {
		return ListShipmentsQuery{}, err
	}

	return ListShipmentsQuery{
		offset: offset,
		limit:  limit,
		guard:  kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentsQueryIsNotConstructed)
}

// Offset returns the number of rows to skip.
func (q ListShipmentsQuery) Offset() int {
	return q.offset
}

// Limit returns the page size.
func (q ListShipmentsQuery) Limit() int {
	return q.limit
}
