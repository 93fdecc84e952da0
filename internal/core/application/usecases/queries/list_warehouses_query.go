package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/warehouse"
)

var ErrListWarehousesQueryIsNotConstructed = errors.New(
	"ListWarehousesQuery must be created via NewListWarehousesQuery constructor",
)

// ListWarehousesQuery retrieves a page of warehouses.
type ListWarehousesQuery struct {
	offset int
	limit  int

	guard kernel.ConstructorGuard
}

// NewListWarehousesQuery creates a paginated warehouse listing query.
// A zero limit selects the default page size.
func NewListWarehousesQuery(offset, limit int) (ListWarehousesQuery, error) {
	offset, limit, err := normalizePage(offset, limit)
	if err != nil {
		return ListWarehousesQuery{}, err
	}

	return ListWarehousesQuery{
		offset: offset,
		limit:  limit,
		guard:  kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListWarehousesQuery) Validate() error {
	return q.guard.Validate(ErrListWarehousesQueryIsNotConstructed)
}

// Offset returns the number of rows to skip.
func (q ListWarehousesQuery) Offset() int {
	return q.offset
}

// Limit returns the page size.
func (q ListWarehousesQuery) Limit() int {
	return q.limit
}

// WarehouseResponse represents a warehouse in the read model.
type WarehouseResponse struct {
	ID      kernel.UUID
	Address string
	Kind    warehouse.Kind
}
