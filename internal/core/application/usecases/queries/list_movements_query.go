package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
)

var ErrListMovementsQueryIsNotConstructed = errors.New(
	"ListMovementsQuery must be created via NewListMovementsQuery constructor",
)

// ListMovementsQuery retrieves a page of a warehouse's stock log,
// newest entries first.
type ListMovementsQuery struct {
	warehouseID kernel.UUID
	offset      int
	limit       int

	guard kernel.ConstructorGuard
}

// NewListMovementsQuery creates a paginated stock log query for one
// warehouse. A zero limit selects the default page size.
func NewListMovementsQuery(warehouseID kernel.UUID, offset, limit int) (ListMovementsQuery, error) {
	if err := warehouseID.Validate(); err != nil {
		return ListMovementsQuery{}, err
	}

	offset, limit, err := normalizePage(offset, limit)
	if err != nil {
		return ListMovementsQuery{}, err
	}

	return ListMovementsQuery{
		warehouseID: warehouseID,
		offset:      offset,
		limit:       limit,
		guard:       kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListMovementsQuery) Validate() error {
	return q.guard.Validate(ErrListMovementsQueryIsNotConstructed)
}

// WarehouseID returns the warehouse whose stock log is being read.
func (q ListMovementsQuery) WarehouseID() kernel.UUID {
	return q.warehouseID
}

// Offset returns the number of rows to skip.
func (q ListMovementsQuery) Offset() int {
	return q.offset
}

// Limit returns the page size.
func (q ListMovementsQuery) Limit() int {
	return q.limit
}

// MovementResponse represents a stock log entry in the read model.
type MovementResponse struct {
	ID          kernel.UUID
	WarehouseID kernel.UUID
	ProductID   kernel.UUID
	EmployeeID  kernel.UUID
	Quantity    int
	RecordedAt  time.Time
}
