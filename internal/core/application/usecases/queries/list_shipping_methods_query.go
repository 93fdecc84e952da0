package queries

import (
	"errors"

	"github.com/shopspring/decimal"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shippingmethod"
)

var ErrListShippingMethodsQueryIsNotConstructed = errors.New(
	"ListShippingMethodsQuery must be created via NewListShippingMethodsQuery constructor",
)

// ListShippingMethodsQuery retrieves a page of shipping methods.
type ListShippingMethodsQuery struct {
	offset int
	limit  int

	guard kernel.ConstructorGuard
}

// NewListShippingMethodsQuery creates a paginated shipping method listing
// query. A zero limit selects the default page size.
func NewListShippingMethodsQuery(offset, limit int) (ListShippingMethodsQuery, error) {
	offset, limit, err := normalizePage(offset, limit)
	if err != nil {
		return ListShippingMethodsQuery{}, err
	}

	return ListShippingMethodsQuery{
		offset: offset,
		limit:  limit,
		guard:  kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListShippingMethodsQuery) Validate() error {
	return q.guard.Validate(ErrListShippingMethodsQueryIsNotConstructed)
}

// Offset returns the number of rows to skip.
func (q ListShippingMethodsQuery) Offset() int {
	return q.offset
}

// Limit returns the page size.
func (q ListShippingMethodsQuery) Limit() int {
	return q.limit
}

// MethodResponse represents a shipping method in the read model.
type MethodResponse struct {
	ID            kernel.UUID
	Kind          shippingmethod.Kind
	Description   string
	EstimatedDays int
	Cost          decimal.Decimal
}
