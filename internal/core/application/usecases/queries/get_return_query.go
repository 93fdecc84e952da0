package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/returns"
)

var ErrGetReturnQueryIsNotConstructed = errors.New(
	"GetReturnQuery must be created via NewGetReturnQuery constructor",
)

// GetReturnQuery retrieves a return with its lines.
type GetReturnQuery struct {
	returnID kernel.UUID

	guard kernel.ConstructorGuard
}

// NewGetReturnQuery creates a query for a return by identifier.
func NewGetReturnQuery(returnID kernel.UUID) (GetReturnQuery, error) {
	if err := returnID.Validate(); err != nil {
		return GetReturnQuery{}, err
	}

	return GetReturnQuery{
		returnID: returnID,
		guard:    kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetReturnQuery) Validate() error {
	return q.guard.Validate(ErrGetReturnQueryIsNotConstructed)
}

// ReturnID returns the return being looked up.
func (q GetReturnQuery) ReturnID() kernel.UUID {
	return q.returnID
}

// ReturnLineResponse represents one returned product line in the read model.
type ReturnLineResponse struct {
	ProductID kernel.UUID
	Quantity  int
}

// ReturnResponse represents a return with its lines in the read model.
type ReturnResponse struct {
	ID         kernel.UUID
	ShipmentID kernel.UUID
	Reason     string
	State      returns.State
	CreatedAt  time.Time
	Lines      []ReturnLineResponse
}
