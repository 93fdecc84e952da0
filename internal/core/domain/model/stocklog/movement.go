// Package stocklog contains the warehouse stock movement log. Each Movement
// is an append-only record of units entering (positive quantity) or leaving
// (negative quantity) a warehouse, attributed to the employee who recorded it.
package stocklog

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ErrMovementIsNotConstructed is returned when a Movement was created
// via the default constructor instead of NewMovement or RestoreMovement.
var ErrMovementIsNotConstructed = errors.New("movement is not constructed")

// Movement is a single entry in a warehouse's stock log. Immutable once
// recorded.
type Movement struct {
	guard kernel.ConstructorGuard

	id          kernel.UUID
	warehouseID kernel.UUID
	productID   kernel.UUID
	employeeID  kernel.UUID
	quantity    int
	recordedAt  time.Time
}

// NewMovement records a stock movement. Quantity is signed: positive for
// stock entering the warehouse, negative for stock leaving. Zero is rejected
// because it records nothing.
func NewMovement(
	id kernel.UUID,
	warehouseID kernel.UUID,
	productID kernel.UUID,
	employeeID kernel.UUID,
	quantity int,
	recordedAt time.Time,
) (*Movement, error) {
	if err := errors.Join(
		id.Validate(),
		warehouseID.Validate(),
		productID.Validate(),
		employeeID.Validate(),
		validateQuantity(quantity),
		validateRecordedAt(recordedAt),
	); err != nil {
		return nil, err
	}

	return &Movement{
		guard: kernel.NewConstructorGuard(),

		id:          id,
		warehouseID: warehouseID,
		productID:   productID,
		employeeID:  employeeID,
		quantity:    quantity,
		recordedAt:  recordedAt,
	}, nil
}

// RestoreMovement reconstructs a Movement from storage.
// Used by repositories only.
func RestoreMovement(
	id kernel.UUID,
	warehouseID kernel.UUID,
	productID kernel.UUID,
	employeeID kernel.UUID,
	quantity int,
	recordedAt time.Time,
) (*Movement, error) {
	return NewMovement(id, warehouseID, productID, employeeID, quantity, recordedAt)
}

func validateQuantity(quantity int) error {
	if quantity == 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("must be non-zero: positive for stock in, negative for stock out"))
	}
	return nil
}

func validateRecordedAt(recordedAt time.Time) error {
	if recordedAt.IsZero() {
		return errs.NewValueIsRequiredError("recordedAt")
	}
	return nil
}

// Validate checks that the Movement was properly constructed.
func (m *Movement) Validate() error {
	if m == nil {
		return ErrMovementIsNotConstructed
	}
	return m.guard.Validate(ErrMovementIsNotConstructed)
}

// ID returns the movement's identifier.
func (m *Movement) ID() kernel.UUID {
	return m.id
}

// WarehouseID returns the warehouse whose stock changed.
func (m *Movement) WarehouseID() kernel.UUID {
	return m.warehouseID
}

// ProductID returns the product that moved.
func (m *Movement) ProductID() kernel.UUID {
	return m.productID
}

// EmployeeID returns the employee who recorded the movement.
func (m *Movement) EmployeeID() kernel.UUID {
	return m.employeeID
}

// Quantity returns the signed number of units moved.
func (m *Movement) Quantity() int {
	return m.quantity
}

// RecordedAt returns when the movement was recorded.
func (m *Movement) RecordedAt() time.Time {
	return m.recordedAt
}

// IsEqual compares two movements by identity.
func (m *Movement) IsEqual(other *Movement) bool {
	if other == nil {
		return false
	}
	return m.id.IsEqual(other.id)
}
