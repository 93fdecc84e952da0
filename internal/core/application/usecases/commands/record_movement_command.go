package commands

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var ErrRecordMovementCommandIsNotConstructed = errors.New(
	"RecordMovementCommand must be created via NewRecordMovementCommand constructor",
)

// RecordMovementCommand represents a request to append an entry to a
// warehouse's stock log. Quantity is signed: positive for stock in,
// negative for stock out.
type RecordMovementCommand struct { //nolint:recvcheck //using for validation
	movementID  kernel.UUID
	warehouseID kernel.UUID
	productID   kernel.UUID
	employeeID  kernel.UUID
	quantity    int
	recordedAt  time.Time

	guard kernel.ConstructorGuard
}

// NewRecordMovementCommand creates a command to record a stock movement.
// Quantity must be non-zero. A zero recordedAt means the movement is
// stamped when it is handled.
func NewRecordMovementCommand(
	movementID, warehouseID, productID, employeeID kernel.UUID,
	quantity int,
	recordedAt time.Time,
) (RecordMovementCommand, error) {
	cmd := RecordMovementCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMovementID(movementID),
		cmd.setWarehouseID(warehouseID),
		cmd.setProductID(productID),
		cmd.setEmployeeID(employeeID),
		cmd.setQuantity(quantity),
	); err != nil {
		return RecordMovementCommand{}, err
	}

	cmd.recordedAt = recordedAt

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordMovementCommand) Validate() error {
	return c.guard.Validate(ErrRecordMovementCommandIsNotConstructed)
}

// MovementID returns the unique identifier for the movement.
func (c RecordMovementCommand) MovementID() kernel.UUID {
	return c.movementID
}

// WarehouseID returns the warehouse whose stock changed.
func (c RecordMovementCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

// ProductID returns the product that moved.
func (c RecordMovementCommand) ProductID() kernel.UUID {
	return c.productID
}

// EmployeeID returns the employee recording the movement.
func (c RecordMovementCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

// Quantity returns the signed number of units moved.
func (c RecordMovementCommand) Quantity() int {
	return c.quantity
}

// RecordedAt returns the supplied movement timestamp, zero when the
// handler should stamp it.
func (c RecordMovementCommand) RecordedAt() time.Time {
	return c.recordedAt
}

func (c *RecordMovementCommand) setMovementID(movementID kernel.UUID) error {
	if err := movementID.Validate(); err != nil {
		return err
	}

	c.movementID = movementID
	return nil
}

func (c *RecordMovementCommand) setWarehouseID(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}

	c.warehouseID = warehouseID
	return nil
}

func (c *RecordMovementCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *RecordMovementCommand) setEmployeeID(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return err
	}

	c.employeeID = employeeID
	return nil
}

func (c *RecordMovementCommand) setQuantity(quantity int) error {
	if quantity == 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("must be non-zero: positive for stock in, negative for stock out"))
	}

	c.quantity = quantity
	return nil
}
