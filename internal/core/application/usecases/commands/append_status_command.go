package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
)

var ErrAppendStatusCommandIsNotConstructed = errors.New(
	"AppendStatusCommand must be created via NewAppendStatusCommand constructor",
)

// AppendStatusCommand represents a request to append an entry to a
// shipment's status history. The employee is optional: operator-driven
// updates carry one, system-generated entries do not.
type AppendStatusCommand struct { //nolint:recvcheck //using for validation
	shipmentID  kernel.UUID
	status      shipment.Status
	description string
	employeeID  *kernel.UUID

	guard kernel.ConstructorGuard
}

// NewAppendStatusCommand creates a command to append a status record.
// The target status must be a valid shipment status; whether the edge from
// the current status is legal is decided by the handler against storage.
func NewAppendStatusCommand(
	shipmentID kernel.UUID,
	status shipment.Status,
	description string,
	employeeID *kernel.UUID,
) (AppendStatusCommand, error) {
	cmd := AppendStatusCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setStatus(status),
		cmd.setEmployeeID(employeeID),
	); err != nil {
		return AppendStatusCommand{}, err
	}

	cmd.description = description
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AppendStatusCommand) Validate() error {
	return c.guard.Validate(ErrAppendStatusCommandIsNotConstructed)
}

// ShipmentID returns the shipment whose history is being extended.
func (c AppendStatusCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Status returns the status to append.
func (c AppendStatusCommand) Status() shipment.Status {
	return c.status
}

// Description returns the free-form note, possibly empty.
func (c AppendStatusCommand) Description() string {
	return c.description
}

// EmployeeID returns the recording employee, nil for system entries.
func (c AppendStatusCommand) EmployeeID() *kernel.UUID {
	return c.employeeID
}

func (c *AppendStatusCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *AppendStatusCommand) setStatus(status shipment.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *AppendStatusCommand) setEmployeeID(employeeID *kernel.UUID) error {
	if employeeID != nil {
		if err := employeeID.Validate(); err != nil {
			return err
		}
	}

	c.employeeID = employeeID
	return nil
}
