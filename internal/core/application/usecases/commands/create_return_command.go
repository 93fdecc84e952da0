package commands

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/returns"
	"logistics/internal/pkg/errs"
)

var ErrCreateReturnCommandIsNotConstructed = errors.New(
	"CreateReturnCommand must be created via NewCreateReturnCommand constructor",
)

// CreateReturnCommand represents a request to register a return against a
// shipment, with the product lines being sent back.
type CreateReturnCommand struct { //nolint:recvcheck //using for validation
	returnID   kernel.UUID
	shipmentID kernel.UUID
	reason     string
	lines      []returns.Line

	guard kernel.ConstructorGuard
}

// NewCreateReturnCommand creates a command to register a return.
// Requires a non-empty reason and at least one line.
func NewCreateReturnCommand(
	returnID, shipmentID kernel.UUID,
	reason string,
	lines []returns.Line,
) (CreateReturnCommand, error) {
	cmd := CreateReturnCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReturnID(returnID),
		cmd.setShipmentID(shipmentID),
		cmd.setReason(reason),
		cmd.setLines(lines),
	); err != nil {
		return CreateReturnCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateReturnCommand) Validate() error {
	return c.guard.Validate(ErrCreateReturnCommandIsNotConstructed)
}

// ReturnID returns the unique identifier for the return.
func (c CreateReturnCommand) ReturnID() kernel.UUID {
	return c.returnID
}

// ShipmentID returns the shipment the items came from.
func (c CreateReturnCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Reason returns the customer-facing reason for the return.
func (c CreateReturnCommand) Reason() string {
	return c.reason
}

// Lines returns the product lines being returned.
func (c CreateReturnCommand) Lines() []returns.Line {
	return c.lines
}

func (c *CreateReturnCommand) setReturnID(returnID kernel.UUID) error {
	if err := returnID.Validate(); err != nil {
		return err
	}

	c.returnID = returnID
	return nil
}

func (c *CreateReturnCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *CreateReturnCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	c.reason = reason
	return nil
}

func (c *CreateReturnCommand) setLines(lines []returns.Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsInvalidErrorWithCause("lines",
			fmt.Errorf("a return must contain at least one line"))
	}

	c.lines = lines
	return nil
}
