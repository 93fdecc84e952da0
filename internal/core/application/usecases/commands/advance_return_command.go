package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/returns"
)

var ErrAdvanceReturnCommandIsNotConstructed = errors.New(
	"AdvanceReturnCommand must be created via NewAdvanceReturnCommand constructor",
)

// AdvanceReturnCommand represents a request to move a return along its
// workflow: pending -> shipped -> received.
type AdvanceReturnCommand struct { //nolint:recvcheck //using for validation
	returnID kernel.UUID
	next     returns.State

	guard kernel.ConstructorGuard
}

// NewAdvanceReturnCommand creates a command to advance a return's state.
// The target state must be valid; whether the edge from the current state is
// legal is decided against storage by the handler.
func NewAdvanceReturnCommand(returnID kernel.UUID, next returns.State) (AdvanceReturnCommand, error) {
	cmd := AdvanceReturnCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReturnID(returnID),
		cmd.setNext(next),
	); err != nil {
		return AdvanceReturnCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceReturnCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceReturnCommandIsNotConstructed)
}

// ReturnID returns the return being advanced.
func (c AdvanceReturnCommand) ReturnID() kernel.UUID {
	return c.returnID
}

// Next returns the target workflow state.
func (c AdvanceReturnCommand) Next() returns.State {
	return c.next
}

func (c *AdvanceReturnCommand) setReturnID(returnID kernel.UUID) error {
	if err := returnID.Validate(); err != nil {
		return err
	}

	c.returnID = returnID
	return nil
}

func (c *AdvanceReturnCommand) setNext(next returns.State) error {
	if err := next.Validate(); err != nil {
		return err
	}

	c.next = next
	return nil
}
