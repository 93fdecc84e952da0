package returns

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ErrReturnIsNotConstructed is returned when a Return was created
// via the default constructor instead of NewReturn or RestoreReturn.
var ErrReturnIsNotConstructed = errors.New("return is not constructed")

// Return is the aggregate root for the returns workflow. It tracks the
// customer-facing reason, the lines being sent back and the workflow state.
//
// The state machine is owned by Advance; callers never mutate the state
// directly. When Advance reports receivedNow, the caller is responsible for
// appending the corresponding "returned" record to the shipment's status
// history within the same transaction.
type Return struct {
	guard kernel.ConstructorGuard

	id         kernel.UUID
	shipmentID kernel.UUID
	reason     string
	createdAt  time.Time
	state      State
	lines      []Line
}

// NewReturn registers a return against a shipment. The return starts in the
// pending state. At least one line is required.
func NewReturn(
	id kernel.UUID,
	shipmentID kernel.UUID,
	reason string,
	createdAt time.Time,
	lines []Line,
) (*Return, error) {
	if err := errors.Join(
		id.Validate(),
		shipmentID.Validate(),
		validateReason(reason),
		validateCreatedAt(createdAt),
		validateLines(lines),
	); err != nil {
		return nil, err
	}

	return &Return{
		guard: kernel.NewConstructorGuard(),

		id:         id,
		shipmentID: shipmentID,
		reason:     reason,
		createdAt:  createdAt,
		state:      StatePending,
		lines:      lines,
	}, nil
}

// RestoreReturn reconstructs a Return from storage without re-running the
// state machine. Used by repositories only.
func RestoreReturn(
	id kernel.UUID,
	shipmentID kernel.UUID,
	reason string,
	createdAt time.Time,
	state State,
	lines []Line,
) (*Return, error) {
	if err := errors.Join(
		id.Validate(),
		shipmentID.Validate(),
		validateReason(reason),
		validateCreatedAt(createdAt),
		state.Validate(),
		validateLines(lines),
	); err != nil {
		return nil, err
	}

	return &Return{
		guard: kernel.NewConstructorGuard(),

		id:         id,
		shipmentID: shipmentID,
		reason:     reason,
		createdAt:  createdAt,
		state:      state,
		lines:      lines,
	}, nil
}

func validateReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	return nil
}

func validateCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	return nil
}

func validateLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsInvalidErrorWithCause("lines",
			fmt.Errorf("a return must contain at least one line"))
	}
	return nil
}

// Validate checks that the Return was properly constructed.
func (r *Return) Validate() error {
	if r == nil {
		return ErrReturnIsNotConstructed
	}
	return r.guard.Validate(ErrReturnIsNotConstructed)
}

// Advance moves the return along its state machine.
//
// receivedNow is true exactly when this call transitions the return into the
// received state for the first time; it is false for the idempotent
// received -> received no-op and for the pending -> shipped edge. Illegal
// edges return an InvalidTransition error and leave the return unchanged.
func (r *Return) Advance(next State) (receivedNow bool, err error) {
	if err := r.Validate(); err != nil {
		return false, err
	}

	changed, err := r.state.Advance(next)
	if err != nil {
		return false, err
	}
	if !changed {
		return false, nil
	}

	r.state = next
	return next == StateReceived, nil
}

// ID returns the return's identifier.
func (r *Return) ID() kernel.UUID {
	return r.id
}

// ShipmentID returns the shipment this return belongs to.
func (r *Return) ShipmentID() kernel.UUID {
	return r.shipmentID
}

// Reason returns the customer-facing reason for the return.
func (r *Return) Reason() string {
	return r.reason
}

// CreatedAt returns when the return was registered.
func (r *Return) CreatedAt() time.Time {
	return r.createdAt
}

// State returns the current workflow state.
func (r *Return) State() State {
	return r.state
}

// Lines returns the returned product lines.
func (r *Return) Lines() []Line {
	return r.lines
}

// IsEqual compares two returns by identity.
func (r *Return) IsEqual(other *Return) bool {
	if other == nil {
		return false
	}
	return r.id.IsEqual(other.id)
}
