package returns

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// State represents the lifecycle state of a return.
//
// State transitions:
//
//	Pending ──┬──> Shipped ──> Received
//	          │                   ▲
//	          └───────────────────┘
//	       (direct receipt allowed)
//
// Received is terminal. Advancing a received return to Received again is a
// permitted no-op so that repeated receipt notifications stay idempotent; any
// other edge out of Received is rejected.
type State int

const (
	// StateUnknown represents an invalid or undefined state.
	// This value (0) helps catch uninitialized State values.
	StateUnknown State = iota

	// StatePending is the initial state when a return is registered.
	StatePending

	// StateShipped indicates the customer handed the items to a carrier.
	StateShipped

	// StateReceived indicates the items arrived back at the warehouse.
	// Terminal state.
	StateReceived
)

func getStateStrings() map[State]string {
	return map[State]string{
		StateUnknown:  "unknown",
		StatePending:  "pending",
		StateShipped:  "shipped",
		StateReceived: "received",
	}
}

func getValidStateStrings() map[State]string {
	//nolint:exhaustive // StateUnknown is intentionally excluded as it's invalid
	return map[State]string{
		StatePending:  "pending",
		StateShipped:  "shipped",
		StateReceived: "received",
	}
}

// StateFromString parses "pending", "shipped" or "received".
func StateFromString(s string) (State, error) {
	for state, str := range getValidStateStrings() {
		if str == s {
			return state, nil
		}
	}
	return StateUnknown, errs.NewValueIsInvalidErrorWithCause("state",
		fmt.Errorf("%q is not a valid return state", s))
}

// Validate checks that the State value is one of the defined lifecycle states.
func (s State) Validate() error {
	if _, ok := getValidStateStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("state",
			fmt.Errorf("%d is not a valid return state", s))
	}
	return nil
}

// String implements fmt.Stringer. Safe to call on any State value.
func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Advance validates the edge from s to next and reports whether the state
// actually changes.
//
// Legal edges:
//   - Pending -> Shipped
//   - Pending -> Received (direct receipt, no intermediate shipped record)
//   - Shipped -> Received
//   - Received -> Received (idempotent no-op, changed is false)
//
// Every other edge returns an InvalidTransition error.
func (s State) Advance(next State) (changed bool, err error) {
	if err := next.Validate(); err != nil {
		return false, err
	}

	if s == StateReceived && next == StateReceived {
		return false, nil
	}

	legal := s == StatePending && next == StateShipped ||
		s == StatePending && next == StateReceived ||
		s == StateShipped && next == StateReceived
	if !legal {
		return false, errs.NewInvalidTransitionError("return", s.String(), next.String())
	}

	return true, nil
}
