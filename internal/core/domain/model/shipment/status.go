package shipment

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents one lifecycle state of a shipment. The shipment's history
// is an append-only sequence of StatusRecord entries; Status governs which
// entries a caller may append next.
//
// Direct transitions:
//
//	Pending ──> InTransit ──> Delivered
//
// Returned is deliberately absent from the direct-append table: it is written
// only by the return workflow when a return is received, so arbitrary callers
// cannot fabricate a returned shipment.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status written when a shipment is created.
	StatusPending

	// StatusInTransit indicates the shipment left the warehouse.
	StatusInTransit

	// StatusDelivered indicates the shipment reached its destination.
	// Terminal for direct appends.
	StatusDelivered

	// StatusReturned indicates the shipment came back through the return
	// workflow. Terminal; only the return workflow writes it.
	StatusReturned
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusPending:   "pending",
		StatusInTransit: "in transit",
		StatusDelivered: "delivered",
		StatusReturned:  "returned",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:   "pending",
		StatusInTransit: "in transit",
		StatusDelivered: "delivered",
		StatusReturned:  "returned",
	}
}

// StatusFromString parses the persisted or caller-supplied representation.
// Accepted values are "pending", "in transit", "delivered" and "returned".
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid shipment status", s))
}

// Validate checks that the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid shipment status", s))
	}
	return nil
}

// String implements fmt.Stringer. Safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ValidateAppend checks whether next may be appended directly after s by an
// external caller.
//
// Legal direct edges:
//   - Pending -> InTransit
//   - InTransit -> Delivered
//
// A direct request for Returned is always rejected, whatever the current
// status: that entry belongs to the return workflow alone. Delivered and
// Returned accept no further direct appends.
func (s Status) ValidateAppend(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	if next == StatusReturned {
		return errs.NewInvalidTransitionErrorWithCause(
			"shipment", s.String(), next.String(),
			fmt.Errorf("returned status is written only by the return workflow"),
		)
	}

	legal := s == StatusPending && next == StatusInTransit ||
		s == StatusInTransit && next == StatusDelivered
	if !legal {
		return errs.NewInvalidTransitionError("shipment", s.String(), next.String())
	}

	return nil
}
