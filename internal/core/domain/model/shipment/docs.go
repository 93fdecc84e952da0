// Package shipment provides the shipment ledger: the Shipment aggregate, the
// lifecycle Status state machine, and the append-only StatusRecord timeline.
//
// The package includes:
//   - Shipment: a single order's physical delivery record; its estimated
//     delivery date is derived from the shipping method at construction and
//     never supplied by callers
//   - Status: lifecycle state machine for the shipment timeline
//   - StatusRecord: one append-only entry of that timeline; records are
//     created, never mutated or deleted, and the latest record is the
//     shipment's current status
//
// Key business rules:
//   - the estimated delivery date is always ship date plus the shipping
//     method's estimated days, exactly
//   - every shipment gets a pending record the moment it is created, so no
//     shipment is ever observed without history
//   - direct status appends may only walk pending -> in transit -> delivered;
//     the returned status is written exclusively by the return workflow
//   - tracking codes are unique; when a caller supplies none, one is generated
//     (eight uppercase letters followed by twelve digits)
package shipment
