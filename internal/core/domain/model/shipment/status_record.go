package shipment

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ErrStatusRecordIsNotConstructed is returned when a StatusRecord was not
// created through one of the constructors.
var ErrStatusRecordIsNotConstructed = errors.New("StatusRecord must be created via NewStatusRecord constructor")

// Descriptions written by the core itself.
const (
	// InitialStatusDescription annotates the pending record created together
	// with every shipment.
	InitialStatusDescription = "shipment created, awaiting processing"

	// ReturnReceivedDescription annotates the returned record the return
	// workflow appends when a return reaches the warehouse.
	ReturnReceivedDescription = "item returned and received at warehouse"
)

// StatusRecord is one entry of a shipment's append-only timeline. Records are
// created, never updated or deleted. The optional employee reference
// attributes the change to the person who recorded it.
type StatusRecord struct {
	id          kernel.UUID
	shipmentID  kernel.UUID
	status      Status
	description string
	recordedAt  time.Time
	employeeID  *kernel.UUID

	isConstructed bool
}

// NewStatusRecord creates a timeline entry. The description may be empty and
// employeeID may be nil (system-generated entries carry no employee).
func NewStatusRecord(
	id, shipmentID kernel.UUID,
	status Status,
	description string,
	employeeID *kernel.UUID,
	recordedAt time.Time,
) (*StatusRecord, error) {
	if recordedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("recordedAt")
	}

	record := &StatusRecord{
		description:   description,
		recordedAt:    recordedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		record.setID(id),
		record.setShipmentID(shipmentID),
		record.setStatus(status),
		record.setEmployeeID(employeeID),
	); err != nil {
		return nil, err
	}

	return record, nil
}

// RestoreStatusRecord rebuilds a timeline entry from persistence.
func RestoreStatusRecord(
	id, shipmentID kernel.UUID,
	status Status,
	description string,
	employeeID *kernel.UUID,
	recordedAt time.Time,
) (*StatusRecord, error) {
	return NewStatusRecord(id, shipmentID, status, description, employeeID, recordedAt)
}

// Validate ensures the StatusRecord was built through a constructor.
func (r *StatusRecord) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrStatusRecordIsNotConstructed
	}
	return nil
}

// ID returns the record's unique identifier.
func (r *StatusRecord) ID() kernel.UUID {
	return r.id
}

// ShipmentID returns the shipment this record belongs to.
func (r *StatusRecord) ShipmentID() kernel.UUID {
	return r.shipmentID
}

// Status returns the recorded lifecycle state.
func (r *StatusRecord) Status() Status {
	return r.status
}

// Description returns the optional free-text annotation.
func (r *StatusRecord) Description() string {
	return r.description
}

// RecordedAt returns the entry's timestamp.
func (r *StatusRecord) RecordedAt() time.Time {
	return r.recordedAt
}

// EmployeeID returns the employee who recorded the change, or nil for
// system-generated entries.
func (r *StatusRecord) EmployeeID() *kernel.UUID {
	return r.employeeID
}

func (r *StatusRecord) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *StatusRecord) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	r.shipmentID = shipmentID
	return nil
}

func (r *StatusRecord) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	return nil
}

func (r *StatusRecord) setEmployeeID(employeeID *kernel.UUID) error {
	if employeeID != nil {
		if err := employeeID.Validate(); err != nil {
			return err
		}
	}
	r.employeeID = employeeID
	return nil
}
