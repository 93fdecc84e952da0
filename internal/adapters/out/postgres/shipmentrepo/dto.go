// Package shipmentrepo provides GORM-based persistence for shipment aggregates
// and their append-only status history.
package shipmentrepo

import (
	"time"

	"github.com/google/uuid"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
)

// ShipmentDTO represents the database structure for persisting shipments.
// TrackingCode carries a unique index so two shipments can never share a code.
type ShipmentDTO struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID               uuid.UUID `gorm:"type:uuid;not null;index"`
	AddressID             uuid.UUID `gorm:"type:uuid;not null"`
	MethodID              uuid.UUID `gorm:"type:uuid;not null;index"`
	TrackingCode          string    `gorm:"type:text;not null;uniqueIndex"`
	ShipDate              time.Time `gorm:"not null"`
	EstimatedDeliveryDate time.Time `gorm:"not null"`
}

// TableName specifies the database table name for shipments.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// StatusRecordDTO represents one row of a shipment's status history.
// Seq is a monotonically increasing insertion counter used as a tiebreak
// when two records share the same timestamp.
type StatusRecordDTO struct {
	Seq         int64      `gorm:"primaryKey;autoIncrement"`
	ID          uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	ShipmentID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status      string     `gorm:"type:text;not null"`
	Description string     `gorm:"type:text;not null"`
	EmployeeID  *uuid.UUID `gorm:"type:uuid"`
	RecordedAt  time.Time  `gorm:"not null"`
}

// TableName specifies the database table name for status history.
func (StatusRecordDTO) TableName() string {
	return "shipment_statuses"
}

func fromDomain(s *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:                    s.ID().Bytes(),
		OrderID:               s.OrderID().Bytes(),
		AddressID:             s.AddressID().Bytes(),
		MethodID:              s.MethodID().Bytes(),
		TrackingCode:          s.TrackingCode(),
		ShipDate:              s.ShipDate(),
		EstimatedDeliveryDate: s.EstimatedDeliveryDate(),
	}
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	addressID, err := kernel.UUIDFromBytes(dto.AddressID[:])
	if err != nil {
		return nil, err
	}

	methodID, err := kernel.UUIDFromBytes(dto.MethodID[:])
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(id, orderID, addressID, methodID,
		dto.TrackingCode, dto.ShipDate, dto.EstimatedDeliveryDate)
}

func recordFromDomain(r *shipment.StatusRecord) StatusRecordDTO {
	var employeeID *uuid.UUID
	if id := r.EmployeeID(); id != nil {
		raw := id.Bytes()
		employeeID = &raw
	}

	return StatusRecordDTO{
		ID:          r.ID().Bytes(),
		ShipmentID:  r.ShipmentID().Bytes(),
		Status:      r.Status().String(),
		Description: r.Description(),
		EmployeeID:  employeeID,
		RecordedAt:  r.RecordedAt(),
	}
}

func recordToDomain(dto StatusRecordDTO) (*shipment.StatusRecord, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}

	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var employeeID *kernel.UUID
	if dto.EmployeeID != nil {
		eID, employeeErr := kernel.UUIDFromBytes((*dto.EmployeeID)[:])
		if employeeErr != nil {
			return nil, employeeErr
		}

		employeeID = &eID
	}

	return shipment.RestoreStatusRecord(id, shipmentID, status, dto.Description, employeeID, dto.RecordedAt)
}
