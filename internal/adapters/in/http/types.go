package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"logistics/internal/core/application/usecases/queries"
)

// ErrorResponse is the wire format for all error replies.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateShipmentRequest is the wire format for registering a shipment.
// TrackingCode is optional; one is generated when omitted. The ship date
// is not part of the request: it is stamped at creation time.
type CreateShipmentRequest struct {
	OrderID      uuid.UUID `json:"orderId"`
	AddressID    uuid.UUID `json:"addressId"`
	MethodID     uuid.UUID `json:"methodId"`
	TrackingCode string    `json:"trackingCode,omitempty"`
}

// AppendStatusRequest is the wire format for appending a status record.
type AppendStatusRequest struct {
	Status      string     `json:"status"`
	Description string     `json:"description"`
	EmployeeID  *uuid.UUID `json:"employeeId,omitempty"`
}

// ReturnLineRequest is one returned product line.
type ReturnLineRequest struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
}

// CreateReturnRequest is the wire format for registering a return.
type CreateReturnRequest struct {
	ShipmentID uuid.UUID           `json:"shipmentId"`
	Reason     string              `json:"reason"`
	Lines      []ReturnLineRequest `json:"lines"`
}

// AdvanceReturnRequest moves a return to its next state.
type AdvanceReturnRequest struct {
	State string `json:"state"`
}

// CreateShippingMethodRequest is the wire format for registering a method.
type CreateShippingMethodRequest struct {
	Kind          string          `json:"kind"`
	Description   string          `json:"description"`
	EstimatedDays int             `json:"estimatedDays"`
	Cost          decimal.Decimal `json:"cost"`
}

// CreateWarehouseRequest is the wire format for registering a warehouse.
type CreateWarehouseRequest struct {
	Address string `json:"address"`
	Kind    string `json:"kind"`
}

// CreateEmployeeRequest is the wire format for registering an employee.
// The password travels only on this request and is stored as a bcrypt hash.
type CreateEmployeeRequest struct {
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName1 string `json:"lastName1"`
	LastName2 string `json:"lastName2,omitempty"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Position  string `json:"position"`
	Area      string `json:"area"`
}

// RecordMovementRequest is the wire format for appending a stock movement.
// RecordedAt is optional; an omitted timestamp means "now".
type RecordMovementRequest struct {
	WarehouseID uuid.UUID  `json:"warehouseId"`
	ProductID   uuid.UUID  `json:"productId"`
	EmployeeID  uuid.UUID  `json:"employeeId"`
	Quantity    int        `json:"quantity"`
	RecordedAt  *time.Time `json:"recordedAt,omitempty"`
}

// CreatedResponse carries the identifier of a newly created resource.
type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

// Shipment is the wire format of a shipment read model.
type Shipment struct {
	ID                    uuid.UUID `json:"id"`
	OrderID               uuid.UUID `json:"orderId"`
	AddressID             uuid.UUID `json:"addressId"`
	MethodID              uuid.UUID `json:"methodId"`
	TrackingCode          string    `json:"trackingCode"`
	ShipDate              time.Time `json:"shipDate"`
	EstimatedDeliveryDate time.Time `json:"estimatedDeliveryDate"`
}

func shipmentFromQuery(r queries.ShipmentResponse) Shipment {
	return Shipment{
		ID:                    r.ID.Bytes(),
		OrderID:               r.OrderID.Bytes(),
		AddressID:             r.AddressID.Bytes(),
		MethodID:              r.MethodID.Bytes(),
		TrackingCode:          r.TrackingCode,
		ShipDate:              r.ShipDate,
		EstimatedDeliveryDate: r.EstimatedDeliveryDate,
	}
}

// StatusRecord is the wire format of one status history entry.
type StatusRecord struct {
	ID          uuid.UUID  `json:"id"`
	ShipmentID  uuid.UUID  `json:"shipmentId"`
	Status      string     `json:"status"`
	Description string     `json:"description"`
	EmployeeID  *uuid.UUID `json:"employeeId,omitempty"`
	RecordedAt  time.Time  `json:"recordedAt"`
}

func statusRecordFromQuery(r queries.StatusRecordResponse) StatusRecord {
	var employeeID *uuid.UUID
	if r.EmployeeID != nil {
		raw := r.EmployeeID.Bytes()
		employeeID = &raw
	}

	return StatusRecord{
		ID:          r.ID.Bytes(),
		ShipmentID:  r.ShipmentID.Bytes(),
		Status:      r.Status.String(),
		Description: r.Description,
		EmployeeID:  employeeID,
		RecordedAt:  r.RecordedAt,
	}
}

// ReturnLine is one returned product line on the wire.
type ReturnLine struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
}

// Return is the wire format of a return with its lines.
type Return struct {
	ID         uuid.UUID    `json:"id"`
	ShipmentID uuid.UUID    `json:"shipmentId"`
	Reason     string       `json:"reason"`
	State      string       `json:"state"`
	CreatedAt  time.Time    `json:"createdAt"`
	Lines      []ReturnLine `json:"lines"`
}

func returnFromQuery(r queries.ReturnResponse) Return {
	lines := make([]ReturnLine, len(r.Lines))
	for i, line := range r.Lines {
		lines[i] = ReturnLine{
			ProductID: line.ProductID.Bytes(),
			Quantity:  line.Quantity,
		}
	}

	return Return{
		ID:         r.ID.Bytes(),
		ShipmentID: r.ShipmentID.Bytes(),
		Reason:     r.Reason,
		State:      r.State.String(),
		CreatedAt:  r.CreatedAt,
		Lines:      lines,
	}
}

// ReturnSummary is the wire format of a return in listings, lines omitted.
type ReturnSummary struct {
	ID         uuid.UUID `json:"id"`
	ShipmentID uuid.UUID `json:"shipmentId"`
	Reason     string    `json:"reason"`
	State      string    `json:"state"`
	CreatedAt  time.Time `json:"createdAt"`
}

func returnSummaryFromQuery(r queries.ReturnSummaryResponse) ReturnSummary {
	return ReturnSummary{
		ID:         r.ID.Bytes(),
		ShipmentID: r.ShipmentID.Bytes(),
		Reason:     r.Reason,
		State:      r.State.String(),
		CreatedAt:  r.CreatedAt,
	}
}

// ShippingMethod is the wire format of a shipping method.
type ShippingMethod struct {
	ID            uuid.UUID       `json:"id"`
	Kind          string          `json:"kind"`
	Description   string          `json:"description"`
	EstimatedDays int             `json:"estimatedDays"`
	Cost          decimal.Decimal `json:"cost"`
}

func methodFromQuery(r queries.MethodResponse) ShippingMethod {
	return ShippingMethod{
		ID:            r.ID.Bytes(),
		Kind:          r.Kind.String(),
		Description:   r.Description,
		EstimatedDays: r.EstimatedDays,
		Cost:          r.Cost,
	}
}

// Warehouse is the wire format of a warehouse.
type Warehouse struct {
	ID      uuid.UUID `json:"id"`
	Address string    `json:"address"`
	Kind    string    `json:"kind"`
}

func warehouseFromQuery(r queries.WarehouseResponse) Warehouse {
	return Warehouse{
		ID:      r.ID.Bytes(),
		Address: r.Address,
		Kind:    r.Kind.String(),
	}
}

// Employee is the wire format of an employee. Password hashes never
// appear here.
type Employee struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName1 string    `json:"lastName1"`
	LastName2 string    `json:"lastName2,omitempty"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Position  string    `json:"position"`
	Area      string    `json:"area"`
}

func employeeFromQuery(r queries.EmployeeResponse) Employee {
	return Employee{
		ID:        r.ID.Bytes(),
		FirstName: r.FirstName,
		LastName1: r.LastName1,
		LastName2: r.LastName2,
		Phone:     r.Phone,
		Email:     r.Email,
		Position:  r.Position.String(),
		Area:      r.Area.String(),
	}
}

// Movement is the wire format of one stock log entry.
type Movement struct {
	ID          uuid.UUID `json:"id"`
	WarehouseID uuid.UUID `json:"warehouseId"`
	ProductID   uuid.UUID `json:"productId"`
	EmployeeID  uuid.UUID `json:"employeeId"`
	Quantity    int       `json:"quantity"`
	RecordedAt  time.Time `json:"recordedAt"`
}

func movementFromQuery(r queries.MovementResponse) Movement {
	return Movement{
		ID:          r.ID.Bytes(),
		WarehouseID: r.WarehouseID.Bytes(),
		ProductID:   r.ProductID.Bytes(),
		EmployeeID:  r.EmployeeID.Bytes(),
		Quantity:    r.Quantity,
		RecordedAt:  r.RecordedAt,
	}
}
