package shipment

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shippingmethod"
	"logistics/internal/pkg/errs"
)

// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
// created through NewShipment or RestoreShipment.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

// Shipment is a single order's physical delivery record.
//
// Invariants:
//   - the order, address and shipping method references are required
//   - estimatedDeliveryDate is always shipDate plus the shipping method's
//     estimated days; it is computed here and can never be supplied by callers
//   - the tracking code fits the column bounds and is unique storage-wide
//   - a shipment is created once; ship date and estimated delivery date are
//     never updated afterwards
type Shipment struct {
	id                    kernel.UUID
	orderID               kernel.UUID
	addressID             kernel.UUID
	methodID              kernel.UUID
	shipDate              time.Time
	estimatedDeliveryDate time.Time
	trackingCode          string

	isConstructed bool
}

// NewShipment creates a shipment dispatched at shipDate using the given
// shipping method. The estimated delivery date is derived from the method's
// estimated days; an empty trackingCode gets a generated one.
func NewShipment(
	id, orderID, addressID kernel.UUID,
	method *shippingmethod.Method,
	trackingCode string,
	shipDate time.Time,
) (*Shipment, error) {
	if err := method.Validate(); err != nil {
		return nil, err
	}
	if shipDate.IsZero() {
		return nil, errs.NewValueIsRequiredError("shipDate")
	}

	if trackingCode == "" {
		trackingCode = GenerateTrackingCode()
	}

	shipment := &Shipment{
		shipDate:              shipDate,
		estimatedDeliveryDate: shipDate.AddDate(0, 0, method.EstimatedDays()),
		isConstructed:         true,
	}

	if err := errors.Join(
		shipment.setID(id),
		shipment.setOrderID(orderID),
		shipment.setAddressID(addressID),
		shipment.setMethodID(method.ID()),
		shipment.setTrackingCode(trackingCode),
	); err != nil {
		return nil, err
	}

	return shipment, nil
}

// RestoreShipment rebuilds a shipment from persistence, trusting the stored
// estimated delivery date rather than recomputing it.
func RestoreShipment(
	id, orderID, addressID, methodID kernel.UUID,
	trackingCode string,
	shipDate, estimatedDeliveryDate time.Time,
) (*Shipment, error) {
	if shipDate.IsZero() {
		return nil, errs.NewValueIsRequiredError("shipDate")
	}
	if estimatedDeliveryDate.IsZero() {
		return nil, errs.NewValueIsRequiredError("estimatedDeliveryDate")
	}

	shipment := &Shipment{
		shipDate:              shipDate,
		estimatedDeliveryDate: estimatedDeliveryDate,
		isConstructed:         true,
	}

	if err := errors.Join(
		shipment.setID(id),
		shipment.setOrderID(orderID),
		shipment.setAddressID(addressID),
		shipment.setMethodID(methodID),
		shipment.setTrackingCode(trackingCode),
	); err != nil {
		return nil, err
	}

	return shipment, nil
}

// Validate ensures the Shipment was built through a constructor.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two shipments by identifier.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// OrderID returns the external order reference.
func (s *Shipment) OrderID() kernel.UUID {
	return s.orderID
}

// AddressID returns the external delivery address reference.
func (s *Shipment) AddressID() kernel.UUID {
	return s.addressID
}

// MethodID returns the shipping method reference.
func (s *Shipment) MethodID() kernel.UUID {
	return s.methodID
}

// ShipDate returns the dispatch timestamp.
func (s *Shipment) ShipDate() time.Time {
	return s.shipDate
}

// EstimatedDeliveryDate returns the derived delivery estimate.
func (s *Shipment) EstimatedDeliveryDate() time.Time {
	return s.estimatedDeliveryDate
}

// TrackingCode returns the unique tracking code.
func (s *Shipment) TrackingCode() string {
	return s.trackingCode
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	s.orderID = orderID
	return nil
}

func (s *Shipment) setAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}
	s.addressID = addressID
	return nil
}

func (s *Shipment) setMethodID(methodID kernel.UUID) error {
	if err := methodID.Validate(); err != nil {
		return err
	}
	s.methodID = methodID
	return nil
}

func (s *Shipment) setTrackingCode(trackingCode string) error {
	if err := ValidateTrackingCode(trackingCode); err != nil {
		return err
	}
	s.trackingCode = trackingCode
	return nil
}
