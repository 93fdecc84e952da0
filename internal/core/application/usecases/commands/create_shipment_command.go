package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand represents a request to register a new shipment for
// an order. An empty tracking code means one will be generated.
//
// Example:
//
//	cmd, err := NewCreateShipmentCommand(kernel.NewUUID(), orderID, addressID,
//	    methodID, "", time.Now().UTC())
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//
//	handler := NewCreateShipmentCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create shipment: %w", err)
//	}
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID   kernel.UUID
	orderID      kernel.UUID
	addressID    kernel.UUID
	methodID     kernel.UUID
	trackingCode string
	shipDate     time.Time

	guard kernel.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a shipment.
// Validates all identifiers, the ship date, and the tracking code format
// when one is supplied.
func NewCreateShipmentCommand(
	shipmentID, orderID, addressID, methodID kernel.UUID,
	trackingCode string,
	shipDate time.Time,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setOrderID(orderID),
		cmd.setAddressID(addressID),
		cmd.setMethodID(methodID),
		cmd.setTrackingCode(trackingCode),
		cmd.setShipDate(shipDate),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the unique identifier for the shipment.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// OrderID returns the order being shipped.
func (c CreateShipmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// AddressID returns the destination address reference.
func (c CreateShipmentCommand) AddressID() kernel.UUID {
	return c.addressID
}

// MethodID returns the shipping method reference.
func (c CreateShipmentCommand) MethodID() kernel.UUID {
	return c.methodID
}

// TrackingCode returns the supplied tracking code, empty when one
// should be generated.
func (c CreateShipmentCommand) TrackingCode() string {
	return c.trackingCode
}

// ShipDate returns the date the shipment leaves the warehouse.
func (c CreateShipmentCommand) ShipDate() time.Time {
	return c.shipDate
}

func (c *CreateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *CreateShipmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateShipmentCommand) setAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}

	c.addressID = addressID
	return nil
}

func (c *CreateShipmentCommand) setMethodID(methodID kernel.UUID) error {
	if err := methodID.Validate(); err != nil {
		return err
	}

	c.methodID = methodID
	return nil
}

func (c *CreateShipmentCommand) setTrackingCode(trackingCode string) error {
	if trackingCode != "" {
		if err := shipment.ValidateTrackingCode(trackingCode); err != nil {
			return err
		}
	}

	c.trackingCode = trackingCode
	return nil
}

func (c *CreateShipmentCommand) setShipDate(shipDate time.Time) error {
	if shipDate.IsZero() {
		return errs.NewValueIsRequiredError("shipDate")
	}

	c.shipDate = shipDate
	return nil
}
