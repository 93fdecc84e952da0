package commands

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/retry"
)

// CreateShipmentCommandHandler handles the business logic for shipment
// creation. Looks up the shipping method, derives the estimated delivery date
// from it, and writes the shipment together with its initial "pending" status
// record in a single transaction.
//
// Example:
//
//	handler := NewCreateShipmentCommandHandler(uowFactory)
//	cmd, _ := NewCreateShipmentCommand(kernel.NewUUID(), orderID, addressID,
//	    methodID, "", time.Now().UTC())
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("shipment creation failed: %w", err)
//	}
type CreateShipmentCommandHandler struct {
	uowFactory CreateShipmentUoWFactory
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation.
// Requires a CreateShipmentUoWFactory for transactional persistence.
func NewCreateShipmentCommandHandler(uowFactory CreateShipmentUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment creation command.
// Referencing an unknown shipping method returns a ReferenceNotFound error.
// Transient storage failures are retried; each attempt runs in a fresh
// transaction.
func (h CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return retry.Transient(ctx, func() error {
		return h.handle(ctx, cmd)
	})
}

func (h CreateShipmentCommandHandler) handle(ctx context.Context, cmd CreateShipmentCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	method, err := uow.MethodRepository().Get(ctx, cmd.MethodID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewReferenceNotFoundErrorWithCause("shippingMethodId", cmd.MethodID(), err)
	}
	if err != nil {
		return err
	}

	aggregate, err := shipment.NewShipment(
		cmd.ShipmentID(), cmd.OrderID(), cmd.AddressID(),
		method, cmd.TrackingCode(), cmd.ShipDate(),
	)
	if err != nil {
		return err
	}

	shipmentRepo := uow.ShipmentRepository()
	if err = shipmentRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	record, err := shipment.NewStatusRecord(
		kernel.NewUUID(), aggregate.ID(),
		shipment.StatusPending, shipment.InitialStatusDescription,
		nil, time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = shipmentRepo.AppendStatus(ctx, record); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
