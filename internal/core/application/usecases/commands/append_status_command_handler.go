package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/retry"
)

// AppendStatusCommandHandler handles operator-driven shipment status updates.
// Loads the shipment first so the repository's row lock serializes writers
// on the same shipment, then validates the edge against the current status
// before appending. A concurrent writer therefore sees the committed append
// and gets InvalidTransition instead of inserting a duplicate.
type AppendStatusCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewAppendStatusCommandHandler creates a handler for status updates.
// Requires a ShipmentUoWFactory for transactional persistence.
func NewAppendStatusCommandHandler(uowFactory ShipmentUoWFactory) AppendStatusCommandHandler {
	return AppendStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status append command.
// Returns ObjectNotFound for unknown shipments and InvalidTransition for
// illegal edges, including any direct attempt to append "returned" (that
// status is written only by the return workflow). Transient storage
// failures are retried in fresh transactions.
func (h AppendStatusCommandHandler) Handle(ctx context.Context, cmd AppendStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return retry.Transient(ctx, func() error {
		return h.handle(ctx, cmd)
	})
}

func (h AppendStatusCommandHandler) handle(ctx context.Context, cmd AppendStatusCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()

	if _, err := shipmentRepo.Get(ctx, cmd.ShipmentID()); err != nil {
		return err
	}

	current, err := shipmentRepo.GetCurrentStatus(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if err = current.Status().ValidateAppend(cmd.Status()); err != nil {
		return err
	}

	record, err := shipment.NewStatusRecord(
		kernel.NewUUID(), cmd.ShipmentID(),
		cmd.Status(), cmd.Description(),
		cmd.EmployeeID(), time.Now().UTC(),
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
