package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/retry"
)

// AdvanceReturnCommandHandler handles return workflow transitions. When a
// return reaches the received state, the handler appends the "returned"
// record to the shipment's status history in the same transaction, exactly
// once: the aggregate reports receivedNow only on the first transition into
// received, so repeated receipt notifications change nothing.
//
// Example:
//
//	handler := NewAdvanceReturnCommandHandler(uowFactory)
//	cmd, _ := NewAdvanceReturnCommand(returnID, returns.StateReceived)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to advance return: %w", err)
//	}
type AdvanceReturnCommandHandler struct {
	uowFactory ReturnUoWFactory
}

// NewAdvanceReturnCommandHandler creates a handler for return transitions.
// Requires a ReturnUoWFactory spanning return and shipment repositories.
func NewAdvanceReturnCommandHandler(uowFactory ReturnUoWFactory) AdvanceReturnCommandHandler {
	return AdvanceReturnCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the return transition command.
// Returns ObjectNotFound for unknown returns and InvalidTransition for
// illegal edges. Advancing an already received return to received is a
// successful no-op. Transient storage failures are retried in fresh
// transactions.
func (h AdvanceReturnCommandHandler) Handle(ctx context.Context, cmd AdvanceReturnCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return retry.Transient(ctx, func() error {
		return h.handle(ctx, cmd)
	})
}

func (h AdvanceReturnCommandHandler) handle(ctx context.Context, cmd AdvanceReturnCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	returnRepo := uow.ReturnRepository()

	aggregate, err := returnRepo.Get(ctx, cmd.ReturnID())
	if err != nil {
		return err
	}

	receivedNow, err := aggregate.Advance(cmd.Next())
	if err != nil {
		return err
	}

	if err = returnRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if receivedNow {
		record, err := shipment.NewStatusRecord(
			kernel.NewUUID(), aggregate.ShipmentID(),
			shipment.StatusReturned, shipment.ReturnReceivedDescription,
			nil, time.Now().UTC(),
		)
		if err != nil {
			return err
		}

		if err = uow.ShipmentRepository().AppendStatus(ctx, record); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
