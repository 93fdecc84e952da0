package commands

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/returns"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/retry"
)

// CreateReturnCommandHandler handles return registration. Verifies the
// shipment exists before creating the return in the pending state.
type CreateReturnCommandHandler struct {
	uowFactory ReturnUoWFactory
}

// NewCreateReturnCommandHandler creates a handler for return registration.
// Requires a ReturnUoWFactory for transactional persistence.
func NewCreateReturnCommandHandler(uowFactory ReturnUoWFactory) CreateReturnCommandHandler {
	return CreateReturnCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the return registration command.
// Referencing an unknown shipment returns a ReferenceNotFound error.
// Transient storage failures are retried in fresh transactions.
func (h CreateReturnCommandHandler) Handle(ctx context.Context, cmd CreateReturnCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return retry.Transient(ctx, func() error {
		return h.handle(ctx, cmd)
	})
}

func (h CreateReturnCommandHandler) handle(ctx context.Context, cmd CreateReturnCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID()); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.NewReferenceNotFoundErrorWithCause("shipmentId", cmd.ShipmentID(), err)
		}
		return err
	}

	aggregate, err := returns.NewReturn(
		cmd.ReturnID(), cmd.ShipmentID(), cmd.Reason(),
		time.Now().UTC(), cmd.Lines(),
	)
	if err != nil {
		return err
	}

	if err = uow.ReturnRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
