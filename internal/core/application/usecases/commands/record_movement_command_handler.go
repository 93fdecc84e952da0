package commands

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/stocklog"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/retry"
)

// RecordMovementCommandHandler handles stock log appends. Verifies the
// warehouse and employee exist before appending; a missing reference
// surfaces as a ReferenceNotFound error.
type RecordMovementCommandHandler struct {
	uowFactory MovementUoWFactory
}

// NewRecordMovementCommandHandler creates a handler for stock movements.
// Requires a MovementUoWFactory for transactional persistence.
func NewRecordMovementCommandHandler(uowFactory MovementUoWFactory) RecordMovementCommandHandler {
	return RecordMovementCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the stock movement command.
// Transient storage failures are retried in fresh transactions.
func (h RecordMovementCommandHandler) Handle(ctx context.Context, cmd RecordMovementCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return retry.Transient(ctx, func() error {
		return h.handle(ctx, cmd)
	})
}

func (h RecordMovementCommandHandler) handle(ctx context.Context, cmd RecordMovementCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.WarehouseRepository().Get(ctx, cmd.WarehouseID()); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.NewReferenceNotFoundErrorWithCause("warehouseId", cmd.WarehouseID(), err)
		}
		return err
	}
	if _, err := uow.EmployeeRepository().Get(ctx, cmd.EmployeeID()); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.NewReferenceNotFoundErrorWithCause("employeeId", cmd.EmployeeID(), err)
		}
		return err
	}

	recordedAt := cmd.RecordedAt()
	if recordedAt.IsZero() {
		recordedAt = time.Now().UTC()
	}

	movement, err := stocklog.NewMovement(
		cmd.MovementID(), cmd.WarehouseID(), cmd.ProductID(), cmd.EmployeeID(),
		cmd.Quantity(), recordedAt,
	)
	if err != nil {
		return err
	}

	if err = uow.MovementRepository().Append(ctx, movement); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
