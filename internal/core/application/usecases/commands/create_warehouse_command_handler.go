package commands

import (
	"context"

	"logistics/internal/core/domain/model/warehouse"
	"logistics/internal/pkg/retry"
)

// CreateWarehouseCommandHandler handles warehouse registration.
type CreateWarehouseCommandHandler struct {
	uowFactory WarehouseUoWFactory
}

// NewCreateWarehouseCommandHandler creates a handler for warehouse
// registration. Requires a WarehouseUoWFactory for persistence.
func NewCreateWarehouseCommandHandler(uowFactory WarehouseUoWFactory) CreateWarehouseCommandHandler {
	return CreateWarehouseCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the warehouse registration command.
// Transient storage failures are retried in fresh transactions.
func (h CreateWarehouseCommandHandler) Handle(ctx context.Context, cmd CreateWarehouseCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return retry.Transient(ctx, func() error {
		return h.handle(ctx, cmd)
	})
}

func (h CreateWarehouseCommandHandler) handle(ctx context.Context, cmd CreateWarehouseCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := warehouse.NewWarehouse(cmd.WarehouseID(), cmd.Address(), cmd.Kind())
	if err != nil {
		return err
	}

	if err = uow.WarehouseRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
