package commands

import (
	"context"

	"logistics/internal/core/domain/model/shippingmethod"
	"logistics/internal/pkg/retry"
)

// CreateShippingMethodCommandHandler handles shipping method registration.
type CreateShippingMethodCommandHandler struct {
	uowFactory MethodUoWFactory
}

// NewCreateShippingMethodCommandHandler creates a handler for shipping
// method registration. Requires a MethodUoWFactory for persistence.
func NewCreateShippingMethodCommandHandler(uowFactory MethodUoWFactory) CreateShippingMethodCommandHandler {
	return CreateShippingMethodCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipping method registration command.
// Transient storage failures are retried in fresh transactions.
func (h CreateShippingMethodCommandHandler) Handle(ctx context.Context, cmd CreateShippingMethodCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return retry.Transient(ctx, func() error {
		return h.handle(ctx, cmd)
	})
}

func (h CreateShippingMethodCommandHandler) handle(ctx context.Context, cmd CreateShippingMethodCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	method, err := shippingmethod.NewMethod(
		cmd.MethodID(), cmd.Kind(), cmd.Description(),
		cmd.EstimatedDays(), cmd.Cost(),
	)
	if err != nil {
		return err
	}

	if err = uow.MethodRepository().Add(ctx, method); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
