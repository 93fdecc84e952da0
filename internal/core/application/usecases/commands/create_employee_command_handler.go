package commands

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"logistics/internal/core/domain/model/employee"
	"logistics/internal/pkg/retry"
)

// CreateEmployeeCommandHandler handles employee registration. Hashes the
// password with bcrypt before it reaches the aggregate, so plaintext never
// touches the domain model or storage.
type CreateEmployeeCommandHandler struct {
	uowFactory EmployeeUoWFactory
}

// NewCreateEmployeeCommandHandler creates a handler for employee
// registration. Requires an EmployeeUoWFactory for persistence.
func NewCreateEmployeeCommandHandler(uowFactory EmployeeUoWFactory) CreateEmployeeCommandHandler {
	return CreateEmployeeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the employee registration command.
// A duplicate email surfaces as a UniqueViolation error from the
// repository. Transient storage failures are retried in fresh transactions;
// the password is hashed once, outside the retry loop.
func (h CreateEmployeeCommandHandler) Handle(ctx context.Context, cmd CreateEmployeeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return retry.Transient(ctx, func() error {
		return h.handle(ctx, cmd, string(hash))
	})
}

func (h CreateEmployeeCommandHandler) handle(ctx context.Context, cmd CreateEmployeeCommand, passwordHash string) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := employee.NewEmployee(
		cmd.EmployeeID(), passwordHash,
		cmd.FirstName(), cmd.LastName1(), cmd.LastName2(),
		cmd.Phone(), cmd.Email(),
		cmd.Position(), cmd.Area(),
	)
	if err != nil {
		return err
	}

	if err = uow.EmployeeRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
