package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/warehouse"
	"logistics/internal/pkg/errs"
)

var ErrCreateWarehouseCommandIsNotConstructed = errors.New(
	"CreateWarehouseCommand must be created via NewCreateWarehouseCommand constructor",
)

// CreateWarehouseCommand represents a request to register a warehouse.
type CreateWarehouseCommand struct { //nolint:recvcheck //using for validation
	warehouseID kernel.UUID
	address     string
	kind        warehouse.Kind

	guard kernel.ConstructorGuard
}

// NewCreateWarehouseCommand creates a command to register a warehouse.
// Requires a valid identifier, a non-empty address and a valid kind.
func NewCreateWarehouseCommand(
	warehouseID kernel.UUID,
	address string,
	kind warehouse.Kind,
) (CreateWarehouseCommand, error) {
	cmd := CreateWarehouseCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setWarehouseID(warehouseID),
		cmd.setAddress(address),
		cmd.setKind(kind),
	); err != nil {
		return CreateWarehouseCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrCreateWarehouseCommandIsNotConstructed)
}

// WarehouseID returns the unique identifier for the warehouse.
func (c CreateWarehouseCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

// Address returns the warehouse street address.
func (c CreateWarehouseCommand) Address() string {
	return c.address
}

// Kind returns the warehouse kind.
func (c CreateWarehouseCommand) Kind() warehouse.Kind {
	return c.kind
}

func (c *CreateWarehouseCommand) setWarehouseID(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}

	c.warehouseID = warehouseID
	return nil
}

func (c *CreateWarehouseCommand) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}

	c.address = address
	return nil
}

func (c *CreateWarehouseCommand) setKind(kind warehouse.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}
