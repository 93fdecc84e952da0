package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shippingmethod"
)

var ErrCreateShippingMethodCommandIsNotConstructed = errors.New(
	"CreateShippingMethodCommand must be created via NewCreateShippingMethodCommand constructor",
)

// CreateShippingMethodCommand represents a request to register a shipping
// method with its delivery estimate and cost.
type CreateShippingMethodCommand struct { //nolint:recvcheck //using for validation
	methodID      kernel.UUID
	kind          shippingmethod.Kind
	description   string
	estimatedDays int
	cost          decimal.Decimal

	guard kernel.ConstructorGuard
}

// NewCreateShippingMethodCommand creates a command to register a shipping
// method. Field invariants (kind, positive estimated days, non-negative
// cost with at most two decimal places) are enforced by the aggregate
// constructor in the handler; the command validates only the identifier
// and kind so malformed requests fail before a transaction starts.
func NewCreateShippingMethodCommand(
	methodID kernel.UUID,
	kind shippingmethod.Kind,
	description string,
	estimatedDays int,
	cost decimal.Decimal,
) (CreateShippingMethodCommand, error) {
	cmd := CreateShippingMethodCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMethodID(methodID),
		cmd.setKind(kind),
	); err != nil {
		return CreateShippingMethodCommand{}, err
	}

	cmd.description = description
	cmd.estimatedDays = estimatedDays
	cmd.cost = cost
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShippingMethodCommand) Validate() error {
	return c.guard.Validate(ErrCreateShippingMethodCommandIsNotConstructed)
}

// MethodID returns the unique identifier for the method.
func (c CreateShippingMethodCommand) MethodID() kernel.UUID {
	return c.methodID
}

// Kind returns the method kind.
func (c CreateShippingMethodCommand) Kind() shippingmethod.Kind {
	return c.kind
}

// Description returns the human-readable description.
func (c CreateShippingMethodCommand) Description() string {
	return c.description
}

// EstimatedDays returns the delivery estimate in days.
func (c CreateShippingMethodCommand) EstimatedDays() int {
	return c.estimatedDays
}

// Cost returns the shipping cost.
func (c CreateShippingMethodCommand) Cost() decimal.Decimal {
	return c.cost
}

func (c *CreateShippingMethodCommand) setMethodID(methodID kernel.UUID) error {
	if err := methodID.Validate(); err != nil {
		return err
	}

	c.methodID = methodID
	return nil
}

func (c *CreateShippingMethodCommand) setKind(kind shippingmethod.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}
