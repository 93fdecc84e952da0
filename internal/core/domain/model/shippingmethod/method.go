// Package shippingmethod provides the shipping method reference aggregate.
// Shipping methods are immutable lookup data: once created they are only read,
// primarily by the shipment ledger to derive estimated delivery dates.
package shippingmethod

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrMethodIsNotConstructed is returned when a Method instance was not created
// through NewMethod or RestoreMethod.
var ErrMethodIsNotConstructed = errors.New("Method must be created via NewMethod constructor")

// Method is a shipping method: a delivery tier with an estimated transit time
// in days and a cost with two fractional digits.
//
// Invariants:
//   - estimated days is at least 1
//   - cost is non-negative with at most two decimal places
//   - immutable after construction
type Method struct {
	id            kernel.UUID
	kind          Kind
	description   string
	estimatedDays int
	cost          decimal.Decimal

	isConstructed bool
}

// NewMethod creates a shipping method, validating every invariant.
func NewMethod(id kernel.UUID, kind Kind, description string, estimatedDays int, cost decimal.Decimal) (*Method, error) {
	method := &Method{isConstructed: true}

	if err := errors.Join(
		method.setID(id),
		method.setKind(kind),
		method.setDescription(description),
		method.setEstimatedDays(estimatedDays),
		method.setCost(cost),
	); err != nil {
		return nil, err
	}

	return method, nil
}

// RestoreMethod rebuilds a shipping method from persistence.
// The same invariants apply as in NewMethod.
func RestoreMethod(id kernel.UUID, kind Kind, description string, estimatedDays int, cost decimal.Decimal) (*Method, error) {
	return NewMethod(id, kind, description, estimatedDays, cost)
}

// Validate ensures the Method was built through a constructor.
func (m *Method) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMethodIsNotConstructed
	}
	return nil
}

// IsEqual compares two methods by identifier.
func (m *Method) IsEqual(other *Method) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the method's unique identifier.
func (m *Method) ID() kernel.UUID {
	return m.id
}

// Kind returns the delivery tier.
func (m *Method) Kind() Kind {
	return m.kind
}

// Description returns the human-readable description.
func (m *Method) Description() string {
	return m.description
}

// EstimatedDays returns the estimated transit time in whole days.
func (m *Method) EstimatedDays() int {
	return m.estimatedDays
}

// Cost returns the delivery cost.
func (m *Method) Cost() decimal.Decimal {
	return m.cost
}

func (m *Method) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Method) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	m.kind = kind
	return nil
}

func (m *Method) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	m.description = description
	return nil
}

func (m *Method) setEstimatedDays(estimatedDays int) error {
	if estimatedDays < 1 {
		return errs.NewValueIsInvalidErrorWithCause("estimatedDays",
			fmt.Errorf("%d is not greater than 0", estimatedDays))
	}
	m.estimatedDays = estimatedDays
	return nil
}

func (m *Method) setCost(cost decimal.Decimal) error {
	if cost.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("cost",
			fmt.Errorf("%s is negative", cost))
	}
	if cost.Exponent() < -2 {
		return errs.NewValueIsInvalidErrorWithCause("cost",
			fmt.Errorf("%s has more than two decimal places", cost))
	}
	m.cost = cost
	return nil
}
