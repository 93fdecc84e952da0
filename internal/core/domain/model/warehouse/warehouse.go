// Package warehouse provides the warehouse reference aggregate.
// Warehouses are immutable lookup data referenced by stock movement entries.
package warehouse

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ErrWarehouseIsNotConstructed is returned when a Warehouse instance was not
// created through NewWarehouse or RestoreWarehouse.
var ErrWarehouseIsNotConstructed = errors.New("Warehouse must be created via NewWarehouse constructor")

// Kind classifies a warehouse by its sorting capability and size.
type Kind int

const (
	// KindUnknown represents an invalid or undefined kind.
	KindUnknown Kind = iota

	// KindSmall is a small sortable facility.
	KindSmall

	// KindLarge is a large sortable facility.
	KindLarge

	// KindLargeNonSortable is a large facility for items that cannot go
	// through automated sorting.
	KindLargeNonSortable
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown:          "unknown",
		KindSmall:            "small",
		KindLarge:            "large",
		KindLargeNonSortable: "large non-sortable",
	}
}

// KindFromString parses "small", "large" or "large non-sortable".
func KindFromString(s string) (Kind, error) {
	for kind, str := range getKindStrings() {
		if kind != KindUnknown && str == s {
			return kind, nil
		}
	}
	return KindUnknown, errs.NewValueIsInvalidErrorWithCause("kind",
		fmt.Errorf("%q is not a valid warehouse kind", s))
}

// Validate checks that the Kind is one of the defined facility types.
func (k Kind) Validate() error {
	if k != KindSmall && k != KindLarge && k != KindLargeNonSortable {
		return errs.NewValueIsInvalidErrorWithCause("kind",
			fmt.Errorf("%d is not a valid warehouse kind", k))
	}
	return nil
}

// String implements fmt.Stringer. Safe to call on any Kind value.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "unknown"
}

// Warehouse is a storage facility. Immutable after construction.
type Warehouse struct {
	id      kernel.UUID
	address string
	kind    Kind

	isConstructed bool
}

// NewWarehouse creates a warehouse, validating its identifier, address and kind.
func NewWarehouse(id kernel.UUID, address string, kind Kind) (*Warehouse, error) {
	warehouse := &Warehouse{isConstructed: true}

	if err := errors.Join(
		warehouse.setID(id),
		warehouse.setAddress(address),
		warehouse.setKind(kind),
	); err != nil {
		return nil, err
	}

	return warehouse, nil
}

// RestoreWarehouse rebuilds a warehouse from persistence.
func RestoreWarehouse(id kernel.UUID, address string, kind Kind) (*Warehouse, error) {
	return NewWarehouse(id, address, kind)
}

// Validate ensures the Warehouse was built through a constructor.
func (w *Warehouse) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWarehouseIsNotConstructed
	}
	return nil
}

// IsEqual compares two warehouses by identifier.
func (w *Warehouse) IsEqual(other *Warehouse) bool {
	return other != nil && w.id.IsEqual(other.id)
}

// ID returns the warehouse's unique identifier.
func (w *Warehouse) ID() kernel.UUID {
	return w.id
}

// Address returns the physical address.
func (w *Warehouse) Address() string {
	return w.address
}

// Kind returns the facility type.
func (w *Warehouse) Kind() Kind {
	return w.kind
}

func (w *Warehouse) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *Warehouse) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	w.address = address
	return nil
}

func (w *Warehouse) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	w.kind = kind
	return nil
}
