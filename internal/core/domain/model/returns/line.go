package returns

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// Line is a single returned product with its quantity.
// Value object, immutable after construction.
type Line struct {
	productID kernel.UUID
	quantity  int
}

// NewLine creates a return line. Quantity must be positive.
func NewLine(productID kernel.UUID, quantity int) (Line, error) {
	if err := errors.Join(
		productID.Validate(),
		validateQuantity(quantity),
	); err != nil {
		return Line{}, err
	}

	return Line{
		productID: productID,
		quantity:  quantity,
	}, nil
}

func validateQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("must be positive, got %d", quantity))
	}
	return nil
}

// ProductID returns the returned product's identifier.
func (l Line) ProductID() kernel.UUID {
	return l.productID
}

// Quantity returns the number of units being returned.
func (l Line) Quantity() int {
	return l.quantity
}

// IsEqual compares two lines by product and quantity.
func (l Line) IsEqual(other Line) bool {
	return l.productID.IsEqual(other.productID) && l.quantity == other.quantity
}
