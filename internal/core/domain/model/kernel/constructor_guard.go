package kernel

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when the
// caller passes a nil validation error, so validation always fails with a
// meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects whether a struct was created through its designated
// constructor or left as a zero value. Domain objects (aggregates, commands,
// queries) embed a guard and set it via NewConstructorGuard inside their
// constructor; their Validate method then rejects zero-value instances.
//
// Example:
//
//	type Movement struct {
//	    quantity int
//	    guard    kernel.ConstructorGuard
//	}
//
//	func NewMovement(quantity int) (Movement, error) {
//	    if quantity == 0 {
//	        return Movement{}, errs.NewValueIsInvalidError("quantity")
//	    }
//	    return Movement{quantity: quantity, guard: kernel.NewConstructorGuard()}, nil
//	}
//
//	func (m Movement) Validate() error {
//	    return m.guard.Validate(ErrMovementIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was built through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
