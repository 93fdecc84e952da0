package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is.
// Every constructed error in this package unwraps to exactly one of these.
var (
	ErrValueIsRequired    = errors.New("value is required")
	ErrValueIsInvalid     = errors.New("value is invalid")
	ErrObjectNotFound     = errors.New("object not found")
	ErrReferenceNotFound  = errors.New("referenced object not found")
	ErrUniqueViolation    = errors.New("unique constraint violation")
	ErrInvalidTransition  = errors.New("invalid state transition")
	ErrStorageUnavailable = errors.New("storage temporarily unavailable")
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r", " "), "\n", " ")
}

// ValueIsRequiredError indicates a mandatory value was missing or empty.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates a value was present but failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ObjectNotFoundError indicates the entity a caller asked for does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ReferenceNotFoundError indicates a foreign-key target does not exist.
// Distinct from ObjectNotFoundError: the missing object is not the one the
// caller asked to operate on but something it points at.
type ReferenceNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewReferenceNotFoundError(paramName string, id any) *ReferenceNotFoundError {
	return &ReferenceNotFoundError{ParamName: paramName, ID: id}
}

func NewReferenceNotFoundErrorWithCause(paramName string, id any, cause error) *ReferenceNotFoundError {
	return &ReferenceNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ReferenceNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrReferenceNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s is %s", ErrReferenceNotFound, e.ParamName, e.ID))
}

func (e *ReferenceNotFoundError) Unwrap() error {
	return ErrReferenceNotFound
}

// UniqueViolationError indicates a value collided with an existing row on a
// unique column (tracking code, employee email). The caller must pick a new
// value; the operation is never retried automatically.
type UniqueViolationError struct {
	ParamName string
	Value     string
	Cause     error
}

func NewUniqueViolationError(paramName, value string) *UniqueViolationError {
	return &UniqueViolationError{ParamName: paramName, Value: value}
}

func NewUniqueViolationErrorWithCause(paramName, value string, cause error) *UniqueViolationError {
	return &UniqueViolationError{ParamName: paramName, Value: value, Cause: cause}
}

func (e *UniqueViolationError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s %q already in use (cause: %s)",
			ErrUniqueViolation, e.ParamName, e.Value, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s %q already in use", ErrUniqueViolation, e.ParamName, e.Value))
}

func (e *UniqueViolationError) Unwrap() error {
	return ErrUniqueViolation
}

// InvalidTransitionError indicates a state machine rejected the requested edge.
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
	Cause  error
}

func NewInvalidTransitionError(entity, from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{Entity: entity, From: from, To: to}
}

func NewInvalidTransitionErrorWithCause(entity, from, to string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{Entity: entity, From: from, To: to, Cause: cause}
}

func (e *InvalidTransitionError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s cannot go from %s to %s (cause: %s)",
			ErrInvalidTransition, e.Entity, e.From, e.To, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s cannot go from %s to %s", ErrInvalidTransition, e.Entity, e.From, e.To))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// StorageUnavailableError indicates a transient storage failure (deadlock,
// serialization conflict, lost connection). This is the only class callers may
// retry, and only a bounded number of times.
type StorageUnavailableError struct {
	Op    string
	Cause error
}

func NewStorageUnavailableError(op string, cause error) *StorageUnavailableError {
	return &StorageUnavailableError{Op: op, Cause: cause}
}

func (e *StorageUnavailableError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrStorageUnavailable, e.Op, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrStorageUnavailable, e.Op))
}

func (e *StorageUnavailableError) Unwrap() error {
	return ErrStorageUnavailable
}
