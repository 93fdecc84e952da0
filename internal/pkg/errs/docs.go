// Package errs provides the standardized error types of the logistics core.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The taxonomy mirrors the failure modes of the domain:
//   - ValueIsRequiredError / ValueIsInvalidError: bad caller input
//   - ObjectNotFoundError: the requested entity does not exist
//   - ReferenceNotFoundError: a foreign-key target does not exist
//   - UniqueViolationError: a unique column collision (tracking code, email)
//   - InvalidTransitionError: an illegal shipment-status or return-state edge
//   - StorageUnavailableError: a transient storage failure, the only class
//     eligible for bounded automatic retry
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// Callers classify with errors.Is against the sentinels; the core never
// swallows an error silently.
package errs
