// Package errs provides standardized error types for the paybook order stub.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes error types for the common failure scenarios:
//   - ValueIsRequiredError: for when a required value is missing or blank
//   - ValueIsInvalidError: for when a value violates a validation rule
//   - ObjectNotFoundError: for when an object cannot be found by identifier
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify the error
//
// The HTTP adapter relies on the sentinel errors to map validation failures
// and missing objects to their transport status codes without inspecting
// error strings.
package errs
