// Package errs provides standardized error types for the fleet operations core.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type carrying the error details
//   - Constructor functions with and without an underlying cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// Domain-specific errors (illegal status transitions, over-collection and the
// like) are declared next to the code that raises them and wrap these types
// where the parameter/value shape fits, so callers can classify any failure
// with errors.Is against a small, stable set of sentinels.
package errs
