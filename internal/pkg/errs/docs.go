// Package errs provides standardized error types for the order management
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside its bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - InvalidStateTransitionError: For lifecycle transitions the order item
//     state machine does not allow
//   - InvalidQuantityError: For dispatched quantities outside (0, ordered]
//   - UnauthorizedError: For operations the acting role does not permit
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// All of these represent recoverable conditions returned to the caller;
// none is treated as process-fatal. Persistence failures are passed through
// untouched and are the only class that aborts an operation.
package errs
