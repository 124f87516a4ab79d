package errs

import (
	"fmt"
	"strings"
)

// Sentinel errors for error classification via errors.Is.
var (
	ErrObjectNotFound         = fmt.Errorf("object not found")
	ErrObjectAlreadyExists    = fmt.Errorf("object already exists")
	ErrValueIsInvalid         = fmt.Errorf("value is invalid")
	ErrValueIsOutOfRange      = fmt.Errorf("value is out of range")
	ErrValueIsRequired        = fmt.Errorf("value is required")
	ErrInvalidStateTransition = fmt.Errorf("invalid state transition")
	ErrInvalidQuantity        = fmt.Errorf("quantity is invalid")
	ErrUnauthorized           = fmt.Errorf("operation is not permitted")
)

// sanitize strips line breaks from formatted values so a single error message
// always occupies one log line.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the given parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping a cause.
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

// ValueIsInvalidError indicates that a provided value is invalid.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the given parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping a cause.
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

// ValueIsOutOfRangeError indicates that a value falls outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError for the given parameter and bounds.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping a cause.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v (cause: %s)",
			ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ObjectNotFoundError indicates that a requested object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given parameter and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping a cause.
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

// ObjectAlreadyExistsError indicates that an object with the same identity
// is already stored, such as a taken username.
type ObjectAlreadyExistsError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectAlreadyExistsError creates an ObjectAlreadyExistsError for the given parameter and identifier.
func NewObjectAlreadyExistsError(paramName string, id any) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName, ID: id}
}

// NewObjectAlreadyExistsErrorWithCause creates an ObjectAlreadyExistsError wrapping a cause.
func NewObjectAlreadyExistsErrorWithCause(paramName string, id any, cause error) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectAlreadyExistsError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectAlreadyExists, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectAlreadyExists, e.ID))
}

func (e *ObjectAlreadyExistsError) Unwrap() error {
	return ErrObjectAlreadyExists
}

// InvalidStateTransitionError indicates an attempted lifecycle transition that
// the state machine does not allow, such as dispatching or editing an order
// item that has already been dispatched. The original state is unchanged.
type InvalidStateTransitionError struct {
	ParamName string
	Status    string
	Cause     error
}

// NewInvalidStateTransitionError creates an InvalidStateTransitionError for the
// given object and its current status.
func NewInvalidStateTransitionError(paramName, status string) *InvalidStateTransitionError {
	return &InvalidStateTransitionError{ParamName: paramName, Status: status}
}

// NewInvalidStateTransitionErrorWithCause creates an InvalidStateTransitionError wrapping a cause.
func NewInvalidStateTransitionErrorWithCause(paramName, status string, cause error) *InvalidStateTransitionError {
	return &InvalidStateTransitionError{ParamName: paramName, Status: status, Cause: cause}
}

func (e *InvalidStateTransitionError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s is %s (cause: %s)",
			ErrInvalidStateTransition, e.ParamName, e.Status, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s is %s", ErrInvalidStateTransition, e.ParamName, e.Status))
}

func (e *InvalidStateTransitionError) Unwrap() error {
	return ErrInvalidStateTransition
}

// InvalidQuantityError indicates a dispatched quantity outside the allowed
// bound (0, ordered quantity]. The original state is unchanged.
type InvalidQuantityError struct {
	ParamName string
	Value     int
	Max       int
	Cause     error
}

// NewInvalidQuantityError creates an InvalidQuantityError for the given
// quantity and its upper bound.
func NewInvalidQuantityError(paramName string, value, maxValue int) *InvalidQuantityError {
	return &InvalidQuantityError{ParamName: paramName, Value: value, Max: maxValue}
}

// NewInvalidQuantityErrorWithCause creates an InvalidQuantityError wrapping a cause.
func NewInvalidQuantityErrorWithCause(paramName string, value, maxValue int, cause error) *InvalidQuantityError {
	return &InvalidQuantityError{ParamName: paramName, Value: value, Max: maxValue, Cause: cause}
}

func (e *InvalidQuantityError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %d is %s, max value is %d (cause: %s)",
			ErrInvalidQuantity, e.Value, e.ParamName, e.Max, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %d is %s, max value is %d",
		ErrInvalidQuantity, e.Value, e.ParamName, e.Max))
}

func (e *InvalidQuantityError) Unwrap() error {
	return ErrInvalidQuantity
}

// UnauthorizedError indicates that the acting user's role does not permit the
// requested operation, or that the actor does not own the target object.
type UnauthorizedError struct {
	Role      string
	Operation string
	Cause     error
}

// NewUnauthorizedError creates an UnauthorizedError for the given role and operation.
func NewUnauthorizedError(role, operation string) *UnauthorizedError {
	return &UnauthorizedError{Role: role, Operation: operation}
}

// NewUnauthorizedErrorWithCause creates an UnauthorizedError wrapping a cause.
func NewUnauthorizedErrorWithCause(role, operation string, cause error) *UnauthorizedError {
	return &UnauthorizedError{Role: role, Operation: operation, Cause: cause}
}

func (e *UnauthorizedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: role %s cannot %s (cause: %s)",
			ErrUnauthorized, e.Role, e.Operation, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: role %s cannot %s", ErrUnauthorized, e.Role, e.Operation))
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}
