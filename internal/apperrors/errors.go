package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the request conflicts with the current state of a resource.
var ErrConflict = errors.New("resource conflict")

// ErrForbidden indicates that the caller lacks the capability required for the action.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInternal is returned when an unexpected failure should not leak details to the caller.
var ErrInternal = errors.New("internal error")

// ErrStaleVersion indicates a compare-and-swap write lost to a concurrent writer.
var ErrStaleVersion = errors.New("stale version")

// ErrInvalidTransition indicates an approval workflow event is not allowed from the current state.
var ErrInvalidTransition = errors.New("invalid transition")

// ErrCurrencyMismatch indicates money arithmetic between different currencies.
var ErrCurrencyMismatch = errors.New("currency mismatch")

// ErrInvalidRentModel indicates a lease lacks the fields its rent model requires.
var ErrInvalidRentModel = errors.New("invalid rent model")

// ErrDateOutOfRange indicates a date outside the range a computation is defined for.
var ErrDateOutOfRange = errors.New("date out of range")

// AppError carries an HTTP-ish status code alongside a wrapped cause.
// Repositories use it to attach context to driver errors.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewConflictError creates an AppError that matches ErrConflict.
func NewConflictError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message, Err: ErrConflict}
}

// NewValidationFailedError creates an AppError that matches ErrValidation.
func NewValidationFailedError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

// FieldViolation describes one violated invariant.
type FieldViolation struct {
	Field   string `json:"field"`
	Value   any    `json:"value,omitempty"`
	Message string `json:"message"`
}

// ValidationError lists every violated invariant of an input, not just the first.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Field + ": " + v.Message
	}
	return "validation error: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Add records a violation.
func (e *ValidationError) Add(field string, value any, message string) {
	e.Violations = append(e.Violations, FieldViolation{Field: field, Value: value, Message: message})
}

// HasField reports whether a violation was recorded for field.
func (e *ValidationError) HasField(field string) bool {
	for _, v := range e.Violations {
		if v.Field == field {
			return true
		}
	}
	return false
}

// OrNil returns nil when no violations were recorded.
func (e *ValidationError) OrNil() error {
	if len(e.Violations) == 0 {
		return nil
	}
	return e
}

// NewValidationError builds a ValidationError with a single violation.
func NewValidationError(field string, value any, message string) *ValidationError {
	ve := &ValidationError{}
	ve.Add(field, value, message)
	return ve
}

// InvalidTransitionError reports a workflow event attempted from a state that does not allow it.
type InvalidTransitionError struct {
	Current string
	Event   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition: cannot %s from %s", e.Event, e.Current)
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// CurrencyMismatchError reports the two currencies that could not be combined.
type CurrencyMismatchError struct {
	Left  string
	Right string
}

func (e *CurrencyMismatchError) Error() string {
	return fmt.Sprintf("currency mismatch: %s vs %s", e.Left, e.Right)
}

func (e *CurrencyMismatchError) Is(target error) bool {
	return target == ErrCurrencyMismatch
}

// InvalidRentModelError names the rent model and the field it is missing.
type InvalidRentModelError struct {
	Model string
	Field string
}

func (e *InvalidRentModelError) Error() string {
	return fmt.Sprintf("invalid rent model %s: %s is required", e.Model, e.Field)
}

func (e *InvalidRentModelError) Is(target error) bool {
	return target == ErrInvalidRentModel
}

// DateOutOfRangeError reports a date outside the supported range.
type DateOutOfRangeError struct {
	Field string
	Date  string
	Min   string
}

func (e *DateOutOfRangeError) Error() string {
	return fmt.Sprintf("date out of range: %s %s is before %s", e.Field, e.Date, e.Min)
}

func (e *DateOutOfRangeError) Is(target error) bool {
	return target == ErrDateOutOfRange
}
