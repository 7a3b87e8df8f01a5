package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the stable, machine-readable classification carried by every AppError.
type Kind string

const (
	KindShowNotFound      Kind = "SHOW_NOT_FOUND"
	KindBookingNotFound   Kind = "BOOKING_NOT_FOUND"
	KindDuplicateBooking  Kind = "DUPLICATE_BOOKING"
	KindShowFull          Kind = "SHOW_FULL"
	KindInvalidTransition Kind = "INVALID_TRANSITION"
	KindUnauthorized      Kind = "UNAUTHORIZED"
	KindValidationFailed  Kind = "VALIDATION_FAILED"
	KindDependencyFailure Kind = "DEPENDENCY_FAILURE"
	KindForbidden         Kind = "FORBIDDEN"
	KindConflict          Kind = "CONFLICT"
	KindRateLimited       Kind = "RATE_LIMITED"
	KindInternal          Kind = "INTERNAL_ERROR"
)

// HTTPStatus returns the status code a kind is reported with.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindShowNotFound, KindBookingNotFound:
		return http.StatusNotFound
	case KindDuplicateBooking, KindShowFull, KindInvalidTransition, KindValidationFailed:
		return http.StatusBadRequest
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	case KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

type AppError struct {
	Kind       Kind           `json:"kind"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
	Err        error          `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches any AppError of the same kind, so errors.Is(err, apperrors.ShowFull()) works.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if errors.As(target, &t) {
		return t.Kind == e.Kind
	}
	return false
}

func (e *AppError) WithDetails(details map[string]any) *AppError {
	e.Details = details
	return e
}

func New(kind Kind, message string) *AppError {
	return &AppError{
		Kind:       kind,
		Message:    message,
		HTTPStatus: kind.HTTPStatus(),
	}
}

func Wrap(err error, kind Kind, message string) *AppError {
	appErr := New(kind, message)
	appErr.Err = err
	return appErr
}

func ShowNotFound() *AppError {
	return New(KindShowNotFound, "Show not found")
}

func BookingNotFound() *AppError {
	return New(KindBookingNotFound, "Booking not found")
}

func DuplicateBooking() *AppError {
	return New(KindDuplicateBooking, "You have already requested a booking for this show")
}

func ShowFull() *AppError {
	return New(KindShowFull, "No slots available for this show")
}

func InvalidTransition(from, to string) *AppError {
	return New(KindInvalidTransition, fmt.Sprintf("Cannot change booking status from %s to %s", from, to)).
		WithDetails(map[string]any{"from": from, "to": to})
}

// Unauthorized is a generic denial. It does not say whether the target exists.
func Unauthorized() *AppError {
	return New(KindUnauthorized, "Unauthorized")
}

// Unauthenticated is an UNAUTHORIZED error for a missing or unusable credential.
func Unauthenticated(message string) *AppError {
	return New(KindUnauthorized, message)
}

func Validation(message string, details map[string]any) *AppError {
	return New(KindValidationFailed, message).WithDetails(details)
}

func Forbidden(message string) *AppError {
	return New(KindForbidden, message)
}

func Conflict(message string) *AppError {
	return New(KindConflict, message)
}

func RateLimited(limit int, resetTime int64) *AppError {
	return New(KindRateLimited, "Rate limit exceeded").
		WithDetails(map[string]any{"limit": limit, "reset_time": resetTime})
}

func Dependency(message string, err error) *AppError {
	return Wrap(err, KindDependencyFailure, message)
}

func Internal(message string, err error) *AppError {
	return Wrap(err, KindInternal, message)
}

// KindOf returns the kind of the first AppError in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("An unexpected error occurred", err)
}
