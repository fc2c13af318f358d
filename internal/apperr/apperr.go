// Package apperr holds the error catalog shared by services and handlers.
// Handlers map these onto HTTP statuses; anything unrecognized is a 500 and
// only its generic message leaves the server.
package apperr

import (
	"errors"
	"net/http"
)

var (
	// auth
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrForbidden          = errors.New("forbidden")

	// validation
	ErrValidation = errors.New("validation error")

	// attendance state machine
	ErrAlreadyCheckedIn  = errors.New("check-in already recorded")
	ErrNoCheckIn         = errors.New("cannot check out before check-in")
	ErrAlreadyCheckedOut = errors.New("check-out already recorded")

	// data
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// self-protection rules (admin deleting own account)
	ErrSelfDelete = errors.New("cannot delete your own account")
)

// Validation wraps ErrValidation with a field-specific message.
func Validation(msg string) error {
	return &kindError{kind: ErrValidation, msg: msg}
}

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

// HTTPStatus maps a service error to the status its handler should return.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrSelfDelete):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAlreadyCheckedIn),
		errors.Is(err, ErrNoCheckIn),
		errors.Is(err, ErrAlreadyCheckedOut),
		errors.Is(err, ErrAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
