package adapter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mvoronin/clinic-sync/models"
)

var (
	ErrBadRequest      = errors.New("bad request")
	ErrUnauthorized    = errors.New("client unauthorized")
	ErrNotFound        = errors.New("not found")
	ErrVersionConflict = errors.New("version conflict")
	ErrValidation      = errors.New("validation rejected")
	ErrUnavailable     = errors.New("server unavailable")
)

// ConflictError carries the server's current copy of a record alongside
// the 409 response. errors.Is(err, ErrVersionConflict) matches it.
type ConflictError struct {
	CurrentVersion int64
	CurrentRecord  models.Record
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("version conflict: server holds version %d", e.CurrentVersion)
}

func (e *ConflictError) Unwrap() error {
	return ErrVersionConflict
}

// ValidationError carries the server's user-facing validation messages
// from a 422 response. errors.Is(err, ErrValidation) matches it.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation rejected: " + strings.Join(e.Messages, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
