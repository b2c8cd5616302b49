package service

import (
	"errors"
	"fmt"

	"github.com/mvoronin/clinic-sync/models"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong login or password")

	ErrTokenIsExpired = errors.New("token is expired")

	// ErrUnknownCollection is returned when a request names a collection the
	// server does not sync.
	ErrUnknownCollection = errors.New("unknown collection")
)

// VersionConflictError reports a failed optimistic-lock check together with
// the server's current copy of the record, so the transport layer can build
// the 409 response body without another lookup.
type VersionConflictError struct {
	Current models.Record
}

func (e *VersionConflictError) Error() string {
	return fmt.Sprintf("version conflict: server holds version %d", e.Current.Version)
}

// Is makes errors.Is(err, store.ErrVersionConflict) style checks work via
// the service layer's own sentinel chain.
func (e *VersionConflictError) Unwrap() error {
	return ErrVersionConflict
}

// ErrVersionConflict is the sentinel wrapped by [VersionConflictError].
var ErrVersionConflict = errors.New("record version conflict")
