package store

import (
	"context"
	"time"

	"github.com/mvoronin/clinic-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists clinician accounts on the server.
type UserRepository interface {
	// CreateUser inserts a new account and returns it with server-assigned
	// fields (UserID, CreatedAt). Returns [ErrLoginAlreadyExists] when the
	// login is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByLogin looks an account up by its unique login. Returns
	// [ErrNoUserWasFound] when no such account exists.
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// RecordRepository persists versioned clinic records on the server. Every
// method is scoped to a single account: records of other users are invisible.
type RecordRepository interface {
	// ListSince returns all records of the collection whose updated_at is at
	// or after since, including soft-deleted ones so clients can remove them
	// locally. A zero since returns the whole collection.
	ListSince(ctx context.Context, userID int64, collection models.Collection, since time.Time) ([]models.Record, error)

	// GetByRemoteID fetches a single record by its server-assigned ID.
	// Returns [ErrRecordNotFound] when it does not exist.
	GetByRemoteID(ctx context.Context, userID int64, collection models.Collection, remoteID string) (models.Record, error)

	// GetByLocalID fetches a record by the client-assigned local ID used as
	// the create idempotency key. Returns [ErrRecordNotFound] when it does
	// not exist.
	GetByLocalID(ctx context.Context, userID int64, collection models.Collection, localID string) (models.Record, error)

	// CreateRecord inserts a new record at version 1 and returns it with
	// server-assigned timestamps. Returns [ErrDuplicateLocalID] when the
	// same client already created a record with this local ID.
	CreateRecord(ctx context.Context, userID int64, record models.Record) (models.Record, error)

	// UpdateRecord replaces the record's fields and bumps its version,
	// guarded by baseVersion. On a version mismatch it returns the current
	// server record together with [ErrVersionConflict].
	UpdateRecord(ctx context.Context, userID int64, collection models.Collection, remoteID string, baseVersion int64, fields models.FieldMap) (models.Record, error)

	// DeleteRecord soft-deletes the record and bumps its version, guarded by
	// baseVersion. Conflict semantics as for UpdateRecord.
	DeleteRecord(ctx context.Context, userID int64, collection models.Collection, remoteID string, baseVersion int64) (models.Record, error)
}
