package service

import (
	"context"
	"time"

	"github.com/mvoronin/clinic-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService handles clinician account registration, credential
// verification and JWT lifecycle on the server.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// RecordService owns the server side of the sync protocol: incremental
// reads and version-guarded writes of clinic records.
type RecordService interface {
	// Pull returns all records of the collection changed at or after since,
	// stamped with the server clock reading clients must use as their next
	// checkpoint.
	Pull(ctx context.Context, userID int64, collection models.Collection, since time.Time) (models.PullResponse, error)

	// Create stores a new record. The client-assigned local ID makes the
	// call idempotent: replaying a create returns the already-assigned
	// remote ID and version with created == false instead of duplicating.
	Create(ctx context.Context, userID int64, collection models.Collection, req models.CreateRequest) (resp models.CreateResponse, created bool, err error)

	// Update replaces a record's fields, guarded by the base version the
	// client last saw. A stale base returns a *VersionConflictError carrying
	// the current server record.
	Update(ctx context.Context, userID int64, collection models.Collection, remoteID string, req models.UpdateRequest) (models.UpdateResponse, error)

	// Delete soft-deletes a record, guarded by baseVersion. Conflict
	// semantics as for Update.
	Delete(ctx context.Context, userID int64, collection models.Collection, remoteID string, baseVersion int64) error
}
