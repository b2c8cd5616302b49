package store

import (
	"context"
	"time"

	"github.com/mvoronin/clinic-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalRecordRepository is the on-device store of clinic records. All reads
// the UI performs go through it, never through the network.
type LocalRecordRepository interface {
	// SaveRecord upserts a record keyed by (collection, local_id).
	SaveRecord(ctx context.Context, record models.Record) error

	// WriteWithMutation upserts the record and enqueues (coalescing) its
	// mutation entry in one transaction, so a local edit and the queue entry
	// that will push it commit or roll back together. A soft-deleted record
	// the server has never seen is hard-deleted instead of upserted.
	WriteWithMutation(ctx context.Context, record models.Record, entry models.MutationEntry) error

	// GetRecord fetches a single record. Returns [ErrRecordNotFound] when it
	// does not exist locally.
	GetRecord(ctx context.Context, collection models.Collection, localID string) (models.Record, error)

	// GetRecordByRemoteID fetches a record by its server-assigned ID.
	// Returns [ErrRecordNotFound] when no local record carries that ID.
	GetRecordByRemoteID(ctx context.Context, collection models.Collection, remoteID string) (models.Record, error)

	// ListRecords returns all live (not soft-deleted) records of the
	// collection ordered by creation time.
	ListRecords(ctx context.Context, collection models.Collection) ([]models.Record, error)

	// ListUnsynced returns the records of the collection whose local changes
	// have not been acknowledged by the server, including soft-deleted ones.
	ListUnsynced(ctx context.Context, collection models.Collection) ([]models.Record, error)

	// ApplyServerRecord overwrites the local copy with the server's version
	// of the record and marks it synced. Soft-deleted server records are
	// removed locally instead.
	ApplyServerRecord(ctx context.Context, record models.Record) error

	// MarkSynced stamps the record with its server-assigned remote ID and
	// version after a successful push.
	MarkSynced(ctx context.Context, collection models.Collection, localID, remoteID string, version int64) error

	// RemoveRecord hard-deletes the local row. Used after the server
	// confirms a delete and when a server tombstone is pulled.
	RemoveRecord(ctx context.Context, collection models.Collection, localID string) error
}

// MutationQueueRepository is the durable FIFO of local writes awaiting push.
// Entries are keyed by (collection, local_id): a second write to the same
// record coalesces into the existing entry instead of appending.
type MutationQueueRepository interface {
	// Enqueue inserts the entry or coalesces it into an existing one for the
	// same record. A delete arriving over an unsynced create cancels both.
	Enqueue(ctx context.Context, entry models.MutationEntry) error

	// Pending returns all queued entries in enqueue order.
	Pending(ctx context.Context) ([]models.MutationEntry, error)

	// PendingForCollection returns queued entries of one collection in
	// enqueue order.
	PendingForCollection(ctx context.Context, collection models.Collection) ([]models.MutationEntry, error)

	// GetEntry fetches the queued entry for a record. Returns
	// [ErrQueueEntryNotFound] when the record has no pending mutation.
	GetEntry(ctx context.Context, collection models.Collection, localID string) (models.MutationEntry, error)

	// Remove drops the entry after a successful push or a resolution that
	// discards the local change.
	Remove(ctx context.Context, collection models.Collection, localID string) error

	// MarkRejected flags an entry the server refused with a validation
	// error. The push engine skips rejected entries until a later local
	// edit coalesces onto the entry and clears the flag.
	MarkRejected(ctx context.Context, collection models.Collection, localID string) error

	// IncrementRetry bumps the entry's retry counter after a failed push
	// attempt.
	IncrementRetry(ctx context.Context, collection models.Collection, localID string) error

	// Len reports how many mutations are waiting to be pushed.
	Len(ctx context.Context) (int, error)
}

// CheckpointRepository stores the per-collection pull checkpoint, i.e. the
// server clock reading of the last successful pull.
type CheckpointRepository interface {
	// Checkpoint returns the stored checkpoint, or the zero time when the
	// collection has never been pulled.
	Checkpoint(ctx context.Context, collection models.Collection) (time.Time, error)

	// SetCheckpoint stores the checkpoint for the collection.
	SetCheckpoint(ctx context.Context, collection models.Collection, pulledAt time.Time) error
}

// DeviceRepository stores the single-row device state, currently the bcrypt
// hash of the offline unlock PIN.
type DeviceRepository interface {
	// PINHash returns the stored PIN hash, or [ErrRecordNotFound] when no
	// PIN has been set on this device.
	PINHash(ctx context.Context) (string, error)

	// SetPINHash stores (or replaces) the device PIN hash.
	SetPINHash(ctx context.Context, hash string) error
}
