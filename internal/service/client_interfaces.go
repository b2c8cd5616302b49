package service

import (
	"context"
	"time"

	"github.com/mvoronin/clinic-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService handles clinician sign-in on the device: online
// registration and login against the server, plus the offline unlock PIN
// that gates the local database when no connection is available.
type ClientAuthService interface {
	// Register creates an account on the server and leaves the adapter
	// holding a fresh bearer token.
	Register(ctx context.Context, user models.User) error

	// Login authenticates against the server and returns the signed token
	// with the account identifier.
	Login(ctx context.Context, user models.User) (models.Token, error)

	// SetPIN stores the offline unlock PIN for this device.
	SetPIN(ctx context.Context, pin string) error

	// HasPIN reports whether an unlock PIN has been set on this device.
	HasPIN(ctx context.Context) bool

	// UnlockOffline verifies the PIN against the stored hash, granting
	// access to local records without a server round trip.
	UnlockOffline(ctx context.Context, pin string) error
}

// ClientRecordService is the local-first write path. Every read is served
// from the on-device store; every write lands in the store and the mutation
// queue in the same call, and reaches the server only on the next sync.
type ClientRecordService interface {
	// List returns the live records of a collection from the local store.
	List(ctx context.Context, collection models.Collection) ([]models.Record, error)

	// Get returns a single record from the local store.
	Get(ctx context.Context, collection models.Collection, localID string) (models.Record, error)

	// Create validates fields, assigns a local ID and stores the record
	// locally with a queued create mutation.
	Create(ctx context.Context, collection models.Collection, fields models.FieldMap) (models.Record, error)

	// Update validates fields and stores the edit locally with a queued
	// update mutation. The snapshot of the record before its first pending
	// edit becomes the conflict-detection base.
	Update(ctx context.Context, collection models.Collection, localID string, fields models.FieldMap) (models.Record, error)

	// Delete hides the record locally and queues a delete mutation. Deleting
	// a record the server has never seen cancels the queued create instead.
	Delete(ctx context.Context, collection models.Collection, localID string) error

	// PendingCount reports how many local changes await push.
	PendingCount(ctx context.Context) (int, error)
}

// NetworkMonitor answers the question "can we reach the server right now".
// Reachability is probed, never assumed: an interface being up says nothing
// about the server across a clinic's flaky uplink.
type NetworkMonitor interface {
	// IsOnline probes the server health endpoint and reports the outcome.
	// The sync orchestrator calls it immediately before every run.
	IsOnline(ctx context.Context) bool

	// LastKnown returns the cached outcome of the most recent probe without
	// touching the network. The status bar uses it to label the UI
	// online/offline.
	LastKnown() bool
}

// PullEngine brings server-side changes into the local store.
type PullEngine interface {
	// Pull fetches records changed since the collection's checkpoint,
	// applies them locally and advances the checkpoint to the server clock
	// reading of this pull. If any record fails to apply the checkpoint
	// stays put and Pull returns an error, so the next run re-fetches the
	// batch. Records with pending local mutations are left untouched: the
	// conflict with the server's copy is detected and reconciled when the
	// queued mutation is pushed, not during the pull.
	Pull(ctx context.Context, collection models.Collection) (models.SyncReport, error)
}

// ConflictDetector decides whether a rejected push is a genuine conflict
// that needs the clinician's judgement.
type ConflictDetector interface {
	// Detect compares the queued mutation with the server's current record.
	// It reports genuine == false when the server already holds the local
	// values (someone else made the same change), in which case the mutation
	// can be discarded as already applied.
	Detect(entry models.MutationEntry, server models.Record) (models.Conflict, bool)
}

// ConflictResolver hands genuine conflicts to the user interface and blocks
// the push until a decision comes back.
type ConflictResolver interface {
	// Resolve delivers the conflict as a prompt and waits for the reply.
	// Cancelling ctx abandons the prompt and returns ctx.Err().
	Resolve(ctx context.Context, conflict models.Conflict) (models.Resolution, error)

	// Prompts is consumed by the UI layer; each prompt carries a reply
	// channel the UI must answer exactly once.
	Prompts() <-chan models.ConflictPrompt
}

// PushEngine replays the mutation queue against the server.
type PushEngine interface {
	// Push sends the collection's queued mutations in enqueue order. Version
	// rejections run through conflict detection and resolution; a network
	// failure stops the run with the remaining entries intact.
	Push(ctx context.Context, collection models.Collection) (models.SyncReport, error)
}

// ClientSyncService orchestrates full synchronisation runs: connectivity
// check, then pull, then push, per collection, with at most one run per
// collection in flight.
type ClientSyncService interface {
	// SyncAll synchronises every collection and returns the merged report.
	SyncAll(ctx context.Context) (models.SyncReport, error)

	// SyncCollection synchronises one collection. Returns [ErrOffline] when
	// the server is unreachable and [ErrSyncInProgress] when a run for this
	// collection is already active.
	SyncCollection(ctx context.Context, collection models.Collection) (models.SyncReport, error)
}

// ClientSyncJob is the background worker that triggers periodic syncs while
// the app is running.
type ClientSyncJob interface {
	// Start launches the background sync goroutine. It syncs every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
