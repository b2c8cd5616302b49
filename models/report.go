package models

import "time"

// SyncReport summarises one sync run for a collection. It is assembled by
// the orchestrator, handed to the caller for display, and then discarded;
// only the per-collection checkpoint survives between runs.
type SyncReport struct {
	// Collection the run was executed for.
	Collection Collection `json:"collection"`

	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at"`

	// Pulled counts server records merged into the local store.
	Pulled int `json:"pulled"`

	// Pushed counts queue entries acknowledged by the server.
	Pushed int `json:"pushed"`

	// Conflicts counts records that required user-mediated resolution.
	Conflicts int `json:"conflicts"`

	// Errors collects user-facing error messages, chiefly validation
	// messages passed through verbatim from the server.
	Errors []string `json:"errors,omitempty"`
}

// Merge folds other into r, summing counters and appending errors.
func (r *SyncReport) Merge(other SyncReport) {
	r.Pulled += other.Pulled
	r.Pushed += other.Pushed
	r.Conflicts += other.Conflicts
	r.Errors = append(r.Errors, other.Errors...)
}
