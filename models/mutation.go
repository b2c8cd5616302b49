package models

import "time"

// Operation describes the kind of local change a mutation queue entry
// carries.
type Operation string

const (
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// MutationEntry is one pending, not-yet-acknowledged local change waiting
// in the durable mutation queue.
//
// The queue holds at most one entry per (Collection, LocalID): a later
// local edit coalesces into the existing entry instead of appending, so
// the entry always carries the latest field values. Base preserves the
// field values the very first edit started from — it is what the conflict
// detector compares server state against to recognise the
// "server already holds what we were about to write" case.
type MutationEntry struct {
	// Collection names the entity collection the mutation belongs to.
	Collection Collection `json:"collection"`

	// LocalID identifies the record the mutation applies to.
	LocalID string `json:"local_id"`

	// Op is the kind of change: create, update or delete.
	Op Operation `json:"op"`

	// Fields holds the field values to send. Empty for deletes.
	Fields FieldMap `json:"fields,omitempty"`

	// Base is the pre-edit snapshot of the record's fields, captured when
	// the first coalesced edit was made. Empty for creates.
	Base FieldMap `json:"base,omitempty"`

	// BaseVersion is the record version the edit was made against.
	// Zero for creates.
	BaseVersion int64 `json:"base_version"`

	// EnqueuedAt is when the entry first entered the queue. Coalescing
	// keeps the original timestamp so FIFO order is preserved.
	EnqueuedAt time.Time `json:"enqueued_at"`

	// RetryCount counts transient push failures for this entry.
	RetryCount int `json:"retry_count"`

	// Rejected marks an entry the server refused with a validation error.
	// The push engine skips rejected entries; a later local edit coalescing
	// onto the entry clears the flag and re-arms it for push.
	Rejected bool `json:"rejected"`
}

// Coalesce folds a newer edit for the same record into e and returns the
// combined entry. The returned entry keeps e's Op (a create stays a create
// until acknowledged), Base, BaseVersion and EnqueuedAt, and takes the
// newer field values. A delete wins over any pending field values.
func (e MutationEntry) Coalesce(newer MutationEntry) MutationEntry {
	out := e
	out.Fields = newer.Fields
	out.Rejected = false

	if newer.Op == OpDelete {
		out.Op = OpDelete
		out.Fields = nil
	}

	return out
}

// TableName returns the name of the database table backing the queue.
func (e MutationEntry) TableName() string {
	return "mutation_queue"
}
