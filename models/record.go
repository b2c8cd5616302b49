package models

import "time"

// Collection identifies one syncable entity collection. Every record,
// queue entry and checkpoint is scoped to exactly one collection.
type Collection string

const (
	CollectionInsuranceCards  Collection = "insurance_cards"
	CollectionPayments        Collection = "payments"
	CollectionOutcomeMeasures Collection = "outcome_measures"
)

// Collections lists every collection the sync engine knows about, in the
// order they are synchronized.
var Collections = []Collection{
	CollectionInsuranceCards,
	CollectionPayments,
	CollectionOutcomeMeasures,
}

// Valid reports whether c names a known collection.
func (c Collection) Valid() bool {
	for _, known := range Collections {
		if c == known {
			return true
		}
	}
	return false
}

// Record is one syncable domain entity as held in the client's local store
// or returned by the server.
//
// LocalID is generated on the client that created the record and never
// changes; RemoteID is assigned by the server on first successful push and
// is empty until then. Version is incremented on every accepted mutation,
// local or server-side, and is monotonic for a given RemoteID across all
// observers. Synced is true iff the local copy is known identical to the
// last-seen server copy.
type Record struct {
	// LocalID is the client-generated, stable identifier of the record.
	LocalID string `json:"local_id"`

	// RemoteID is the server-assigned identifier, empty until the record
	// has been pushed successfully at least once.
	RemoteID string `json:"remote_id,omitempty"`

	// Collection names the entity collection the record belongs to.
	Collection Collection `json:"collection"`

	// Fields holds the synchronized field values of the record.
	Fields FieldMap `json:"fields"`

	// Version is the optimistic-locking version stamp.
	Version int64 `json:"version"`

	// Synced is true when the local copy matches the last-seen server copy.
	// Server responses always carry Synced=false; the client sets it.
	Synced bool `json:"-"`

	// Deleted marks a soft-deleted record.
	Deleted bool `json:"deleted,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table holding syncable records.
func (r Record) TableName() string {
	return "records"
}
