package models

// Resolution is the outcome of a user-mediated conflict resolution:
// either the server copy or the client's pending edit wins.
type Resolution string

const (
	ResolutionServer Resolution = "server"
	ResolutionClient Resolution = "client"
)

// FieldDiff is one row of the field-by-field comparison shown in the
// conflict dialog.
type FieldDiff struct {
	// Label is the human-readable field name (e.g. "Coverage %").
	Label string `json:"label"`

	// Local is the value the client's pending edit would write.
	Local string `json:"local_value"`

	// Server is the value the server currently holds.
	Server string `json:"server_value"`
}

// Conflict describes one record whose local pending edit and server copy
// have diverged from a common baseline. Conflicts are transient: they are
// built by the detector, consumed by the resolution coordinator, and never
// persisted.
type Conflict struct {
	// Collection names the entity collection the conflict belongs to.
	Collection Collection

	// LocalID identifies the conflicting record.
	LocalID string

	// Local holds the field values the client's queued mutation would write.
	Local FieldMap

	// Server is the authoritative current server copy of the record.
	Server Record

	// Fields is the rendered field-by-field diff for display, covering
	// every field that differs between Local and Server.Fields.
	Fields []FieldDiff
}

// ConflictPrompt is the message the sync engine sends to the UI layer when
// a conflict needs a human decision. The UI renders Conflict.Fields and
// writes the chosen side to Reply; closing the dialog without choosing is
// reported by the coordinator as ResolutionServer.
type ConflictPrompt struct {
	Conflict Conflict
	Reply    chan<- Resolution
}

// BuildFieldDiffs renders the differing fields of local and server into
// display rows, using the collection's field label table. Fields without a
// registered label fall back to the raw field name.
func BuildFieldDiffs(collection Collection, local, server FieldMap) []FieldDiff {
	keys := local.DiffKeys(server)
	diffs := make([]FieldDiff, 0, len(keys))
	for _, key := range keys {
		diffs = append(diffs, FieldDiff{
			Label:  FieldLabel(collection, key),
			Local:  local[key],
			Server: server[key],
		})
	}
	return diffs
}
