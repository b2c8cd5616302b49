package service

import "github.com/mvoronin/clinic-sync/models"

// conflictDetector implements [ConflictDetector].
//
// A version rejection from the server is necessary but not sufficient for a
// conflict: if the record advanced on the server but now carries exactly the
// values the local mutation wanted, the change has effectively already been
// made (typically by the same clinician on another device) and prompting
// would only train users to dismiss dialogs.
type conflictDetector struct{}

// NewConflictDetector constructs a [ConflictDetector].
func NewConflictDetector() ConflictDetector {
	return &conflictDetector{}
}

// Detect implements [ConflictDetector].
func (d *conflictDetector) Detect(entry models.MutationEntry, server models.Record) (models.Conflict, bool) {
	switch entry.Op {
	case models.OpDelete:
		// Local wants the record gone. If the server already deleted it the
		// intent is satisfied; otherwise the server-side edit and the local
		// delete genuinely disagree.
		if server.Deleted {
			return models.Conflict{}, false
		}
	default:
		if server.Deleted {
			// Edit of a record someone else deleted. The clinician must
			// choose between reviving it and letting it go.
			break
		}
		if server.Fields.Equal(entry.Fields) {
			return models.Conflict{}, false
		}
	}

	local := entry.Fields
	if entry.Op == models.OpDelete {
		// For a delete the "local side" shown to the user is the record as
		// they last saw it.
		local = entry.Base
	}

	return models.Conflict{
		Collection: entry.Collection,
		LocalID:    entry.LocalID,
		Local:      local,
		Server:     server,
		Fields:     models.BuildFieldDiffs(entry.Collection, local, server.Fields),
	}, true
}
