package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new
	// clinician account fails because the login is already taken.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one account produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrRecordNotFound is returned when a query or update targets a record
	// that does not exist in the database.
	ErrRecordNotFound = errors.New("record was not found")

	// ErrVersionConflict is returned when an optimistic-locking check fails:
	// the base version supplied by the client does not match the current
	// version stored in the database, meaning another device has modified
	// the record since the client last synchronized.
	ErrVersionConflict = errors.New("record version conflict occurred")

	// ErrDuplicateLocalID is returned when a create collides with the unique
	// (user_id, collection, local_id) index. The caller should look up the
	// already-created record and answer idempotently.
	ErrDuplicateLocalID = errors.New("record with this local id already exists")

	// ErrQueueEntryNotFound is returned when a mutation queue operation
	// targets an entry that is not (or no longer) queued.
	ErrQueueEntryNotFound = errors.New("mutation queue entry was not found")

	// ErrRetryable marks a database failure that is classified as transient
	// (connection loss, deadlock rollback). The HTTP layer maps it to 503 so
	// clients treat the server as temporarily unavailable and retry later.
	ErrRetryable = errors.New("transient database error")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrEncodingFields is returned when a record's field map cannot be
	// serialised to, or parsed from, its JSON column representation.
	ErrEncodingFields = errors.New("failed to encode record fields")
)
