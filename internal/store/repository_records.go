package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"

	"github.com/mvoronin/clinic-sync/internal/logger"
	"github.com/mvoronin/clinic-sync/models"
)

// recordRepository is the PostgreSQL-backed implementation of
// [RecordRepository]. Fields of a record are stored as a JSONB column so all
// collections share one table; the collection name is a discriminator column.
type recordRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRecordRepository constructs a [RecordRepository] backed by the provided
// database connection and logger.
func NewRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	logger.Debug().Msg("creating record repository")
	return &recordRepository{
		db:     db,
		logger: logger,
	}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ListSince implements [RecordRepository]. The since filter is applied with
// >= rather than > so that records stamped exactly at the checkpoint are
// re-sent instead of silently skipped.
func (r *recordRepository) ListSince(ctx context.Context, userID int64, collection models.Collection, since time.Time) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	builder := psql.
		Select(recordColumns...).
		From("records").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"collection": collection}).
		OrderBy("updated_at ASC, remote_id ASC")
	if !since.IsZero() {
		builder = builder.Where(sq.GtOrEq{"updated_at": since})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.ListSince").
			Int64("user_id", userID).
			Str("collection", string(collection)).
			Msg("failed to execute query for listing records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.wrapClassified(err))
	}
	defer rows.Close()

	records := make([]models.Record, 0, 50)

	for rows.Next() {
		record, scanErr := scanRecord(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "recordRepository.ListSince").
				Int64("user_id", userID).
				Msg("failed to scan record row")
			return nil, scanErr
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "recordRepository.ListSince").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return records, nil
}

// GetByRemoteID implements [RecordRepository].
func (r *recordRepository) GetByRemoteID(ctx context.Context, userID int64, collection models.Collection, remoteID string) (models.Record, error) {
	return r.getRecord(ctx, getRecordByRemoteID, userID, collection, remoteID)
}

// GetByLocalID implements [RecordRepository].
func (r *recordRepository) GetByLocalID(ctx context.Context, userID int64, collection models.Collection, localID string) (models.Record, error) {
	return r.getRecord(ctx, getRecordByLocalID, userID, collection, localID)
}

func (r *recordRepository) getRecord(ctx context.Context, query string, userID int64, collection models.Collection, id string) (models.Record, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, query, userID, collection, id)

	record, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Record{}, ErrRecordNotFound
		}

		log.Err(err).
			Str("func", "recordRepository.getRecord").
			Int64("user_id", userID).
			Str("collection", string(collection)).
			Str("id", id).
			Msg("failed to query record")
		return models.Record{}, err
	}

	return record, nil
}

// CreateRecord implements [RecordRepository]. The caller assigns the remote
// ID before the insert; a collision on (user_id, collection, local_id) maps
// to [ErrDuplicateLocalID] so the service layer can answer idempotently.
func (r *recordRepository) CreateRecord(ctx context.Context, userID int64, record models.Record) (models.Record, error) {
	log := logger.FromContext(ctx)

	fieldsJSON, err := json.Marshal(record.Fields)
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrEncodingFields, err)
	}

	row := r.db.QueryRowContext(ctx, createRecord,
		record.RemoteID,
		userID,
		record.Collection,
		record.LocalID,
		fieldsJSON,
	)

	created, err := scanRecord(row)
	if err != nil {
		if postgresErrorCode(err) == pgerrcode.UniqueViolation {
			return models.Record{}, ErrDuplicateLocalID
		}

		log.Err(err).
			Str("func", "recordRepository.CreateRecord").
			Int64("user_id", userID).
			Str("collection", string(record.Collection)).
			Str("local_id", record.LocalID).
			Msg("failed to insert record")
		return models.Record{}, fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.wrapClassified(err))
	}

	return created, nil
}

// UpdateRecord implements [RecordRepository]. The UPDATE carries the version
// guard in its WHERE clause; zero affected rows means either a stale base
// version or a missing record, which a follow-up fetch distinguishes. On a
// conflict the current server record is returned alongside
// [ErrVersionConflict] so callers can relay it to the client.
func (r *recordRepository) UpdateRecord(ctx context.Context, userID int64, collection models.Collection, remoteID string, baseVersion int64, fields models.FieldMap) (models.Record, error) {
	log := logger.FromContext(ctx)

	fieldsJSON, err := json.Marshal(fields)
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrEncodingFields, err)
	}

	builder := psql.
		Update("records").
		Set("fields", fieldsJSON).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{
			"user_id":    userID,
			"collection": collection,
			"remote_id":  remoteID,
			"version":    baseVersion,
			"deleted":    false,
		}).
		Suffix("RETURNING " + returningRecordColumns())

	return r.execVersionGuarded(ctx, log, builder, userID, collection, remoteID, "recordRepository.UpdateRecord")
}

// DeleteRecord implements [RecordRepository]. Deletes are soft: the row stays
// with deleted = true and a bumped version so other devices pull the
// tombstone and remove their local copy.
func (r *recordRepository) DeleteRecord(ctx context.Context, userID int64, collection models.Collection, remoteID string, baseVersion int64) (models.Record, error) {
	log := logger.FromContext(ctx)

	builder := psql.
		Update("records").
		Set("deleted", true).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{
			"user_id":    userID,
			"collection": collection,
			"remote_id":  remoteID,
			"version":    baseVersion,
			"deleted":    false,
		}).
		Suffix("RETURNING " + returningRecordColumns())

	return r.execVersionGuarded(ctx, log, builder, userID, collection, remoteID, "recordRepository.DeleteRecord")
}

func (r *recordRepository) execVersionGuarded(ctx context.Context, log *logger.Logger, builder sq.UpdateBuilder, userID int64, collection models.Collection, remoteID, fn string) (models.Record, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	record, err := scanRecord(row)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		log.Err(err).
			Str("func", fn).
			Int64("user_id", userID).
			Str("collection", string(collection)).
			Str("remote_id", remoteID).
			Msg("failed to execute version-guarded update")
		return models.Record{}, fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.wrapClassified(err))
	}

	// No row matched the guard: distinguish stale version from missing record.
	current, getErr := r.GetByRemoteID(ctx, userID, collection, remoteID)
	if getErr != nil {
		return models.Record{}, getErr
	}

	return current, ErrVersionConflict
}

func returningRecordColumns() string {
	return strings.Join(recordColumns, ", ")
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (models.Record, error) {
	var (
		record     models.Record
		fieldsJSON []byte
	)

	err := row.Scan(
		&record.RemoteID,
		&record.LocalID,
		&record.Collection,
		&fieldsJSON,
		&record.Version,
		&record.Deleted,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Record{}, err
		}
		return models.Record{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err = json.Unmarshal(fieldsJSON, &record.Fields); err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrEncodingFields, err)
	}

	return record, nil
}
