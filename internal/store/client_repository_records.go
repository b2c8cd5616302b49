package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mvoronin/clinic-sync/internal/logger"
	"github.com/mvoronin/clinic-sync/models"
)

type localRecordRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalRecordRepository constructs a [LocalRecordRepository] backed by the
// on-device SQLite database.
func NewLocalRecordRepository(db *DB, logger *logger.Logger) LocalRecordRepository {
	return &localRecordRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localRecordRepository) SaveRecord(ctx context.Context, record models.Record) error {
	log := logger.FromContext(ctx)

	if err := upsertRecordTx(ctx, l.DB, record); err != nil {
		log.Err(err).
			Str("func", "localRecordRepository.SaveRecord").
			Str("collection", string(record.Collection)).
			Str("local_id", record.LocalID).
			Msg("failed to execute upsert for record")
		return fmt.Errorf("failed to save record (local_id=%s): %w", record.LocalID, err)
	}

	return nil
}

// WriteWithMutation commits a local edit and its mutation queue entry in a
// single transaction: either both land or neither does, so a crash between
// the two can never leave an edit the push engine will not send. A deleted
// record the server has never seen is removed outright instead of upserted,
// and the coalescing enqueue cancels its pending create.
func (l *localRecordRepository) WriteWithMutation(ctx context.Context, record models.Record, entry models.MutationEntry) error {
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "localRecordRepository.WriteWithMutation").
			Msg("error during opening transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if record.Deleted && record.RemoteID == "" {
		if _, err = tx.ExecContext(ctx, removeLocalRecord, record.Collection, record.LocalID); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	} else if err = upsertRecordTx(ctx, tx, record); err != nil {
		return fmt.Errorf("failed to save record (local_id=%s): %w", record.LocalID, err)
	}

	if err = enqueueMutationTx(ctx, tx, entry); err != nil {
		log.Err(err).
			Str("func", "localRecordRepository.WriteWithMutation").
			Str("collection", string(record.Collection)).
			Str("local_id", record.LocalID).
			Msg("failed to enqueue mutation with record write")
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "localRecordRepository.WriteWithMutation").
			Msg("error during committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func upsertRecordTx(ctx context.Context, ex sqlExecutor, record models.Record) error {
	fieldsJSON, err := json.Marshal(record.Fields)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingFields, err)
	}

	_, err = ex.ExecContext(ctx, upsertLocalRecord,
		record.LocalID,
		record.RemoteID,
		record.Collection,
		fieldsJSON,
		record.Version,
		record.Synced,
		record.Deleted,
		record.CreatedAt,
		record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localRecordRepository) GetRecord(ctx context.Context, collection models.Collection, localID string) (models.Record, error) {
	return l.getRecord(ctx, getLocalRecord, collection, localID)
}

func (l *localRecordRepository) GetRecordByRemoteID(ctx context.Context, collection models.Collection, remoteID string) (models.Record, error) {
	return l.getRecord(ctx, getLocalRecordByRemoteID, collection, remoteID)
}

func (l *localRecordRepository) getRecord(ctx context.Context, query string, collection models.Collection, id string) (models.Record, error) {
	log := logger.FromContext(ctx)

	row := l.DB.QueryRowContext(ctx, query, collection, id)

	record, err := scanLocalRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Record{}, ErrRecordNotFound
		}

		log.Err(err).
			Str("func", "localRecordRepository.getRecord").
			Str("collection", string(collection)).
			Str("id", id).
			Msg("failed to query record")
		return models.Record{}, err
	}

	return record, nil
}

func (l *localRecordRepository) ListRecords(ctx context.Context, collection models.Collection) ([]models.Record, error) {
	return l.listRecords(ctx, getAllLocalRecords, collection)
}

// ListUnsynced returns the records with local changes the server has not
// acknowledged yet, including soft-deleted ones, oldest first.
func (l *localRecordRepository) ListUnsynced(ctx context.Context, collection models.Collection) ([]models.Record, error) {
	return l.listRecords(ctx, getUnsyncedLocalRecords, collection)
}

func (l *localRecordRepository) listRecords(ctx context.Context, query string, collection models.Collection) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, query, collection)
	if err != nil {
		log.Err(err).
			Str("func", "localRecordRepository.listRecords").
			Str("collection", string(collection)).
			Msg("failed to execute query for listing records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var records []models.Record

	for rows.Next() {
		record, scanErr := scanLocalRecord(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "localRecordRepository.listRecords").
				Str("collection", string(collection)).
				Msg("failed to scan record row")
			return nil, scanErr
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return records, nil
}

// ApplyServerRecord keeps the local row aligned with the server's copy. A
// pulled tombstone removes the local row; anything else overwrites it and
// marks it synced. The local_id key survives the overwrite so queued
// mutations still address the same record.
func (l *localRecordRepository) ApplyServerRecord(ctx context.Context, record models.Record) error {
	if record.Deleted {
		return l.RemoveRecord(ctx, record.Collection, record.LocalID)
	}

	record.Synced = true
	return l.SaveRecord(ctx, record)
}

func (l *localRecordRepository) MarkSynced(ctx context.Context, collection models.Collection, localID, remoteID string, version int64) error {
	log := logger.FromContext(ctx)

	result, err := l.DB.ExecContext(ctx, markLocalRecordSynced, remoteID, version, collection, localID)
	if err != nil {
		log.Err(err).
			Str("func", "localRecordRepository.MarkSynced").
			Str("collection", string(collection)).
			Str("local_id", localID).
			Msg("failed to mark record synced")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

func (l *localRecordRepository) RemoveRecord(ctx context.Context, collection models.Collection, localID string) error {
	log := logger.FromContext(ctx)

	if _, err := l.DB.ExecContext(ctx, removeLocalRecord, collection, localID); err != nil {
		log.Err(err).
			Str("func", "localRecordRepository.RemoveRecord").
			Str("collection", string(collection)).
			Str("local_id", localID).
			Msg("failed to remove record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func scanLocalRecord(row rowScanner) (models.Record, error) {
	var (
		record     models.Record
		fieldsJSON []byte
	)

	err := row.Scan(
		&record.LocalID,
		&record.RemoteID,
		&record.Collection,
		&fieldsJSON,
		&record.Version,
		&record.Synced,
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
