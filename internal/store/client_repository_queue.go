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

type mutationQueueRepository struct {
	*DB
	logger *logger.Logger
}

// NewMutationQueueRepository constructs a [MutationQueueRepository] backed by
// the on-device SQLite database.
func NewMutationQueueRepository(db *DB, logger *logger.Logger) MutationQueueRepository {
	return &mutationQueueRepository{
		DB:     db,
		logger: logger,
	}
}

// Enqueue inserts entry or coalesces it into the record's existing entry
// inside a single transaction, so a crash never leaves a half-merged queue.
//
// Coalescing rules:
//   - update over an unsynced create stays a create with the newer fields;
//   - delete over an update becomes a delete against the original base;
//   - delete over an unsynced create cancels the entry entirely, since the
//     server has never seen the record.
func (m *mutationQueueRepository) Enqueue(ctx context.Context, entry models.MutationEntry) error {
	log := logger.FromContext(ctx)

	tx, err := m.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "mutationQueueRepository.Enqueue").
			Msg("error during opening transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = enqueueMutationTx(ctx, tx, entry); err != nil {
		log.Err(err).
			Str("func", "mutationQueueRepository.Enqueue").
			Str("collection", string(entry.Collection)).
			Str("local_id", entry.LocalID).
			Msg("failed to enqueue mutation")
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "mutationQueueRepository.Enqueue").
			Msg("error during committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// enqueueMutationTx runs the coalescing enqueue inside the caller's
// transaction, so a record write can commit together with its queue entry.
func enqueueMutationTx(ctx context.Context, tx *sql.Tx, entry models.MutationEntry) error {
	existing, err := scanQueueEntry(tx.QueryRowContext(ctx, getQueueEntry, entry.Collection, entry.LocalID))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return insertQueueEntryTx(ctx, tx, entry)

	case err != nil:
		return err

	default:
		if existing.Op == models.OpCreate && entry.Op == models.OpDelete {
			// The record never reached the server, so there is nothing to
			// delete remotely. Drop the queued create.
			if _, execErr := tx.ExecContext(ctx, removeQueueEntry, entry.Collection, entry.LocalID); execErr != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
			}
			return nil
		}

		return updateQueueEntryTx(ctx, tx, existing.Coalesce(entry))
	}
}

func insertQueueEntryTx(ctx context.Context, tx *sql.Tx, entry models.MutationEntry) error {
	fieldsJSON, baseJSON, err := marshalQueueMaps(entry)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, insertQueueEntry,
		entry.Collection,
		entry.LocalID,
		entry.Op,
		fieldsJSON,
		baseJSON,
		entry.BaseVersion,
		entry.EnqueuedAt,
		entry.RetryCount,
		entry.Rejected,
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func updateQueueEntryTx(ctx context.Context, tx *sql.Tx, entry models.MutationEntry) error {
	fieldsJSON, baseJSON, err := marshalQueueMaps(entry)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, updateQueueEntry,
		entry.Op,
		fieldsJSON,
		baseJSON,
		entry.BaseVersion,
		entry.RetryCount,
		entry.Rejected,
		entry.Collection,
		entry.LocalID,
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (m *mutationQueueRepository) Pending(ctx context.Context) ([]models.MutationEntry, error) {
	return m.queryEntries(ctx, getAllQueueEntries)
}

func (m *mutationQueueRepository) PendingForCollection(ctx context.Context, collection models.Collection) ([]models.MutationEntry, error) {
	return m.queryEntries(ctx, getQueueEntriesForCollection, collection)
}

func (m *mutationQueueRepository) queryEntries(ctx context.Context, query string, args ...any) ([]models.MutationEntry, error) {
	log := logger.FromContext(ctx)

	rows, err := m.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "mutationQueueRepository.queryEntries").
			Msg("failed to execute query for pending mutations")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var entries []models.MutationEntry

	for rows.Next() {
		entry, scanErr := scanQueueEntry(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "mutationQueueRepository.queryEntries").
				Msg("failed to scan queue entry row")
			return nil, scanErr
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entries, nil
}

func (m *mutationQueueRepository) GetEntry(ctx context.Context, collection models.Collection, localID string) (models.MutationEntry, error) {
	entry, err := scanQueueEntry(m.DB.QueryRowContext(ctx, getQueueEntry, collection, localID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.MutationEntry{}, ErrQueueEntryNotFound
	}

	return entry, err
}

func (m *mutationQueueRepository) Remove(ctx context.Context, collection models.Collection, localID string) error {
	log := logger.FromContext(ctx)

	result, err := m.DB.ExecContext(ctx, removeQueueEntry, collection, localID)
	if err != nil {
		log.Err(err).
			Str("func", "mutationQueueRepository.Remove").
			Str("collection", string(collection)).
			Str("local_id", localID).
			Msg("failed to remove queue entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrQueueEntryNotFound
	}

	return nil
}

func (m *mutationQueueRepository) MarkRejected(ctx context.Context, collection models.Collection, localID string) error {
	log := logger.FromContext(ctx)

	result, err := m.DB.ExecContext(ctx, markQueueEntryRejected, collection, localID)
	if err != nil {
		log.Err(err).
			Str("func", "mutationQueueRepository.MarkRejected").
			Str("collection", string(collection)).
			Str("local_id", localID).
			Msg("failed to mark queue entry rejected")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrQueueEntryNotFound
	}

	return nil
}

func (m *mutationQueueRepository) IncrementRetry(ctx context.Context, collection models.Collection, localID string) error {
	log := logger.FromContext(ctx)

	if _, err := m.DB.ExecContext(ctx, incrementQueueRetry, collection, localID); err != nil {
		log.Err(err).
			Str("func", "mutationQueueRepository.IncrementRetry").
			Str("collection", string(collection)).
			Str("local_id", localID).
			Msg("failed to increment retry count")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (m *mutationQueueRepository) Len(ctx context.Context) (int, error) {
	var count int
	if err := m.DB.QueryRowContext(ctx, countQueueEntries).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

func marshalQueueMaps(entry models.MutationEntry) (fieldsJSON, baseJSON []byte, err error) {
	fieldsJSON, err = json.Marshal(entry.Fields)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrEncodingFields, err)
	}

	baseJSON, err = json.Marshal(entry.Base)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrEncodingFields, err)
	}

	return fieldsJSON, baseJSON, nil
}

func scanQueueEntry(row rowScanner) (models.MutationEntry, error) {
	var (
		entry      models.MutationEntry
		fieldsJSON []byte
		baseJSON   []byte
	)

	err := row.Scan(
		&entry.Collection,
		&entry.LocalID,
		&entry.Op,
		&fieldsJSON,
		&baseJSON,
		&entry.BaseVersion,
		&entry.EnqueuedAt,
		&entry.RetryCount,
		&entry.Rejected,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.MutationEntry{}, err
		}
		return models.MutationEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err = json.Unmarshal(fieldsJSON, &entry.Fields); err != nil {
		return models.MutationEntry{}, fmt.Errorf("%w: %w", ErrEncodingFields, err)
	}
	if err = json.Unmarshal(baseJSON, &entry.Base); err != nil {
		return models.MutationEntry{}, fmt.Errorf("%w: %w", ErrEncodingFields, err)
	}

	return entry, nil
}
