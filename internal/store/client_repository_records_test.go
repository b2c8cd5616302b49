package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/mvoronin/clinic-sync/internal/logger"
	"github.com/mvoronin/clinic-sync/models"
)

func newTestLocalRecordRepo(t *testing.T) (*localRecordRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &localRecordRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func localRecordRows(t *testing.T, records ...models.Record) *sqlmock.Rows {
	t.Helper()
	rows := sqlmock.NewRows([]string{"local_id", "remote_id", "collection", "fields", "version", "synced", "deleted", "created_at", "updated_at"})
	for _, r := range records {
		fieldsJSON, err := json.Marshal(r.Fields)
		if err != nil {
			t.Fatalf("failed to marshal fields: %v", err)
		}
		rows.AddRow(r.LocalID, r.RemoteID, r.Collection, fieldsJSON, r.Version, r.Synced, r.Deleted, r.CreatedAt, r.UpdatedAt)
	}
	return rows
}

func TestWriteWithMutation_CommitsRecordAndQueueTogether(t *testing.T) {
	repo, mock, db := newTestLocalRecordRepo(t)
	defer db.Close()

	now := time.Now()
	record := models.Record{
		LocalID:    "loc-1",
		Collection: models.CollectionPayments,
		Fields:     models.FieldMap{models.FieldAmountCents: "12500"},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	entry := models.MutationEntry{
		Collection: models.CollectionPayments,
		LocalID:    "loc-1",
		Op:         models.OpCreate,
		Fields:     record.Fields.Clone(),
		EnqueuedAt: now,
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO records").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT collection, local_id, op, fields").
		WithArgs(entry.Collection, entry.LocalID).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("INSERT INTO mutation_queue").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	if err := repo.WriteWithMutation(context.Background(), record, entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet sqlmock expectations: %v", err)
	}
}

func TestWriteWithMutation_QueueFailureRollsBackRecord(t *testing.T) {
	repo, mock, db := newTestLocalRecordRepo(t)
	defer db.Close()

	now := time.Now()
	record := models.Record{
		LocalID:    "loc-1",
		Collection: models.CollectionPayments,
		Fields:     models.FieldMap{models.FieldAmountCents: "12500"},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	entry := models.MutationEntry{
		Collection: models.CollectionPayments,
		LocalID:    "loc-1",
		Op:         models.OpCreate,
		Fields:     record.Fields.Clone(),
		EnqueuedAt: now,
	}

	// The record upsert succeeds but the queue insert does not: the whole
	// transaction rolls back, so no edit can exist without its queue entry.
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO records").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT collection, local_id, op, fields").
		WithArgs(entry.Collection, entry.LocalID).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("INSERT INTO mutation_queue").
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	if err := repo.WriteWithMutation(context.Background(), record, entry); err == nil {
		t.Fatal("expected an error when the queue insert fails")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet sqlmock expectations: %v", err)
	}
}

func TestWriteWithMutation_UnsyncedDeleteRemovesRowAndCancelsCreate(t *testing.T) {
	repo, mock, db := newTestLocalRecordRepo(t)
	defer db.Close()

	now := time.Now()
	record := models.Record{
		LocalID:    "loc-7",
		Collection: models.CollectionOutcomeMeasures,
		Deleted:    true,
		UpdatedAt:  now,
	}
	queuedCreate := models.MutationEntry{
		Collection: models.CollectionOutcomeMeasures,
		LocalID:    "loc-7",
		Op:         models.OpCreate,
		Fields:     models.FieldMap{models.FieldScore: "12"},
		EnqueuedAt: now.Add(-time.Minute),
	}
	del := models.MutationEntry{
		Collection: models.CollectionOutcomeMeasures,
		LocalID:    "loc-7",
		Op:         models.OpDelete,
		EnqueuedAt: now,
	}

	// No remote ID: the row is removed outright and the delete cancels the
	// still-queued create, all in one transaction.
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM records").
		WithArgs(record.Collection, record.LocalID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT collection, local_id, op, fields").
		WithArgs(del.Collection, del.LocalID).
		WillReturnRows(queueRows(t, queuedCreate))
	mock.ExpectExec("DELETE FROM mutation_queue").
		WithArgs(del.Collection, del.LocalID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.WriteWithMutation(context.Background(), record, del); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet sqlmock expectations: %v", err)
	}
}

func TestListUnsynced_IncludesSoftDeletedRecords(t *testing.T) {
	repo, mock, db := newTestLocalRecordRepo(t)
	defer db.Close()

	now := time.Now()
	edited := models.Record{
		LocalID:    "loc-1",
		RemoteID:   "rem-1",
		Collection: models.CollectionInsuranceCards,
		Fields:     models.FieldMap{models.FieldMemberID: "M-1001"},
		Version:    2,
		CreatedAt:  now.Add(-time.Hour),
		UpdatedAt:  now,
	}
	tombstone := models.Record{
		LocalID:    "loc-2",
		RemoteID:   "rem-2",
		Collection: models.CollectionInsuranceCards,
		Deleted:    true,
		Version:    1,
		CreatedAt:  now.Add(-30 * time.Minute),
		UpdatedAt:  now,
	}

	mock.ExpectQuery("SELECT local_id, remote_id, collection, fields").
		WithArgs(models.CollectionInsuranceCards).
		WillReturnRows(localRecordRows(t, edited, tombstone))

	got, err := repo.ListUnsynced(context.Background(), models.CollectionInsuranceCards)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if !got[1].Deleted {
		t.Error("expected the soft-deleted record to be listed as unsynced")
	}
}
