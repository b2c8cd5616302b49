package service

import (
	"context"
	"testing"
	"time"

	"github.com/mvoronin/clinic-sync/internal/logger"
	"github.com/mvoronin/clinic-sync/internal/mock"
	"github.com/mvoronin/clinic-sync/internal/store"
	"github.com/mvoronin/clinic-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestPullEngine(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	PullEngine,
	*mock.MockLocalRecordRepository,
	*mock.MockMutationQueueRepository,
	*mock.MockCheckpointRepository,
	*mock.MockServerAdapter,
) {
	t.Helper()
	mockRecords := mock.NewMockLocalRecordRepository(ctrl)
	mockQueue := mock.NewMockMutationQueueRepository(ctrl)
	mockCheckpoints := mock.NewMockCheckpointRepository(ctrl)
	mockAdapter := mock.NewMockServerAdapter(ctrl)

	storages := &store.ClientStorages{
		RecordRepository:     mockRecords,
		MutationQueue:        mockQueue,
		CheckpointRepository: mockCheckpoints,
	}

	engine := NewPullEngine(storages, mockAdapter, logger.Nop())
	return engine, mockRecords, mockQueue, mockCheckpoints, mockAdapter
}

func TestPullEngine_AppliesRecordsAndAdvancesCheckpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, mockRecords, mockQueue, mockCheckpoints, mockAdapter := newTestPullEngine(t, ctrl)
	ctx := context.Background()

	since := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	serverTime := time.Date(2026, 3, 10, 10, 30, 0, 0, time.UTC)

	pulled := models.Record{
		LocalID:    "local-1",
		RemoteID:   "remote-1",
		Collection: models.CollectionInsuranceCards,
		Fields:     models.FieldMap{models.FieldMemberID: "M-1001"},
		Version:    2,
	}

	gomock.InOrder(
		mockCheckpoints.EXPECT().Checkpoint(ctx, models.CollectionInsuranceCards).Return(since, nil),
		mockAdapter.EXPECT().Pull(ctx, models.CollectionInsuranceCards, since).
			Return(models.PullResponse{Records: []models.Record{pulled}, ServerTime: serverTime}, nil),
		mockQueue.EXPECT().GetEntry(ctx, models.CollectionInsuranceCards, "local-1").
			Return(models.MutationEntry{}, store.ErrQueueEntryNotFound),
		mockRecords.EXPECT().ApplyServerRecord(ctx, pulled).Return(nil),
		// The new checkpoint is the server's clock, never the client's.
		mockCheckpoints.EXPECT().SetCheckpoint(ctx, models.CollectionInsuranceCards, serverTime).Return(nil),
	)

	report, err := engine.Pull(ctx, models.CollectionInsuranceCards)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Pulled)
	assert.Empty(t, report.Errors)
}

func TestPullEngine_SkipsRecordsWithPendingLocalMutation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, _, mockQueue, mockCheckpoints, mockAdapter := newTestPullEngine(t, ctrl)
	ctx := context.Background()

	serverTime := time.Date(2026, 3, 10, 10, 30, 0, 0, time.UTC)
	pulled := models.Record{
		LocalID:    "local-1",
		Collection: models.CollectionPayments,
		Version:    5,
	}

	gomock.InOrder(
		mockCheckpoints.EXPECT().Checkpoint(ctx, models.CollectionPayments).Return(time.Time{}, nil),
		mockAdapter.EXPECT().Pull(ctx, models.CollectionPayments, time.Time{}).
			Return(models.PullResponse{Records: []models.Record{pulled}, ServerTime: serverTime}, nil),
		// A pending local edit exists: the server record must not clobber it.
		mockQueue.EXPECT().GetEntry(ctx, models.CollectionPayments, "local-1").
			Return(models.MutationEntry{LocalID: "local-1", Op: models.OpUpdate}, nil),
		mockCheckpoints.EXPECT().SetCheckpoint(ctx, models.CollectionPayments, serverTime).Return(nil),
	)

	report, err := engine.Pull(ctx, models.CollectionPayments)
	require.NoError(t, err)
	assert.Zero(t, report.Pulled, "skipped records are not counted as pulled")
}

func TestPullEngine_FirstPullSendsZeroSince(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, _, _, mockCheckpoints, mockAdapter := newTestPullEngine(t, ctrl)
	ctx := context.Background()

	serverTime := time.Date(2026, 3, 10, 10, 30, 0, 0, time.UTC)

	gomock.InOrder(
		mockCheckpoints.EXPECT().Checkpoint(ctx, models.CollectionOutcomeMeasures).Return(time.Time{}, nil),
		mockAdapter.EXPECT().Pull(ctx, models.CollectionOutcomeMeasures, time.Time{}).
			Return(models.PullResponse{ServerTime: serverTime}, nil),
		mockCheckpoints.EXPECT().SetCheckpoint(ctx, models.CollectionOutcomeMeasures, serverTime).Return(nil),
	)

	report, err := engine.Pull(ctx, models.CollectionOutcomeMeasures)
	require.NoError(t, err)
	assert.Zero(t, report.Pulled)
}

func TestPullEngine_OneBadRecordDoesNotStopTheBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, mockRecords, mockQueue, mockCheckpoints, mockAdapter := newTestPullEngine(t, ctrl)
	ctx := context.Background()

	serverTime := time.Date(2026, 3, 10, 10, 30, 0, 0, time.UTC)
	bad := models.Record{LocalID: "local-1", Collection: models.CollectionInsuranceCards}
	good := models.Record{LocalID: "local-2", Collection: models.CollectionInsuranceCards}

	gomock.InOrder(
		mockCheckpoints.EXPECT().Checkpoint(ctx, models.CollectionInsuranceCards).Return(time.Time{}, nil),
		mockAdapter.EXPECT().Pull(ctx, models.CollectionInsuranceCards, time.Time{}).
			Return(models.PullResponse{Records: []models.Record{bad, good}, ServerTime: serverTime}, nil),
		mockQueue.EXPECT().GetEntry(ctx, models.CollectionInsuranceCards, "local-1").
			Return(models.MutationEntry{}, store.ErrQueueEntryNotFound),
		mockRecords.EXPECT().ApplyServerRecord(ctx, bad).Return(store.ErrExecutingStatement),
		mockQueue.EXPECT().GetEntry(ctx, models.CollectionInsuranceCards, "local-2").
			Return(models.MutationEntry{}, store.ErrQueueEntryNotFound),
		mockRecords.EXPECT().ApplyServerRecord(ctx, good).Return(nil),
	)
	// The checkpoint must not move past a record that failed to apply;
	// the next pull re-fetches the whole batch.
	mockCheckpoints.EXPECT().SetCheckpoint(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	report, err := engine.Pull(ctx, models.CollectionInsuranceCards)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pull incomplete")
	assert.Equal(t, 1, report.Pulled, "the failure does not stop the rest of the batch")
	assert.Len(t, report.Errors, 1)
}
