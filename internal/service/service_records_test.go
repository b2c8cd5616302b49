package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mvoronin/clinic-sync/internal/logger"
	"github.com/mvoronin/clinic-sync/internal/mock"
	"github.com/mvoronin/clinic-sync/internal/store"
	"github.com/mvoronin/clinic-sync/internal/validators"
	"github.com/mvoronin/clinic-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRecordSvc(t *testing.T, ctrl *gomock.Controller) (*recordService, *mock.MockRecordRepository) {
	t.Helper()
	mockRepo := mock.NewMockRecordRepository(ctrl)
	svc := NewRecordService(mockRepo, validators.NewRecordValidator(), logger.Nop()).(*recordService)
	return svc, mockRepo
}

func validCardFields() models.FieldMap {
	return models.FieldMap{
		models.FieldMemberID:        "M-1001",
		models.FieldPayer:           "Granite Health",
		models.FieldCoveragePercent: "80",
	}
}

func TestRecordService_Pull_ServerTimeReadBeforeQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestRecordSvc(t, ctrl)
	ctx := context.Background()

	queryTime := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return queryTime }

	since := time.Date(2026, 3, 9, 18, 0, 0, 0, time.UTC)
	records := []models.Record{{LocalID: "local-1", RemoteID: "remote-1", Version: 2}}

	mockRepo.EXPECT().ListSince(ctx, int64(7), models.CollectionInsuranceCards, since).Return(records, nil)

	resp, err := svc.Pull(ctx, 7, models.CollectionInsuranceCards, since)
	require.NoError(t, err)
	assert.Equal(t, records, resp.Records)
	assert.Equal(t, queryTime, resp.ServerTime)
}

func TestRecordService_Pull_UnknownCollection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestRecordSvc(t, ctrl)

	_, err := svc.Pull(context.Background(), 7, "prescriptions", time.Time{})
	require.ErrorIs(t, err, ErrUnknownCollection)
}

func TestRecordService_Create_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestRecordSvc(t, ctrl)
	ctx := context.Background()

	req := models.CreateRequest{LocalID: "local-1", Fields: validCardFields()}

	mockRepo.EXPECT().CreateRecord(ctx, int64(7), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, record models.Record) (models.Record, error) {
			assert.Equal(t, "local-1", record.LocalID)
			assert.NotEmpty(t, record.RemoteID, "the service assigns the remote ID")
			record.Version = 1
			return record, nil
		},
	)

	resp, created, err := svc.Create(ctx, 7, models.CollectionInsuranceCards, req)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEmpty(t, resp.RemoteID)
	assert.Equal(t, int64(1), resp.Version)
}

func TestRecordService_Create_ReplayAnsweredIdempotently(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestRecordSvc(t, ctrl)
	ctx := context.Background()

	req := models.CreateRequest{LocalID: "local-1", Fields: validCardFields()}
	existing := models.Record{LocalID: "local-1", RemoteID: "remote-1", Version: 1}

	gomock.InOrder(
		mockRepo.EXPECT().CreateRecord(ctx, int64(7), gomock.Any()).
			Return(models.Record{}, store.ErrDuplicateLocalID),
		mockRepo.EXPECT().GetByLocalID(ctx, int64(7), models.CollectionInsuranceCards, "local-1").
			Return(existing, nil),
	)

	resp, created, err := svc.Create(ctx, 7, models.CollectionInsuranceCards, req)
	require.NoError(t, err)
	assert.False(t, created, "a replayed create is answered, not re-executed")
	assert.Equal(t, "remote-1", resp.RemoteID)
	assert.Equal(t, int64(1), resp.Version)
}

func TestRecordService_Create_ValidationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestRecordSvc(t, ctrl)

	req := models.CreateRequest{
		LocalID: "local-1",
		Fields:  models.FieldMap{models.FieldMemberID: "M-1001", models.FieldPayer: "Granite Health", models.FieldCoveragePercent: "120"},
	}

	_, _, err := svc.Create(context.Background(), 7, models.CollectionInsuranceCards, req)

	var validationErr *validators.ValidationErrors
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Messages[0], "between 0 and 100")
}

func TestRecordService_Create_MissingLocalID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestRecordSvc(t, ctrl)

	_, _, err := svc.Create(context.Background(), 7, models.CollectionInsuranceCards, models.CreateRequest{Fields: validCardFields()})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestRecordService_Update_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestRecordSvc(t, ctrl)
	ctx := context.Background()

	req := models.UpdateRequest{BaseVersion: 3, Fields: validCardFields()}

	mockRepo.EXPECT().UpdateRecord(ctx, int64(7), models.CollectionInsuranceCards, "remote-1", int64(3), req.Fields).
		Return(models.Record{RemoteID: "remote-1", Version: 4}, nil)

	resp, err := svc.Update(ctx, 7, models.CollectionInsuranceCards, "remote-1", req)
	require.NoError(t, err)
	assert.Equal(t, int64(4), resp.Version)
}

func TestRecordService_Update_StaleBaseReturnsConflictWithCurrentRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestRecordSvc(t, ctrl)
	ctx := context.Background()

	current := models.Record{RemoteID: "remote-1", Version: 5, Fields: validCardFields()}
	req := models.UpdateRequest{BaseVersion: 3, Fields: validCardFields()}

	mockRepo.EXPECT().UpdateRecord(ctx, int64(7), models.CollectionInsuranceCards, "remote-1", int64(3), req.Fields).
		Return(current, store.ErrVersionConflict)

	_, err := svc.Update(ctx, 7, models.CollectionInsuranceCards, "remote-1", req)

	var conflictErr *VersionConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, current, conflictErr.Current, "the 409 body carries the winning server copy")
}

func TestRecordService_Delete_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestRecordSvc(t, ctrl)
	ctx := context.Background()

	current := models.Record{RemoteID: "remote-1", Version: 6}

	mockRepo.EXPECT().DeleteRecord(ctx, int64(7), models.CollectionPayments, "remote-1", int64(4)).
		Return(current, store.ErrVersionConflict)

	err := svc.Delete(ctx, 7, models.CollectionPayments, "remote-1", 4)

	var conflictErr *VersionConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, int64(6), conflictErr.Current.Version)
}

func TestRecordService_Delete_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestRecordSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().DeleteRecord(ctx, int64(7), models.CollectionPayments, "remote-1", int64(4)).
		Return(models.Record{}, errors.New("connection reset"))

	err := svc.Delete(ctx, 7, models.CollectionPayments, "remote-1", 4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delete record")
}
