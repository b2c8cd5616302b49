package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mvoronin/clinic-sync/internal/logger"
	"github.com/mvoronin/clinic-sync/internal/store"
	"github.com/mvoronin/clinic-sync/internal/utils"
	"github.com/mvoronin/clinic-sync/internal/validators"
	"github.com/mvoronin/clinic-sync/models"
)

// recordService is the concrete implementation of [RecordService]. It wraps
// the record repository with collection checks, business-rule validation and
// the idempotent-create protocol.
type recordService struct {
	recordRepository store.RecordRepository
	validator        validators.Validator
	uuidGenerator    *utils.UUIDGenerator
	logger           *logger.Logger

	// now is swappable in tests; production uses time.Now.
	now func() time.Time
}

// NewRecordService constructs a [RecordService] wired to the given
// repository and record validator.
func NewRecordService(recordRepository store.RecordRepository, validator validators.Validator, logger *logger.Logger) RecordService {
	return &recordService{
		recordRepository: recordRepository,
		validator:        validator,
		uuidGenerator:    utils.NewUUIDGenerator(),
		logger:           logger,
		now:              time.Now,
	}
}

// Pull implements [RecordService]. The server clock is read BEFORE the query
// runs: a record committed while the query executes carries a later
// updated_at than the returned ServerTime, so the client's next inclusive
// pull picks it up rather than skipping past it.
func (r *recordService) Pull(ctx context.Context, userID int64, collection models.Collection, since time.Time) (models.PullResponse, error) {
	if !collection.Valid() {
		return models.PullResponse{}, fmt.Errorf("%w: %q", ErrUnknownCollection, collection)
	}

	serverTime := r.now().UTC()

	records, err := r.recordRepository.ListSince(ctx, userID, collection, since)
	if err != nil {
		return models.PullResponse{}, fmt.Errorf("list records since checkpoint: %w", err)
	}

	return models.PullResponse{Records: records, ServerTime: serverTime}, nil
}

// Create implements [RecordService]. On a duplicate local ID the existing
// record is fetched and answered as if the original create just succeeded,
// so a client retrying after a lost response never produces a second record.
func (r *recordService) Create(ctx context.Context, userID int64, collection models.Collection, req models.CreateRequest) (models.CreateResponse, bool, error) {
	log := logger.FromContext(ctx)

	if !collection.Valid() {
		return models.CreateResponse{}, false, fmt.Errorf("%w: %q", ErrUnknownCollection, collection)
	}
	if req.LocalID == "" {
		return models.CreateResponse{}, false, fmt.Errorf("%w: missing local id", ErrInvalidDataProvided)
	}

	record := models.Record{
		LocalID:    req.LocalID,
		Collection: collection,
		Fields:     req.Fields,
	}
	if err := r.validator.Validate(ctx, record); err != nil {
		return models.CreateResponse{}, false, err
	}

	record.RemoteID = r.uuidGenerator.Generate()

	created, err := r.recordRepository.CreateRecord(ctx, userID, record)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateLocalID) {
			existing, getErr := r.recordRepository.GetByLocalID(ctx, userID, collection, req.LocalID)
			if getErr != nil {
				return models.CreateResponse{}, false, fmt.Errorf("fetch record for idempotent create: %w", getErr)
			}

			log.Debug().
				Str("collection", string(collection)).
				Str("local_id", req.LocalID).
				Msg("replayed create answered idempotently")
			return models.CreateResponse{RemoteID: existing.RemoteID, Version: existing.Version}, false, nil
		}

		return models.CreateResponse{}, false, fmt.Errorf("create record: %w", err)
	}

	return models.CreateResponse{RemoteID: created.RemoteID, Version: created.Version}, true, nil
}

// Update implements [RecordService].
func (r *recordService) Update(ctx context.Context, userID int64, collection models.Collection, remoteID string, req models.UpdateRequest) (models.UpdateResponse, error) {
	if !collection.Valid() {
		return models.UpdateResponse{}, fmt.Errorf("%w: %q", ErrUnknownCollection, collection)
	}

	record := models.Record{
		RemoteID:   remoteID,
		Collection: collection,
		Fields:     req.Fields,
	}
	if err := r.validator.Validate(ctx, record); err != nil {
		return models.UpdateResponse{}, err
	}

	updated, err := r.recordRepository.UpdateRecord(ctx, userID, collection, remoteID, req.BaseVersion, req.Fields)
	if err != nil {
		if errors.Is(err, store.ErrVersionConflict) {
			// updated carries the winning server copy on a conflict.
			return models.UpdateResponse{}, &VersionConflictError{Current: updated}
		}
		return models.UpdateResponse{}, fmt.Errorf("update record: %w", err)
	}

	return models.UpdateResponse{Version: updated.Version}, nil
}

// Delete implements [RecordService].
func (r *recordService) Delete(ctx context.Context, userID int64, collection models.Collection, remoteID string, baseVersion int64) error {
	if !collection.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownCollection, collection)
	}

	current, err := r.recordRepository.DeleteRecord(ctx, userID, collection, remoteID, baseVersion)
	if err != nil {
		if errors.Is(err, store.ErrVersionConflict) {
			return &VersionConflictError{Current: current}
		}
		return fmt.Errorf("delete record: %w", err)
	}

	return nil
}
