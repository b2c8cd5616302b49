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

// clientRecordService implements [ClientRecordService]. Writes never touch
// the network: they land in the local store and the mutation queue, and the
// push engine carries them to the server later.
type clientRecordService struct {
	records       store.LocalRecordRepository
	queue         store.MutationQueueRepository
	validator     validators.Validator
	uuidGenerator *utils.UUIDGenerator
	logger        *logger.Logger

	now func() time.Time
}

// NewClientRecordService constructs a [ClientRecordService] over the local
// repositories.
func NewClientRecordService(records store.LocalRecordRepository, queue store.MutationQueueRepository, validator validators.Validator, logger *logger.Logger) ClientRecordService {
	return &clientRecordService{
		records:       records,
		queue:         queue,
		validator:     validator,
		uuidGenerator: utils.NewUUIDGenerator(),
		logger:        logger,
		now:           time.Now,
	}
}

// List implements [ClientRecordService].
func (c *clientRecordService) List(ctx context.Context, collection models.Collection) ([]models.Record, error) {
	return c.records.ListRecords(ctx, collection)
}

// Get implements [ClientRecordService].
func (c *clientRecordService) Get(ctx context.Context, collection models.Collection, localID string) (models.Record, error) {
	return c.records.GetRecord(ctx, collection, localID)
}

// Create implements [ClientRecordService].
func (c *clientRecordService) Create(ctx context.Context, collection models.Collection, fields models.FieldMap) (models.Record, error) {
	now := c.now().UTC()
	record := models.Record{
		LocalID:    c.uuidGenerator.Generate(),
		Collection: collection,
		Fields:     fields,
		Synced:     false,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := c.validator.Validate(ctx, record); err != nil {
		return models.Record{}, err
	}

	entry := models.MutationEntry{
		Collection: collection,
		LocalID:    record.LocalID,
		Op:         models.OpCreate,
		Fields:     fields.Clone(),
		EnqueuedAt: now,
	}
	if err := c.records.WriteWithMutation(ctx, record, entry); err != nil {
		return models.Record{}, fmt.Errorf("save record with create mutation: %w", err)
	}

	return record, nil
}

// Update implements [ClientRecordService]. The base snapshot for conflict
// detection is the record as the server last confirmed it; when an entry is
// already queued the repository keeps its original base, so chained edits
// still compare against the state the clinician started from.
func (c *clientRecordService) Update(ctx context.Context, collection models.Collection, localID string, fields models.FieldMap) (models.Record, error) {
	record, err := c.records.GetRecord(ctx, collection, localID)
	if err != nil {
		return models.Record{}, err
	}

	candidate := record
	candidate.Fields = fields
	if err = c.validator.Validate(ctx, candidate); err != nil {
		return models.Record{}, err
	}

	now := c.now().UTC()
	base := record.Fields.Clone()

	record.Fields = fields
	record.Synced = false
	record.UpdatedAt = now

	entry := models.MutationEntry{
		Collection:  collection,
		LocalID:     localID,
		Op:          models.OpUpdate,
		Fields:      fields.Clone(),
		Base:        base,
		BaseVersion: record.Version,
		EnqueuedAt:  now,
	}
	if err = c.records.WriteWithMutation(ctx, record, entry); err != nil {
		return models.Record{}, fmt.Errorf("save record with update mutation: %w", err)
	}

	return record, nil
}

// Delete implements [ClientRecordService]. The record disappears from lists
// immediately; the server learns about it on the next push. A record the
// server has never seen is removed outright, and enqueueing the delete
// cancels its pending create.
func (c *clientRecordService) Delete(ctx context.Context, collection models.Collection, localID string) error {
	record, err := c.records.GetRecord(ctx, collection, localID)
	if err != nil {
		return err
	}

	now := c.now().UTC()

	record.Deleted = true
	record.Synced = false
	record.UpdatedAt = now

	entry := models.MutationEntry{
		Collection:  collection,
		LocalID:     localID,
		Op:          models.OpDelete,
		Base:        record.Fields.Clone(),
		BaseVersion: record.Version,
		EnqueuedAt:  now,
	}
	if err = c.records.WriteWithMutation(ctx, record, entry); err != nil {
		return fmt.Errorf("delete record with mutation: %w", err)
	}

	return nil
}

// PendingCount implements [ClientRecordService].
func (c *clientRecordService) PendingCount(ctx context.Context) (int, error) {
	count, err := c.queue.Len(ctx)
	if err != nil && !errors.Is(err, store.ErrQueueEntryNotFound) {
		return 0, err
	}
	return count, nil
}
