package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mvoronin/clinic-sync/internal/adapter"
	"github.com/mvoronin/clinic-sync/internal/logger"
	"github.com/mvoronin/clinic-sync/internal/store"
	"github.com/mvoronin/clinic-sync/models"
)

// pullEngine implements [PullEngine]. Each pull is incremental: it asks the
// server only for records changed since the collection's checkpoint, and the
// next checkpoint is the SERVER's clock reading from the response. Client
// clocks never enter checkpoint arithmetic; a laptop with a skewed clock
// still pulls correctly.
type pullEngine struct {
	records     store.LocalRecordRepository
	queue       store.MutationQueueRepository
	checkpoints store.CheckpointRepository
	adapter     adapter.ServerAdapter
	logger      *logger.Logger
}

// NewPullEngine constructs a [PullEngine] over the local repositories and
// the server adapter.
func NewPullEngine(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) PullEngine {
	return &pullEngine{
		records:     storages.RecordRepository,
		queue:       storages.MutationQueue,
		checkpoints: storages.CheckpointRepository,
		adapter:     serverAdapter,
		logger:      logger,
	}
}

// Pull implements [PullEngine].
func (p *pullEngine) Pull(ctx context.Context, collection models.Collection) (models.SyncReport, error) {
	log := p.logger.WithCollection(string(collection))
	report := models.SyncReport{Collection: collection}

	since, err := p.checkpoints.Checkpoint(ctx, collection)
	if err != nil {
		return report, fmt.Errorf("load checkpoint: %w", err)
	}

	resp, err := p.adapter.Pull(ctx, collection, since)
	if err != nil {
		return report, fmt.Errorf("pull from server: %w", err)
	}

	for _, record := range resp.Records {
		applied, applyErr := p.applyRecord(ctx, record)
		if applyErr != nil {
			// Keep going so one bad record does not starve the rest of the
			// batch, but remember the failure: the checkpoint must not move
			// past a record we failed to store.
			log.Err(applyErr).Str("local_id", record.LocalID).Msg("failed to apply pulled record")
			report.Errors = append(report.Errors, applyErr.Error())
			continue
		}
		if applied {
			report.Pulled++
		}
	}

	if len(report.Errors) > 0 {
		// Leaving the checkpoint in place makes the next pull re-fetch the
		// whole batch, failed records included.
		return report, fmt.Errorf("pull incomplete: %d of %d records failed to apply", len(report.Errors), len(resp.Records))
	}

	if err = p.checkpoints.SetCheckpoint(ctx, collection, resp.ServerTime); err != nil {
		return report, fmt.Errorf("store checkpoint: %w", err)
	}

	log.Debug().Int("pulled", report.Pulled).Time("checkpoint", resp.ServerTime).Msg("pull finished")
	return report, nil
}

// applyRecord merges one server record into the local store. Records with a
// pending local mutation are left alone; overwriting them would wipe an
// unsynced edit, and the push engine reconciles the divergence through
// conflict detection instead.
func (p *pullEngine) applyRecord(ctx context.Context, record models.Record) (bool, error) {
	_, err := p.queue.GetEntry(ctx, record.Collection, record.LocalID)
	switch {
	case err == nil:
		return false, nil
	case !errors.Is(err, store.ErrQueueEntryNotFound):
		return false, fmt.Errorf("check pending mutation: %w", err)
	}

	if err = p.records.ApplyServerRecord(ctx, record); err != nil {
		return false, fmt.Errorf("apply server record: %w", err)
	}

	return true, nil
}
