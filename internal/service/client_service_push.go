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

// pushEngine implements [PushEngine]. Mutations are replayed strictly in
// enqueue order; a network failure aborts the run with every unsent entry
// still queued, so the next run resumes where this one stopped.
type pushEngine struct {
	records  store.LocalRecordRepository
	queue    store.MutationQueueRepository
	adapter  adapter.ServerAdapter
	detector ConflictDetector
	resolver ConflictResolver
	logger   *logger.Logger
}

// NewPushEngine constructs a [PushEngine] over the local repositories, the
// server adapter and the conflict pipeline.
func NewPushEngine(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, detector ConflictDetector, resolver ConflictResolver, logger *logger.Logger) PushEngine {
	return &pushEngine{
		records:  storages.RecordRepository,
		queue:    storages.MutationQueue,
		adapter:  serverAdapter,
		detector: detector,
		resolver: resolver,
		logger:   logger,
	}
}

// Push implements [PushEngine].
func (p *pushEngine) Push(ctx context.Context, collection models.Collection) (models.SyncReport, error) {
	log := p.logger.WithCollection(string(collection))
	report := models.SyncReport{Collection: collection}

	entries, err := p.queue.PendingForCollection(ctx, collection)
	if err != nil {
		return report, fmt.Errorf("load pending mutations: %w", err)
	}

	for _, entry := range entries {
		if entry.Rejected {
			// The server already refused this payload; it stays parked until
			// a local edit coalesces onto the entry and clears the flag.
			continue
		}

		outcome, pushErr := p.pushEntry(ctx, entry)

		switch {
		case pushErr == nil:
			if outcome == outcomeResolved {
				report.Conflicts++
			} else {
				report.Pushed++
			}

		case errors.Is(pushErr, adapter.ErrUnavailable) || errors.Is(pushErr, context.Canceled) || errors.Is(pushErr, context.DeadlineExceeded):
			// The server went away mid-run. Stop here: later entries may
			// depend on this one (a create before its update), and FIFO
			// order across runs is the only ordering guarantee we have.
			if retryErr := p.queue.IncrementRetry(ctx, entry.Collection, entry.LocalID); retryErr != nil {
				log.Err(retryErr).Str("local_id", entry.LocalID).Msg("failed to bump retry count")
			}
			return report, fmt.Errorf("push interrupted: %w", pushErr)

		case errors.Is(pushErr, adapter.ErrValidation):
			// The server will never accept this payload as-is, so re-sending
			// it unchanged is pointless. Flag the entry and move on: the
			// record stays visible and unsynced, and the next local edit
			// re-arms the mutation for push.
			log.Warn().Str("local_id", entry.LocalID).Err(pushErr).Msg("mutation rejected by server validation")
			report.Errors = append(report.Errors, validationMessage(entry, pushErr))
			if markErr := p.queue.MarkRejected(ctx, entry.Collection, entry.LocalID); markErr != nil && !errors.Is(markErr, store.ErrQueueEntryNotFound) {
				log.Err(markErr).Str("local_id", entry.LocalID).Msg("failed to flag rejected mutation")
			}

		default:
			log.Err(pushErr).Str("local_id", entry.LocalID).Str("op", string(entry.Op)).Msg("failed to push mutation")
			report.Errors = append(report.Errors, pushErr.Error())
			if retryErr := p.queue.IncrementRetry(ctx, entry.Collection, entry.LocalID); retryErr != nil {
				log.Err(retryErr).Str("local_id", entry.LocalID).Msg("failed to bump retry count")
			}
		}
	}

	log.Debug().Int("pushed", report.Pushed).Int("conflicts", report.Conflicts).Msg("push finished")
	return report, nil
}

// pushOutcome distinguishes a plain successful push from one that went
// through conflict resolution.
type pushOutcome int

const (
	outcomePushed pushOutcome = iota
	outcomeResolved
)

func (p *pushEngine) pushEntry(ctx context.Context, entry models.MutationEntry) (pushOutcome, error) {
	switch entry.Op {
	case models.OpCreate:
		return outcomePushed, p.pushCreate(ctx, entry)
	case models.OpUpdate:
		return p.pushUpdate(ctx, entry)
	case models.OpDelete:
		return p.pushDelete(ctx, entry)
	default:
		return outcomePushed, fmt.Errorf("%w: unknown op %q", ErrInvalidDataProvided, entry.Op)
	}
}

// pushCreate sends a queued create. The local ID travels with the request
// as an idempotency key, so re-sending after a lost response is safe.
func (p *pushEngine) pushCreate(ctx context.Context, entry models.MutationEntry) error {
	resp, err := p.adapter.Create(ctx, entry.Collection, models.CreateRequest{
		LocalID: entry.LocalID,
		Fields:  entry.Fields,
	})
	if err != nil {
		return err
	}

	if err = p.records.MarkSynced(ctx, entry.Collection, entry.LocalID, resp.RemoteID, resp.Version); err != nil {
		return fmt.Errorf("mark created record synced: %w", err)
	}

	return p.queue.Remove(ctx, entry.Collection, entry.LocalID)
}

func (p *pushEngine) pushUpdate(ctx context.Context, entry models.MutationEntry) (pushOutcome, error) {
	record, err := p.records.GetRecord(ctx, entry.Collection, entry.LocalID)
	if err != nil {
		return outcomePushed, fmt.Errorf("load record for update: %w", err)
	}
	if record.RemoteID == "" {
		return outcomePushed, ErrNotSyncedYet
	}

	resp, err := p.adapter.Update(ctx, entry.Collection, record.RemoteID, models.UpdateRequest{
		BaseVersion: entry.BaseVersion,
		Fields:      entry.Fields,
	})
	if err == nil {
		if err = p.records.MarkSynced(ctx, entry.Collection, entry.LocalID, record.RemoteID, resp.Version); err != nil {
			return outcomePushed, fmt.Errorf("mark updated record synced: %w", err)
		}
		return outcomePushed, p.queue.Remove(ctx, entry.Collection, entry.LocalID)
	}

	var conflictErr *adapter.ConflictError
	if !errors.As(err, &conflictErr) {
		return outcomePushed, err
	}

	return p.reconcile(ctx, entry, conflictErr.CurrentRecord, func(ctx context.Context, server models.Record) error {
		// Clinician chose the local values: re-submit against the version
		// that just beat us.
		retryResp, retryErr := p.adapter.Update(ctx, entry.Collection, server.RemoteID, models.UpdateRequest{
			BaseVersion: server.Version,
			Fields:      entry.Fields,
		})
		if retryErr != nil {
			return retryErr
		}
		return p.records.MarkSynced(ctx, entry.Collection, entry.LocalID, server.RemoteID, retryResp.Version)
	})
}

func (p *pushEngine) pushDelete(ctx context.Context, entry models.MutationEntry) (pushOutcome, error) {
	record, err := p.records.GetRecord(ctx, entry.Collection, entry.LocalID)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			// The create this delete cancelled never reached the server and
			// the local row is already gone; nothing left to do.
			return outcomePushed, p.queue.Remove(ctx, entry.Collection, entry.LocalID)
		}
		return outcomePushed, fmt.Errorf("load record for delete: %w", err)
	}
	if record.RemoteID == "" {
		return outcomePushed, ErrNotSyncedYet
	}

	err = p.adapter.Delete(ctx, entry.Collection, record.RemoteID, entry.BaseVersion)
	if err == nil {
		if err = p.records.RemoveRecord(ctx, entry.Collection, entry.LocalID); err != nil {
			return outcomePushed, fmt.Errorf("remove deleted record locally: %w", err)
		}
		return outcomePushed, p.queue.Remove(ctx, entry.Collection, entry.LocalID)
	}

	var conflictErr *adapter.ConflictError
	if !errors.As(err, &conflictErr) {
		return outcomePushed, err
	}

	return p.reconcile(ctx, entry, conflictErr.CurrentRecord, func(ctx context.Context, server models.Record) error {
		// Clinician insists on the delete: re-send against the current
		// version, then drop the local row.
		if retryErr := p.adapter.Delete(ctx, entry.Collection, server.RemoteID, server.Version); retryErr != nil {
			return retryErr
		}
		return p.records.RemoveRecord(ctx, entry.Collection, entry.LocalID)
	})
}

// reconcile handles a version rejection: silent convergence when the server
// already holds the local values, otherwise a user decision. keepLocal
// replays the local intent against the server's current version when the
// clinician picks their own copy.
func (p *pushEngine) reconcile(ctx context.Context, entry models.MutationEntry, server models.Record, keepLocal func(context.Context, models.Record) error) (pushOutcome, error) {
	server.Collection = entry.Collection
	if server.LocalID == "" {
		server.LocalID = entry.LocalID
	}

	conflict, genuine := p.detector.Detect(entry, server)
	if !genuine {
		// Same values already on the server: adopt its copy and discard the
		// now-redundant mutation without bothering the user.
		if err := p.records.ApplyServerRecord(ctx, server); err != nil {
			return outcomePushed, fmt.Errorf("adopt converged server record: %w", err)
		}
		return outcomePushed, p.queue.Remove(ctx, entry.Collection, entry.LocalID)
	}

	resolution, err := p.resolver.Resolve(ctx, conflict)
	if err != nil {
		return outcomeResolved, err
	}

	if resolution == models.ResolutionClient {
		if err = keepLocal(ctx, server); err != nil {
			return outcomeResolved, fmt.Errorf("replay local change after resolution: %w", err)
		}
	} else {
		if err = p.records.ApplyServerRecord(ctx, server); err != nil {
			return outcomeResolved, fmt.Errorf("apply server record after resolution: %w", err)
		}
	}

	return outcomeResolved, p.queue.Remove(ctx, entry.Collection, entry.LocalID)
}

func validationMessage(entry models.MutationEntry, err error) string {
	var validationErr *adapter.ValidationError
	if errors.As(err, &validationErr) && len(validationErr.Messages) > 0 {
		return fmt.Sprintf("%s %s: %s", entry.Collection, entry.LocalID, validationErr.Error())
	}
	return err.Error()
}
