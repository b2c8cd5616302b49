package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mvoronin/clinic-sync/internal/logger"
	"github.com/mvoronin/clinic-sync/models"
)

// clientSyncService implements [ClientSyncService]. A run is always
// pull-then-push: adopting the server's recent changes first shrinks the
// window in which a push can hit a stale version.
type clientSyncService struct {
	monitor NetworkMonitor
	pull    PullEngine
	push    PushEngine
	logger  *logger.Logger

	mu       sync.Mutex
	inFlight map[models.Collection]bool
}

// NewClientSyncService constructs a [ClientSyncService].
func NewClientSyncService(monitor NetworkMonitor, pull PullEngine, push PushEngine, logger *logger.Logger) ClientSyncService {
	return &clientSyncService{
		monitor:  monitor,
		pull:     pull,
		push:     push,
		logger:   logger,
		inFlight: make(map[models.Collection]bool),
	}
}

// SyncCollection implements [ClientSyncService].
func (s *clientSyncService) SyncCollection(ctx context.Context, collection models.Collection) (models.SyncReport, error) {
	report := models.SyncReport{Collection: collection, StartedAt: time.Now().UTC()}

	if !s.acquire(collection) {
		return report, ErrSyncInProgress
	}
	defer s.release(collection)

	if !s.monitor.IsOnline(ctx) {
		return report, ErrOffline
	}

	pullReport, err := s.pull.Pull(ctx, collection)
	report.Merge(pullReport)
	if err != nil {
		return report, fmt.Errorf("pull %s: %w", collection, err)
	}

	pushReport, err := s.push.Push(ctx, collection)
	report.Merge(pushReport)
	if err != nil {
		return report, fmt.Errorf("push %s: %w", collection, err)
	}

	return report, nil
}

// SyncAll implements [ClientSyncService]. Collections sync independently; a
// failure in one is reported but does not stop the others. A collection
// already being synced elsewhere is skipped silently.
func (s *clientSyncService) SyncAll(ctx context.Context) (models.SyncReport, error) {
	total := models.SyncReport{StartedAt: time.Now().UTC()}
	var firstErr error

	for _, collection := range models.Collections {
		report, err := s.SyncCollection(ctx, collection)
		total.Merge(report)

		if err != nil {
			if errors.Is(err, ErrSyncInProgress) {
				continue
			}
			if firstErr == nil {
				firstErr = err
			}
			if errors.Is(err, ErrOffline) {
				// No point probing the remaining collections against a
				// server we just failed to reach.
				break
			}
		}
	}

	return total, firstErr
}

func (s *clientSyncService) acquire(collection models.Collection) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inFlight[collection] {
		return false
	}
	s.inFlight[collection] = true
	return true
}

func (s *clientSyncService) release(collection models.Collection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, collection)
}
