package service

import (
	"context"
	"sync"
	"time"

	"github.com/mvoronin/clinic-sync/internal/adapter"
	"github.com/mvoronin/clinic-sync/internal/logger"
)

// probeTimeout bounds the health check so an unreachable server answers
// "offline" quickly instead of hanging a sync run on a dead socket.
const probeTimeout = 3 * time.Second

// networkMonitor implements [NetworkMonitor] by probing the server's health
// endpoint. Connectivity is a measurement, not a state: the only way to know
// whether the server is reachable from a clinic's network right now is to
// ask it.
type networkMonitor struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger

	mu     sync.RWMutex
	online bool
}

// NewNetworkMonitor constructs a [NetworkMonitor]. It starts pessimistic:
// LastKnown reports offline until the first successful probe.
func NewNetworkMonitor(serverAdapter adapter.ServerAdapter, logger *logger.Logger) NetworkMonitor {
	return &networkMonitor{
		adapter: serverAdapter,
		logger:  logger,
	}
}

// IsOnline implements [NetworkMonitor].
func (n *networkMonitor) IsOnline(ctx context.Context) bool {
	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	online := n.adapter.Ping(probeCtx) == nil

	n.mu.Lock()
	changed := online != n.online
	n.online = online
	n.mu.Unlock()

	if changed {
		n.logger.Info().Bool("online", online).Msg("connectivity changed")
	}

	return online
}

// LastKnown implements [NetworkMonitor].
func (n *networkMonitor) LastKnown() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.online
}
