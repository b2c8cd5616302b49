package service

import (
	"context"

	"github.com/mvoronin/clinic-sync/internal/logger"
	"github.com/mvoronin/clinic-sync/models"
)

// conflictResolver implements [ConflictResolver] as a rendezvous between
// the push engine and the UI. The push goroutine parks in Resolve; the UI
// goroutine receives the prompt, shows the dialog and answers on the reply
// channel. No resolution state survives outside the exchange.
type conflictResolver struct {
	prompts chan models.ConflictPrompt
	logger  *logger.Logger
}

// NewConflictResolver constructs a [ConflictResolver].
func NewConflictResolver(logger *logger.Logger) ConflictResolver {
	return &conflictResolver{
		prompts: make(chan models.ConflictPrompt),
		logger:  logger,
	}
}

// Resolve implements [ConflictResolver]. The reply channel is buffered so a
// UI answering after ctx was cancelled does not block forever.
func (r *conflictResolver) Resolve(ctx context.Context, conflict models.Conflict) (models.Resolution, error) {
	reply := make(chan models.Resolution, 1)

	select {
	case r.prompts <- models.ConflictPrompt{Conflict: conflict, Reply: reply}:
	case <-ctx.Done():
		return models.ResolutionServer, ctx.Err()
	}

	select {
	case resolution := <-reply:
		r.logger.Info().
			Str("collection", string(conflict.Collection)).
			Str("local_id", conflict.LocalID).
			Str("resolution", string(resolution)).
			Msg("conflict resolved")
		return resolution, nil
	case <-ctx.Done():
		return models.ResolutionServer, ctx.Err()
	}
}

// Prompts implements [ConflictResolver].
func (r *conflictResolver) Prompts() <-chan models.ConflictPrompt {
	return r.prompts
}
