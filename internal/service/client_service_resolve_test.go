package service

import (
	"context"
	"testing"
	"time"

	"github.com/mvoronin/clinic-sync/internal/logger"
	"github.com/mvoronin/clinic-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConflictResolver_DeliversPromptAndReturnsReply(t *testing.T) {
	r := NewConflictResolver(logger.Nop())
	ctx := context.Background()

	conflict := models.Conflict{
		Collection: models.CollectionInsuranceCards,
		LocalID:    "local-1",
	}

	// Play the UI: take the prompt off the channel and answer it.
	go func() {
		prompt := <-r.Prompts()
		assert.Equal(t, "local-1", prompt.Conflict.LocalID)
		prompt.Reply <- models.ResolutionClient
	}()

	resolution, err := r.Resolve(ctx, conflict)
	require.NoError(t, err)
	assert.Equal(t, models.ResolutionClient, resolution)
}

func TestConflictResolver_ContextCancelledBeforePickup(t *testing.T) {
	r := NewConflictResolver(logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Nothing consumes Prompts, so Resolve must give up via the context.
	resolution, err := r.Resolve(ctx, models.Conflict{LocalID: "local-1"})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, models.ResolutionServer, resolution, "cancellation falls back to the server copy")
}

func TestConflictResolver_ContextCancelledWhileWaitingForReply(t *testing.T) {
	r := NewConflictResolver(logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())

	// Consume the prompt but never answer; cancel instead.
	go func() {
		<-r.Prompts()
		cancel()
	}()

	done := make(chan struct{})
	var (
		resolution models.Resolution
		err        error
	)
	go func() {
		resolution, err = r.Resolve(ctx, models.Conflict{LocalID: "local-1"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Resolve did not return after context cancellation")
	}

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, models.ResolutionServer, resolution)
}
