package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/mvoronin/clinic-sync/internal/adapter"
	"github.com/mvoronin/clinic-sync/internal/config"
	"github.com/mvoronin/clinic-sync/internal/logger"
	"github.com/mvoronin/clinic-sync/internal/service"
	"github.com/mvoronin/clinic-sync/internal/store"
	"github.com/mvoronin/clinic-sync/internal/tui"
)

type App struct {
	cfg      *config.ClientConfig
	services *service.ClientServices
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp() (*App, error) {
	cfg, err := config.GetClientConfig()
	if err != nil {
		return nil, fmt.Errorf("load client config: %w", err)
	}

	log := logger.NewClientLogger("client")

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create client storages: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	svcs := service.NewClientServices(storages, serverAdapter, log)

	ui, err := tui.New(svcs, log)
	if err != nil {
		return nil, fmt.Errorf("create tui: %w", err)
	}

	return &App{cfg: cfg, services: svcs, tui: ui, logger: log}, nil
}

// Run drives the whole client lifecycle: sign in (or PIN unlock when
// offline), then the record browser with the background sync job running
// underneath it. A logout returns to the sign-in screen instead of exiting.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	for {
		if err := a.tui.LoginFlow(ctx); err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}

		logout, err := a.runSession(ctx)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}
	}
}

// runSession owns one authenticated stretch: an initial sync, the periodic
// sync job and the main screen. The session context is cancelled on return so
// the sync job never outlives the screen it serves.
func (a *App) runSession(ctx context.Context) (logout bool, err error) {
	sessionCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	if _, syncErr := a.services.SyncService.SyncAll(sessionCtx); syncErr != nil {
		// Working from the local copy is fine, the record list just shows
		// the offline badge until the next successful run.
		a.logger.Warn().Err(syncErr).Msg("initial sync failed")
	}

	a.services.SyncJob.Start(sessionCtx, a.cfg.Workers.SyncInterval)
	defer a.services.SyncJob.Stop()

	return a.tui.MainLoop(sessionCtx)
}
