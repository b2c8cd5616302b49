// Package tui implements the terminal user interface of the clinic client:
// sign-in and offline PIN unlock, per-collection record lists with sync
// status, edit forms, manual sync runs and the conflict-resolution dialog.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mvoronin/clinic-sync/internal/logger"
	"github.com/mvoronin/clinic-sync/internal/service"
)

type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
}

func New(services *service.ClientServices, logger *logger.Logger) (*TUI, error) {
	return &TUI{services: services, logger: logger}, nil
}

// LoginFlow runs the sign-in program: online login/register when the server
// is reachable, PIN unlock when it is not. It returns [ErrUserQuit] when the
// user exits without authenticating.
func (t *TUI) LoginFlow(ctx context.Context) error {
	model := newLoginAppModel(ctx, t.services)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.err != nil {
		return result.err
	}

	return nil
}

// MainLoop runs the record browser until the user quits or logs out. It also
// consumes conflict prompts from the resolver, so a background sync run can
// surface its dialogs while the user is browsing.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	model := newMainAppModel(ctx, t.services)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
