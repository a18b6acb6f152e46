// Package tui is the terminal front end of the lawyer console: the login
// form, the conversation list and the open conversation screen, built on
// Bubble Tea models with async commands for every network call.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dockflow/lawyer-console/internal/logger"
	"github.com/dockflow/lawyer-console/internal/service"
	"github.com/dockflow/lawyer-console/models"
)

// ErrUserQuit is returned when the user closes the program instead of
// finishing a flow. Not an error condition for the caller.
var ErrUserQuit = errors.New("вышел из программы")

// MainLoopResult tells the caller how the main loop ended.
type MainLoopResult struct {
	// Logout is set when the user explicitly logged out.
	Logout bool
	// Unauthorized is set when the server rejected the stored token mid
	// session. The caller clears local state and restarts the login flow.
	Unauthorized bool
}

type TUI struct {
	services *service.ClientServices
	log      *logger.Logger
}

func New(services *service.ClientServices, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("nil client services")
	}
	return &TUI{services: services, log: log}, nil
}

// LoginFlow runs the credential form until a session is established or the
// user quits.
func (t *TUI) LoginFlow(ctx context.Context) (models.Session, error) {
	model := newLoginAppModel(ctx, t.services)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.Session{}, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return models.Session{}, tea.ErrProgramKilled
	}
	if result.err != nil {
		return models.Session{}, result.err
	}

	t.log.Info().Str("email", result.resultSession.User.Email).Msg("login flow finished")
	return result.resultSession, nil
}

// MainLoop runs the conversation screens until the user quits, logs out, or
// the server rejects the token.
func (t *TUI) MainLoop(ctx context.Context, session models.Session) (MainLoopResult, error) {
	model := newMainAppModel(ctx, t.services, session)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return MainLoopResult{}, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return MainLoopResult{}, tea.ErrProgramKilled
	}
	if result.err != nil && !errors.Is(result.err, ErrUserQuit) {
		return MainLoopResult{}, result.err
	}

	return MainLoopResult{Logout: result.logout, Unauthorized: result.unauthorized}, nil
}
