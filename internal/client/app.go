package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/dockflow/lawyer-console/internal/logger"
	"github.com/dockflow/lawyer-console/internal/service"
	"github.com/dockflow/lawyer-console/internal/tui"
)

// App drives the console lifecycle: session restore, the login flow when no
// usable token is persisted, and the main conversation loop. A logout or a
// token rejected by the server both land back on the login form with all
// local conversation state dropped.
type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	log      *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("nil app dependencies")
	}
	return &App{services: services, tui: ui, log: log}, nil
}

func (a *App) Run() error {
	ctx := context.Background()

	session, err := a.services.AuthService.CurrentSession(ctx)
	if err != nil {
		if !errors.Is(err, service.ErrNoSession) {
			return fmt.Errorf("restore session: %w", err)
		}

		session, err = a.tui.LoginFlow(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return err
		}
	} else {
		a.log.Info().Str("email", session.User.Email).Msg("session restored from local store")
	}

	result, err := a.tui.MainLoop(ctx, session)
	if err != nil {
		return err
	}

	if result.Logout || result.Unauthorized {
		if result.Unauthorized {
			a.log.Warn().Msg("stored token rejected by server, forcing logout")
		}
		return a.relogin(ctx)
	}

	return nil
}

// relogin tears the session down and restarts the whole lifecycle so the
// user lands on a clean login form.
func (a *App) relogin(ctx context.Context) error {
	if err := a.services.AuthService.Logout(ctx); err != nil {
		a.log.Error().Err(err).Msg("logout cleanup failed")
	}
	a.services.MessageService.Reset()

	return a.Run()
}
