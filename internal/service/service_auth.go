package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dockflow/lawyer-console/internal/adapter"
	"github.com/dockflow/lawyer-console/internal/logger"
	"github.com/dockflow/lawyer-console/internal/store"
	"github.com/dockflow/lawyer-console/models"
)

type clientAuthService struct {
	sessions store.SessionStore
	adapter  adapter.ServerAdapter
	logger   *logger.Logger

	mu      sync.RWMutex
	current *models.Session
}

func NewClientAuthService(sessions store.SessionStore, serverAdapter adapter.ServerAdapter, log *logger.Logger) ClientAuthService {
	return &clientAuthService{sessions: sessions, adapter: serverAdapter, logger: log}
}

func (a *clientAuthService) Login(ctx context.Context, email, password string) (models.Session, error) {
	resp, err := a.adapter.Login(ctx, email, password)
	if err != nil {
		return models.Session{}, mapLoginError(err)
	}

	// The role gate runs before anything is persisted: a token issued to a
	// non-staff account must never reach the store or the adapter.
	if !resp.User.Role.IsStaff() {
		a.logger.Warn().
			Str("email", email).
			Str("role", string(resp.User.Role)).
			Msg("login rejected: non-staff role")
		return models.Session{}, ErrAccessDenied
	}

	if err = a.sessions.Save(ctx, resp.Token); err != nil {
		return models.Session{}, fmt.Errorf("persist session token: %w", err)
	}
	a.adapter.SetToken(resp.Token)

	session := models.Session{Token: resp.Token, User: resp.User}
	a.mu.Lock()
	a.current = &session
	a.mu.Unlock()

	a.logger.Info().Int64("user_id", resp.User.ID).Str("role", string(resp.User.Role)).Msg("login succeeded")
	return session, nil
}

func (a *clientAuthService) CurrentSession(ctx context.Context) (models.Session, error) {
	a.mu.RLock()
	if a.current != nil {
		session := *a.current
		a.mu.RUnlock()
		return session, nil
	}
	a.mu.RUnlock()

	token, err := a.sessions.Load(ctx)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return models.Session{}, ErrNoSession
		}
		return models.Session{}, fmt.Errorf("load session token: %w", err)
	}

	// Best-effort staleness check: a JWT whose exp already passed would only
	// bounce with 401; skip the round-trip and log the user out now.
	if models.TokenLooksExpired(token, time.Now()) {
		a.logger.Info().Msg("stored token expired, clearing session")
		if err = a.sessions.Clear(ctx); err != nil {
			return models.Session{}, fmt.Errorf("clear expired session: %w", err)
		}
		return models.Session{}, ErrNoSession
	}

	a.adapter.SetToken(token)

	// The user record is not persisted alongside the token; after a restart
	// the session is known by its credential only.
	session := models.Session{Token: token}
	a.mu.Lock()
	a.current = &session
	a.mu.Unlock()

	return session, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.mu.Lock()
	a.current = nil
	a.mu.Unlock()

	a.adapter.SetToken("")

	if err := a.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear session token: %w", err)
	}

	a.logger.Info().Msg("logged out")
	return nil
}
