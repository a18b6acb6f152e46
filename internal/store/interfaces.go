// Package store holds the client's local persistence layer: a single-slot
// durable store for the session bearer token, backed by SQLite.
package store

import (
	"context"
	"errors"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/session_store_mock.go -package=mock

// ErrSessionNotFound is returned by [SessionStore.Load] when no token has been
// persisted yet, or after a Clear. Callers treat it as "logged out".
var ErrSessionNotFound = errors.New("local session not found")

// SessionStore persists at most one bearer token across process restarts.
// Save overwrites any prior value; Clear removes it. Operations are atomic
// read/replace of a single scalar, so no external locking is needed.
type SessionStore interface {
	Save(ctx context.Context, token string) error
	Load(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}
