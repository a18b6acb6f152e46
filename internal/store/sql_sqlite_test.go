package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dockflow/lawyer-console/internal/config"
	"github.com/dockflow/lawyer-console/internal/logger"
)

// TestSessionSurvivesReopen моделирует перезапуск процесса: сохранённый токен
// должен читаться из заново открытой базы.
func TestSessionSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "console.db")
	cfg := config.ClientDB{DSN: dsn}

	db, err := NewConnectSQLite(ctx, cfg, logger.Nop())
	require.NoError(t, err)

	repo := NewSessionRepository(db, logger.Nop())
	require.NoError(t, repo.Save(ctx, "abc123"))
	require.NoError(t, db.Close())

	// повторное открытие той же базы
	db, err = NewConnectSQLite(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	defer db.Close()

	repo = NewSessionRepository(db, logger.Nop())
	token, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	require.NoError(t, repo.Clear(ctx))
	_, err = repo.Load(ctx)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestNewConnectSQLite_CreatesFileAndDirs(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "nested", "dir", "console.db")

	db, err := NewConnectSQLite(ctx, config.ClientDB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	defer db.Close()

	assert.FileExists(t, dsn)
}
