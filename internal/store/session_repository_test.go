package store

import (
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dockflow/lawyer-console/internal/logger"
)

func newTestSessionRepo(t *testing.T) (SessionStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	wrapped := &DB{DB: db, logger: logger.Nop()}
	return NewSessionRepository(wrapped, logger.Nop()), mock
}

// ── построители запросов ─────────────────────────────────────────────────────

func Test_buildSaveSessionQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildSaveSessionQuery("T1", time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.Len(t, args, 3)
	assert.Equal(t, sessionSlotID, args[0])
	assert.Equal(t, "T1", args[1])

	q := strings.ToLower(query)
	assert.Contains(t, q, "insert into session")
	assert.Contains(t, q, "on conflict")
	assert.Contains(t, q, "excluded.token")
}

func Test_buildLoadSessionQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildLoadSessionQuery()
	require.NoError(t, err)

	require.Len(t, args, 1)
	assert.Equal(t, sessionSlotID, args[0])

	q := strings.ToLower(query)
	assert.Contains(t, q, "select token")
	assert.Contains(t, q, "from session")
	assert.Contains(t, q, "where")
}

func Test_buildClearSessionQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildClearSessionQuery()
	require.NoError(t, err)

	require.Len(t, args, 1)
	q := strings.ToLower(query)
	assert.Contains(t, q, "delete from session")
}

// ── Save ─────────────────────────────────────────────────────────────────────

func TestSessionRepository_Save_Success(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO session")).
		WithArgs(sessionSlotID, "abc123", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Save(context.Background(), "abc123"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_Save_Overwrites(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO session")).
		WithArgs(sessionSlotID, "T1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO session")).
		WithArgs(sessionSlotID, "T2", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Save(context.Background(), "T1"))
	require.NoError(t, repo.Save(context.Background(), "T2"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_Save_DBError(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO session")).
		WillReturnError(assert.AnError)

	err := repo.Save(context.Background(), "abc123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save session token")
}

// ── Load ─────────────────────────────────────────────────────────────────────

func TestSessionRepository_Load_Success(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT token FROM session")).
		WithArgs(sessionSlotID).
		WillReturnRows(sqlmock.NewRows([]string{"token"}).AddRow("abc123"))

	token, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)
}

func TestSessionRepository_Load_NotFound(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT token FROM session")).
		WithArgs(sessionSlotID).
		WillReturnRows(sqlmock.NewRows([]string{"token"}))

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionRepository_Load_EmptyTokenTreatedAsAbsent(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT token FROM session")).
		WithArgs(sessionSlotID).
		WillReturnRows(sqlmock.NewRows([]string{"token"}).AddRow(""))

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

// ── Clear ────────────────────────────────────────────────────────────────────

func TestSessionRepository_Clear_Success(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM session")).
		WithArgs(sessionSlotID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Clear(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

// ── круговой сценарий save → load → clear → load ─────────────────────────────

func TestSessionRepository_RoundTrip(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO session")).
		WithArgs(sessionSlotID, "abc123", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT token FROM session")).
		WithArgs(sessionSlotID).
		WillReturnRows(sqlmock.NewRows([]string{"token"}).AddRow("abc123"))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM session")).
		WithArgs(sessionSlotID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT token FROM session")).
		WithArgs(sessionSlotID).
		WillReturnRows(sqlmock.NewRows([]string{"token"}))

	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, "abc123"))

	token, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	require.NoError(t, repo.Clear(ctx))

	_, err = repo.Load(ctx)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
