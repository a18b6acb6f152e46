package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/dockflow/lawyer-console/internal/logger"
)

// sessionSlotID is the fixed primary key of the single session row; the table
// schema enforces id = 1 with a CHECK constraint.
const sessionSlotID = 1

type sessionRepository struct {
	*DB
	logger *logger.Logger
}

// NewSessionRepository returns a [SessionStore] persisting the token in the
// local SQLite database.
func NewSessionRepository(db *DB, log *logger.Logger) SessionStore {
	return &sessionRepository{
		DB:     db,
		logger: log,
	}
}

func (s *sessionRepository) Save(ctx context.Context, token string) error {
	query, args, err := buildSaveSessionQuery(token, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("build save session query: %w", err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "sessionRepository.Save").Msg("failed to persist session token")
		return fmt.Errorf("save session token: %w", err)
	}

	return nil
}

func (s *sessionRepository) Load(ctx context.Context) (string, error) {
	query, args, err := buildLoadSessionQuery()
	if err != nil {
		return "", fmt.Errorf("build load session query: %w", err)
	}

	var token string
	row := s.DB.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrSessionNotFound
		}
		s.logger.Err(err).Str("func", "sessionRepository.Load").Msg("failed to read session token")
		return "", fmt.Errorf("load session token: %w", err)
	}

	if token == "" {
		return "", ErrSessionNotFound
	}

	return token, nil
}

func (s *sessionRepository) Clear(ctx context.Context) error {
	query, args, err := buildClearSessionQuery()
	if err != nil {
		return fmt.Errorf("build clear session query: %w", err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "sessionRepository.Clear").Msg("failed to clear session token")
		return fmt.Errorf("clear session token: %w", err)
	}

	return nil
}

func buildSaveSessionQuery(token string, savedAt time.Time) (string, []any, error) {
	return sq.Insert("session").
		Columns("id", "token", "saved_at").
		Values(sessionSlotID, token, savedAt).
		Suffix("ON CONFLICT (id) DO UPDATE SET token = excluded.token, saved_at = excluded.saved_at").
		ToSql()
}

func buildLoadSessionQuery() (string, []any, error) {
	return sq.Select("token").
		From("session").
		Where(sq.Eq{"id": sessionSlotID}).
		ToSql()
}

func buildClearSessionQuery() (string, []any, error) {
	return sq.Delete("session").
		Where(sq.Eq{"id": sessionSlotID}).
		ToSql()
}
