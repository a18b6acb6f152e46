package store

import (
	"database/sql"

	"github.com/dockflow/lawyer-console/internal/logger"
	"github.com/dockflow/lawyer-console/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
