package store

import (
	"context"
	"database/sql"

	"github.com/smoretta/books-api/internal/config"
	"github.com/smoretta/books-api/internal/logger"
)

// DB wraps the shared *sql.DB together with the driver-specific error
// classifier. Repositories embed it and run their statements through the
// standard database/sql connection pool.
type DB struct {
	*sql.DB
	classifier ErrorClassifier
	logger     *logger.Logger
}

// Open connects to the database selected by cfg.Driver and verifies the
// connection with a ping.
func Open(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return NewConnectPostgres(ctx, cfg, log)
	}
}

// classify maps a driver error to the matching sentinel, falling back to the
// original error when no classifier is configured.
func (db *DB) classify(err error) error {
	if db.classifier == nil {
		return err
	}
	return db.classifier.Classify(err)
}
