package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/smoretta/books-api/internal/config"
	"github.com/smoretta/books-api/internal/logger"
)

// NewConnectPostgres opens a PostgreSQL connection pool through the pgx
// stdlib driver and pings it before returning.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error opening database connection")
		return nil, fmt.Errorf("error opening database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return &DB{
		DB:         conn,
		classifier: NewPostgresErrorClassifier(),
		logger:     log,
	}, nil
}

// postgresErrorClassifier maps PostgreSQL error codes to store sentinels.
type postgresErrorClassifier struct{}

func NewPostgresErrorClassifier() ErrorClassifier {
	return &postgresErrorClassifier{}
}

func (c *postgresErrorClassifier) Classify(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return ErrBookAlreadyExists
	default:
		return err
	}
}
