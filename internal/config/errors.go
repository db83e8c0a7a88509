package config

import "errors"

// Validation errors returned by Config.validate via GetConfig.
var (
	// ErrNoDSN is returned when no database connection string was provided
	// by any configuration source.
	ErrNoDSN = errors.New("database DSN is not set")

	// ErrNoAPIKey is returned when the static API key is missing; the server
	// refuses to start without one because every book route requires it.
	ErrNoAPIKey = errors.New("API key is not set")

	// ErrUnknownDriver is returned for a database driver other than
	// "pgx" or "sqlite3".
	ErrUnknownDriver = errors.New("unknown database driver")
)
