package config

import (
	"flag"
	"os"
	"time"
)

// ParseFlags parses all configuration flags from the process arguments.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-driver database driver ("pgx" or "sqlite3")
//	-k API key for the Authorization header
//	-request-timeout request timeout (e.g. "30s", "1m")
//	-c/-config JSON config file path
func ParseFlags() *Config {
	cfg, _ := parseFlagsFrom(os.Args[1:])
	return cfg
}

func parseFlagsFrom(args []string) (*Config, error) {
	var (
		address        string
		databaseDSN    string
		databaseDriver string
		apiKey         string
		requestTimeout time.Duration
		jsonConfigPath string
	)

	fs := flag.NewFlagSet("books-api", flag.ContinueOnError)
	fs.StringVar(&address, "a", "", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "driver", "", "Database driver (pgx or sqlite3)")
	fs.StringVar(&apiKey, "k", "", "API key")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g. 30s, 1m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &Config{
		App: App{
			APIKey: apiKey,
		},
		Server: Server{
			Address:        address,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
