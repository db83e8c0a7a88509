package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// fileConfig is the on-disk JSON shape. Durations are strings in the usual
// Go form ("30s", "1m").
type fileConfig struct {
	Address        string `json:"address"`
	RequestTimeout string `json:"request_timeout"`
	DatabaseDriver string `json:"database_driver"`
	DatabaseURI    string `json:"database_uri"`
	APIKey         string `json:"api_key"`
}

// parseJSON reads the configuration file at path and converts it into a
// *Config suitable for merging with the other sources.
func parseJSON(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading JSON config %q: %w", path, err)
	}

	var fc fileConfig
	if err := json.Unmarshal(raw, &fc); err != nil {
		return nil, fmt.Errorf("error parsing JSON config %q: %w", path, err)
	}

	var timeout time.Duration
	if fc.RequestTimeout != "" {
		timeout, err = time.ParseDuration(fc.RequestTimeout)
		if err != nil {
			return nil, fmt.Errorf("error parsing request_timeout in %q: %w", path, err)
		}
	}

	return &Config{
		App: App{
			APIKey: fc.APIKey,
		},
		Server: Server{
			Address:        fc.Address,
			RequestTimeout: timeout,
		},
		Storage: Storage{
			DB: DB{
				Driver: fc.DatabaseDriver,
				DSN:    fc.DatabaseURI,
			},
		},
	}, nil
}
