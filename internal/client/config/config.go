package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds runtime settings for the expense tracker CLI.
//
// Fields:
//   - APIBaseURL: scheme://host:port of the finance API.
//   - SessionDBPath: SQLite file that keeps the session token between runs.
//   - RequestTimeout: per-request HTTP timeout; zero leaves the transport default.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIBaseURL     string
	SessionDBPath  string
	RequestTimeout time.Duration
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080"
	c.SessionDBPath = "session.db"
	c.RequestTimeout = 0
	c.LogLevel = "info"
}

// LoadConfig constructs a Config from os.Args, see Load.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:])
}

// Load applies defaults, then overlays values from a JSON file (if one is
// selected with -c/-config) and finally from command-line flags. Later
// sources take precedence over earlier ones.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, fmt.Errorf("json config: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}
