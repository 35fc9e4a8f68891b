package config

import (
	"fmt"
	"time"
)

// Config holds runtime settings for the fieldkeeper CLI.
//
// Fields:
//   - ServerBaseURL: scheme://host[:port] of the field-service backend.
//   - DatabasePath: SQLite file holding the persisted session.
//   - RequestTimeout: per-request timeout; 0 leaves it to the transport.
//   - LogLevel, LogFormat: see logging.New.
type Config struct {
	ServerBaseURL  string
	DatabasePath   string
	RequestTimeout time.Duration
	LogLevel       string
	LogFormat      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8000"
	c.DatabasePath = "fieldkeeper.db"
	c.RequestTimeout = 0
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig applies defaults, then the JSON file named by -c/-config (if
// any), then command-line flags. Later sources take precedence. args are the
// program arguments without the program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg, args); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}
