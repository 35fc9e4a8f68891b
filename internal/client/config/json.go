package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/fieldkeeper/internal/flagx"
)

// duration accepts either a Go duration string ("15s") or an integer number
// of nanoseconds.
type duration time.Duration

func (d *duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch x := v.(type) {
	case float64:
		*d = duration(time.Duration(x))
	case string:
		p, err := time.ParseDuration(x)
		if err != nil {
			return err
		}
		*d = duration(p)
	default:
		return fmt.Errorf("invalid duration %s", b)
	}
	return nil
}

// fileConfig is the JSON shape of the config file. Absent keys keep the
// value from the previous stage.
type fileConfig struct {
	ServerBaseURL  *string   `json:"server_base_url"`
	DatabasePath   *string   `json:"database_path"`
	RequestTimeout *duration `json:"request_timeout"`
	LogLevel       *string   `json:"log_level"`
	LogFormat      *string   `json:"log_format"`
}

func parseJSON(cfg *Config, args []string) error {
	path := flagx.JSONConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if fc.ServerBaseURL != nil {
		cfg.ServerBaseURL = *fc.ServerBaseURL
	}
	if fc.DatabasePath != nil {
		cfg.DatabasePath = *fc.DatabasePath
	}
	if fc.RequestTimeout != nil {
		cfg.RequestTimeout = time.Duration(*fc.RequestTimeout)
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.LogFormat != nil {
		cfg.LogFormat = *fc.LogFormat
	}
	return nil
}
