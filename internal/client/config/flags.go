package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/fieldkeeper/internal/flagx"
)

var knownFlags = []string{"-a", "-d", "-t", "-l", "-f"}

// parseFlags overlays cfg with command-line flags.
//
//	-a string   backend base URL
//	-d string   path of the local session database
//	-t int      request timeout in seconds (0 = none)
//	-l string   log level
//	-f string   log format (text or json)
//
// Unknown arguments are filtered out first so other components can share the
// command line.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("fieldkeeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "backend base URL")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "session database path")
	timeout := fs.Int("t", int(cfg.RequestTimeout/time.Second), "request timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format")

	if err := fs.Parse(flagx.FilterArgs(args, knownFlags)); err != nil {
		return err
	}
	if *timeout < 0 {
		return fmt.Errorf("negative timeout %d", *timeout)
	}
	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	return nil
}
