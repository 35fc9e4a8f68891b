// Package config loads runtime configuration for the fieldkeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   backend base URL, e.g. https://field.example.com
//	-d string   local session database
//	-t int      request timeout (seconds)
//	-l string   log level (debug, info, warn, error)
//	-f string   log format (text, json)
//
// # JSON schema
//
// Durations may be strings like "15s" or integer nanoseconds:
//
//	{
//	  "server_base_url": "https://field.example.com",
//	  "database_path": "/var/lib/fieldkeeper/session.db",
//	  "request_timeout": "15s",
//	  "log_level": "debug",
//	  "log_format": "json"
//	}
//
// Environment variables are not read.
package config
