// Package config loads runtime configuration for the expense tracker CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the finance API
//	-s string   path of the SQLite session database
//	-t int      request timeout in seconds (0 = transport default)
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be either
// strings like "10s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:8080",
//	  "session_db_path": "session.db",
//	  "request_timeout": "10s",
//	  "log_level": "info"
//	}
//
// Keys missing from the file keep their previous value.
package config
