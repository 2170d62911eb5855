// Package config loads runtime configuration for the console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend REST API
//	-f string   path of the local session database file
//	-n int      notification time-to-live (seconds)
//	-q int      audit queue capacity
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "3s" or integer nanoseconds:
//
//	{
//	  "server_base_url": "http://127.0.0.1:8080/api",
//	  "session_db_path": "actifijo.db",
//	  "notify_ttl": "3s",
//	  "audit_queue_size": 64
//	}
//
// Primary API
//
//   - type Config                     — runtime settings for the console
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
