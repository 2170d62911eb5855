package config

import "time"

// Config holds runtime settings for the console.
//
// Fields:
//   - ServerBaseURL: base URL of the backend REST API, including the /api prefix.
//   - SessionDBPath: path of the local SQLite file the session token lives in.
//   - NotifyTTL: how long a notification stays visible before auto-dismissal.
//   - AuditQueueSize: capacity of the in-memory audit log queue.
type Config struct {
	ServerBaseURL  string
	SessionDBPath  string
	NotifyTTL      time.Duration
	AuditQueueSize int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080/api"
	c.SessionDBPath = "actifijo.db"
	c.NotifyTTL = 3 * time.Second
	c.AuditQueueSize = 64
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
