package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8080/api", c.ServerBaseURL)
	assert.Equal(t, "actifijo.db", c.SessionDBPath)
	assert.Equal(t, 3*time.Second, c.NotifyTTL)
	assert.Equal(t, 64, c.AuditQueueSize)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://127.0.0.1:8080/api", cfg.ServerBaseURL)
	assert.Equal(t, 3*time.Second, cfg.NotifyTTL)
}
