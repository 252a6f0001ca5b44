package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/errors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"minimum interval", func(c *Config) { c.Interval = MinInterval; c.SourceTimeout = MinInterval }, ""},
		{"interval too short", func(c *Config) { c.Interval = 499 * time.Millisecond }, "too short"},
		{"history too small", func(c *Config) { c.HistorySize = 1 }, "history_size 1 is out of range"},
		{"history too large", func(c *Config) { c.HistorySize = 3601 }, "history_size 3601 is out of range"},
		{"history bounds inclusive", func(c *Config) { c.HistorySize = 3600 }, ""},
		{"top limit zero", func(c *Config) { c.TopLimit = 0 }, "top_limit"},
		{"source timeout zero", func(c *Config) { c.SourceTimeout = 0 }, "source_timeout must be positive"},
		{"source timeout above interval", func(c *Config) { c.SourceTimeout = 3 * time.Second }, "longer than interval"},
		{"unknown theme", func(c *Config) { c.Theme = "solarized" }, "theme 'solarized'"},
		{"auto theme", func(c *Config) { c.Theme = ThemeAuto }, ""},
		{"theme is case insensitive", func(c *Config) { c.Theme = "Dark" }, ""},
		{"empty disk path", func(c *Config) { c.DiskPath = " " }, "disk_path"},
		{"empty listen", func(c *Config) { c.Server.Listen = "" }, "server.listen can't be empty"},
		{"listen without port", func(c *Config) { c.Server.Listen = "localhost" }, "host:port"},
		{"listen on all interfaces", func(c *Config) { c.Server.Listen = ":8050" }, ""},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrConfig))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_HasSuggestion(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Log.Format = "xml"

	err := Validate(cfg)

	var pdErr *errors.Error
	require.ErrorAs(t, err, &pdErr)
	assert.NotEmpty(t, pdErr.Suggestion)
}
