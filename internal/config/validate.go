package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/errors"
)

var (
	validThemes     = map[string]bool{ThemeLight: true, ThemeDark: true, ThemeAuto: true}
	validLogLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}
	validLogFormats = map[string]bool{"text": true, "json": true}
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if err := validateSampling(cfg); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(),
			"Check interval, history_size, top_limit and source_timeout in your .procdash.yaml.")
	}

	if !validThemes[strings.ToLower(cfg.Theme)] {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("theme '%s' isn't valid", cfg.Theme),
			"Use 'light', 'dark', or 'auto'.")
	}

	if strings.TrimSpace(cfg.DiskPath) == "" {
		return errors.New(errors.ErrConfig,
			"disk_path can't be empty",
			"Set disk_path to a mount point, like '/'.")
	}

	if err := validateServer(cfg.Server); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(),
			"Check the 'server' section in your .procdash.yaml.")
	}

	if err := validateLog(cfg.Log); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(),
			"Check the 'log' section in your .procdash.yaml.")
	}

	return nil
}

func validateSampling(cfg *Config) error {
	if cfg.Interval < MinInterval {
		return fmt.Errorf("interval %v is too short - the minimum is %v", cfg.Interval, MinInterval)
	}
	if cfg.HistorySize < MinHistorySize || cfg.HistorySize > MaxHistorySize {
		return fmt.Errorf("history_size %d is out of range - use %d to %d", cfg.HistorySize, MinHistorySize, MaxHistorySize)
	}
	if cfg.TopLimit < 1 {
		return fmt.Errorf("top_limit must be at least 1, got %d", cfg.TopLimit)
	}
	if cfg.SourceTimeout <= 0 {
		return fmt.Errorf("source_timeout must be positive, got %v", cfg.SourceTimeout)
	}
	if cfg.SourceTimeout > cfg.Interval {
		return fmt.Errorf("source_timeout (%v) is longer than interval (%v) - ticks would pile up", cfg.SourceTimeout, cfg.Interval)
	}
	return nil
}

func validateServer(s ServerConfig) error {
	if s.Listen == "" {
		return fmt.Errorf("server.listen can't be empty")
	}
	if _, _, err := net.SplitHostPort(s.Listen); err != nil {
		return fmt.Errorf("server.listen '%s' isn't a host:port address", s.Listen)
	}
	return nil
}

func validateLog(l LogConfig) error {
	if !validLogLevels[strings.ToLower(l.Level)] {
		return fmt.Errorf("log.level '%s' isn't valid - use 'debug', 'info', 'warn', or 'error'", l.Level)
	}
	if !validLogFormats[strings.ToLower(l.Format)] {
		return fmt.Errorf("log.format '%s' isn't valid - use 'text' or 'json'", l.Format)
	}
	return nil
}
