package config

import "time"

// Bounds enforced by Validate.
const (
	MinInterval    = 500 * time.Millisecond
	MinHistorySize = 2
	MaxHistorySize = 3600
)

// Theme names accepted in the config file.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
	ThemeAuto  = "auto"
)

// Config represents the complete .procdash.yaml configuration file.
type Config struct {
	// Interval is the tick period.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// HistorySize is the number of samples kept per metric.
	HistorySize int `yaml:"history_size" mapstructure:"history_size"`

	// TopLimit is how many processes are listed when show_all is off.
	TopLimit int `yaml:"top_limit" mapstructure:"top_limit"`

	// SourceTimeout bounds each call to a metrics or process source.
	SourceTimeout time.Duration `yaml:"source_timeout" mapstructure:"source_timeout"`

	// DiskPath is the mount point sampled for disk usage.
	DiskPath string `yaml:"disk_path" mapstructure:"disk_path"`

	// Theme is the initial theme: light, dark or auto.
	Theme string `yaml:"theme" mapstructure:"theme"`

	// ShowAll lists every process instead of the top ones.
	ShowAll bool `yaml:"show_all" mapstructure:"show_all"`

	Kill   KillConfig   `yaml:"kill" mapstructure:"kill"`
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// KillConfig controls process termination.
type KillConfig struct {
	// Force sends SIGKILL instead of SIGTERM.
	Force bool `yaml:"force" mapstructure:"force"`
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Listen string `yaml:"listen" mapstructure:"listen"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
	// File receives log output. Empty means stderr, or nowhere for the dashboard.
	File string `yaml:"file" mapstructure:"file"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Interval:      2 * time.Second,
		HistorySize:   20,
		TopLimit:      20,
		SourceTimeout: 1500 * time.Millisecond,
		DiskPath:      "/",
		Theme:         ThemeLight,
		ShowAll:       false,
		Kill:          KillConfig{Force: false},
		Server:        ServerConfig{Listen: "127.0.0.1:8050"},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
