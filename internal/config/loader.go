package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/errors"
)

const (
	// ConfigFileName is the default config file name.
	ConfigFileName = ".procdash.yaml"
	// GlobalConfigDir is the directory for the per-user config.
	GlobalConfigDir = ".config/procdash"
	// GlobalConfigFile is the per-user config file name.
	GlobalConfigFile = "config.yaml"
	// EnvPrefix prefixes environment overrides, e.g. PROCDASH_INTERVAL=5s.
	EnvPrefix = "PROCDASH"
)

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .procdash.yaml in the current directory
// 3. ~/.config/procdash/config.yaml
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}
	localConfig := filepath.Join(cwd, ConfigFileName)
	if _, err := os.Stat(localConfig); err == nil {
		return localConfig, nil
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		globalConfig := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(globalConfig); err == nil {
			return globalConfig, nil
		}
	}

	return "", nil
}

// Load reads config from path, layering defaults, the file and PROCDASH_*
// environment overrides. An empty path loads defaults and environment only.
// The result is validated.
func Load(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if os.IsNotExist(err) {
				return nil, errors.WrapWithCode(err, errors.ErrConfig,
					"Config file not found",
					"Specify an existing file with --config, or remove the flag to use defaults")
			}
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to read config file",
				"Check the file exists and is valid YAML")
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax and value types in "+displayPath(path))
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Resolve finds and loads the config. A missing file is not an error.
// It returns the loaded config and the path it came from (empty for defaults).
func Resolve(explicit string) (*Config, string, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, "", err
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// setDefaults registers every key so that environment overrides are picked up
// by Unmarshal even when the file omits them.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("interval", d.Interval)
	v.SetDefault("history_size", d.HistorySize)
	v.SetDefault("top_limit", d.TopLimit)
	v.SetDefault("source_timeout", d.SourceTimeout)
	v.SetDefault("disk_path", d.DiskPath)
	v.SetDefault("theme", d.Theme)
	v.SetDefault("show_all", d.ShowAll)
	v.SetDefault("kill.force", d.Kill.Force)
	v.SetDefault("server.listen", d.Server.Listen)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.file", d.Log.File)
}

func displayPath(path string) string {
	if path == "" {
		return "the environment"
	}
	return path
}
