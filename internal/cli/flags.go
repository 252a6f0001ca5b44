package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/config"
	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/errors"
)

// outputFormat selects how snapshot prints.
type outputFormat string

const (
	formatTable outputFormat = "table"
	formatJSON  outputFormat = "json"
	formatYAML  outputFormat = "yaml"
)

// parseInterval parses an --interval flag. An empty flag returns fallback.
func parseInterval(flag string, fallback time.Duration) (time.Duration, error) {
	if flag == "" {
		return fallback, nil
	}

	parsed, err := time.ParseDuration(flag)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Invalid interval: %s", flag),
			"Use a valid duration like 2s, 5s, or 1m")
	}
	if parsed < config.MinInterval {
		return 0, errors.New(errors.ErrConfig,
			"Interval too short",
			fmt.Sprintf("Minimum interval is %s", config.MinInterval))
	}
	return parsed, nil
}

// parseFormat validates a --format flag.
func parseFormat(flag string) (outputFormat, error) {
	switch f := outputFormat(strings.ToLower(strings.TrimSpace(flag))); f {
	case "", formatTable:
		return formatTable, nil
	case formatJSON, formatYAML:
		return f, nil
	default:
		return "", errors.New(errors.ErrInput,
			fmt.Sprintf("'%s' isn't an output format", flag),
			"Use table, json or yaml.")
	}
}
