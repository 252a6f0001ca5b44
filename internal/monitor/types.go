package monitor

import (
	"fmt"
	"strings"
	"time"

	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/errors"
)

// MetricKind identifies one sampled host metric.
type MetricKind int

const (
	KindCPU MetricKind = iota
	KindMemory
	KindDisk
	KindNetwork
)

// MetricKinds lists every metric kind in display order.
var MetricKinds = []MetricKind{KindCPU, KindMemory, KindDisk, KindNetwork}

// String returns the short name used in URLs and config.
func (k MetricKind) String() string {
	switch k {
	case KindCPU:
		return "cpu"
	case KindMemory:
		return "memory"
	case KindDisk:
		return "disk"
	case KindNetwork:
		return "network"
	default:
		return "unknown"
	}
}

// Title returns the chart title for the metric.
func (k MetricKind) Title() string {
	switch k {
	case KindCPU:
		return "CPU Usage"
	case KindMemory:
		return "Memory Usage"
	case KindDisk:
		return "Disk Usage"
	case KindNetwork:
		return "Network (MB)"
	default:
		return "Unknown"
	}
}

// IsPercent reports whether values of this kind are percentages in [0,100].
func (k MetricKind) IsPercent() bool {
	return k != KindNetwork
}

// ParseMetricKind converts a short name ("cpu", "mem", ...) to a MetricKind.
func ParseMetricKind(s string) (MetricKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cpu":
		return KindCPU, nil
	case "memory", "mem", "ram":
		return KindMemory, nil
	case "disk":
		return KindDisk, nil
	case "network", "net":
		return KindNetwork, nil
	default:
		return 0, errors.New(errors.ErrInput, fmt.Sprintf("unknown metric kind %q", s), "Use one of cpu, memory, disk or network")
	}
}

// Sample is one timestamped value of a metric. Immutable once created.
type Sample struct {
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Value     float64   `json:"value" yaml:"value"`
}

// MetricsReading is what a MetricsSource returns for one tick.
// NetworkBytes is a cumulative counter (bytes sent + received since boot).
type MetricsReading struct {
	CPUPercent    float64
	MemoryPercent float64
	DiskPercent   float64
	NetworkBytes  uint64
}

// RawProcess is one entry produced by a ProcessSource.
type RawProcess struct {
	PID            uint32
	Name           string
	CPUPercent     float64
	MemoryRSSBytes uint64
}

// ProcessRecord is one row of a process snapshot. Records are never updated in
// place; every tick produces a new ordered sequence.
type ProcessRecord struct {
	PID        uint32  `json:"pid" yaml:"pid"`
	Name       string  `json:"name" yaml:"name"`
	CPUPercent float64 `json:"cpu_percent" yaml:"cpu_percent"`
	MemoryMB   float64 `json:"memory_mb" yaml:"memory_mb"`
}

// KillOutcome is the result of the most recent kill request.
type KillOutcome struct {
	PID       uint32    `json:"pid" yaml:"pid"`
	Name      string    `json:"name,omitempty" yaml:"name,omitempty"`
	Succeeded bool      `json:"succeeded" yaml:"succeeded"`
	Message   string    `json:"message" yaml:"message"`
	At        time.Time `json:"at" yaml:"at"`
}

// Theme is the display theme.
type Theme int

const (
	ThemeLight Theme = iota
	ThemeDark
)

// String returns "light" or "dark".
func (t Theme) String() string {
	if t == ThemeDark {
		return "dark"
	}
	return "light"
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// MarshalText encodes the theme by name.
func (t Theme) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a theme name.
func (t *Theme) UnmarshalText(text []byte) error {
	parsed, err := ParseTheme(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseTheme converts "light" or "dark" to a Theme.
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return ThemeLight, nil
	case "dark":
		return ThemeDark, nil
	default:
		return ThemeLight, errors.New(errors.ErrInput, fmt.Sprintf("unknown theme %q", s), "Use light or dark")
	}
}
