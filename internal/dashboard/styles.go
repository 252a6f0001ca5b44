package dashboard

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/monitor"
	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/ui"
)

// Thresholds for metric severity levels
const (
	WarningThreshold  = 70.0
	CriticalThreshold = 90.0
)

// Styles holds every style the dashboard renders with. It is rebuilt when the
// theme changes.
type Styles struct {
	Palette ui.Palette

	Page      lipgloss.Style
	Header    lipgloss.Style
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Card      lipgloss.Style
	CardTitle lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Footer    lipgloss.Style
	Success   lipgloss.Style
	Failure   lipgloss.Style
	Warning   lipgloss.Style
	Confirm   lipgloss.Style

	HelpBox   lipgloss.Style
	HelpTitle lipgloss.Style
	HelpKey   lipgloss.Style
	HelpDesc  lipgloss.Style
}

// NewStyles builds the styles for theme.
func NewStyles(theme monitor.Theme) Styles {
	p := ui.PaletteFor(theme.String())

	return Styles{
		Palette: p,

		Page: lipgloss.NewStyle().
			Foreground(p.Foreground).
			Background(p.Background),

		Header: lipgloss.NewStyle().
			Foreground(p.Foreground).
			Background(p.Surface).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(p.Muted),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),

		CardTitle: lipgloss.NewStyle().
			Foreground(p.Foreground).
			Bold(true),

		Label: lipgloss.NewStyle().
			Foreground(p.Muted),

		Value: lipgloss.NewStyle().
			Foreground(p.Foreground),

		Footer: lipgloss.NewStyle().
			Foreground(p.Muted).
			Padding(0, 1),

		Success: lipgloss.NewStyle().Foreground(ui.ColorSuccess),
		Failure: lipgloss.NewStyle().Foreground(ui.ColorError),
		Warning: lipgloss.NewStyle().Foreground(ui.ColorWarning),

		Confirm: lipgloss.NewStyle().
			Foreground(p.Surface).
			Background(p.Memory).
			Bold(true).
			Padding(0, 1),

		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Background(p.Surface).
			Padding(1, 2),

		HelpTitle: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true).
			MarginBottom(1),

		HelpKey: lipgloss.NewStyle().
			Foreground(p.Foreground).
			Bold(true).
			Width(14),

		HelpDesc: lipgloss.NewStyle().
			Foreground(p.Muted),
	}
}

// SeriesColor returns the chart color for kind.
func (s Styles) SeriesColor(kind monitor.MetricKind) lipgloss.Color {
	switch kind {
	case monitor.KindCPU:
		return s.Palette.CPU
	case monitor.KindMemory:
		return s.Palette.Memory
	case monitor.KindDisk:
		return s.Palette.Disk
	default:
		return s.Palette.Network
	}
}

// MetricStyle returns a style colored by percentage severity.
func (s Styles) MetricStyle(percent float64) lipgloss.Style {
	switch {
	case percent >= CriticalThreshold:
		return s.Failure
	case percent >= WarningThreshold:
		return s.Warning
	default:
		return s.Value
	}
}
