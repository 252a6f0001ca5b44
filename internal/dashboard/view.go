package dashboard

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/errors"
	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/monitor"
	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/ui"
)

// Title is shown at the top of the dashboard.
const Title = "System Performance Dashboard"

// renderDashboard renders the complete dashboard view.
func (m Model) renderDashboard() string {
	if m.showHelp {
		return m.renderHelpOverlay()
	}

	width, height := m.size()
	header := m.renderHeader(width)
	charts := m.renderCharts(width)
	footer := m.renderFooter(width)

	used := lipgloss.Height(header) + lipgloss.Height(charts) + lipgloss.Height(footer) + 2
	procs := m.renderProcesses(width, height-used)

	body := lipgloss.JoinVertical(lipgloss.Left, header, "", charts, procs, "", footer)
	return m.styles.Page.Width(width).Render(body)
}

// renderHeader renders the title bar with summary stats.
func (m Model) renderHeader(width int) string {
	s := m.styles
	e := m.engine

	listed := fmt.Sprintf("top %d of %d processes", len(e.Processes()), e.ProcessCount())
	if e.ShowAll() {
		listed = fmt.Sprintf("all %d processes", e.ProcessCount())
	}

	updated, tickErr := e.LastTick()
	if errors.IsCode(tickErr, errors.ErrProcess) {
		listed += " from " + sinceText(e.ProcessesTakenAt())
	}

	stats := fmt.Sprintf(" | %s theme | %s | updated %s", e.Theme(), listed, sinceText(updated))
	return s.Header.Width(width).Render(s.Title.Render(Title) + s.Subtitle.Render(stats))
}

// renderCharts renders one card per metric, two per row on wide terminals.
func (m Model) renderCharts(width int) string {
	perRow := 1
	if width >= BreakpointTwoColumn {
		perRow = 2
	}
	cardWidth := width/perRow - 1

	cards := make([]string, 0, len(monitor.MetricKinds))
	for _, kind := range monitor.MetricKinds {
		cards = append(cards, m.renderChart(kind, cardWidth))
	}

	var rows []string
	for i := 0; i < len(cards); i += perRow {
		end := i + perRow
		if end > len(cards) {
			end = len(cards)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderChart renders the history of kind as a titled braille graph.
func (m Model) renderChart(kind monitor.MetricKind, cardWidth int) string {
	s := m.styles
	// Border (2) and padding (2).
	inner := cardWidth - 4
	if inner < 10 {
		inner = 10
	}

	history := m.engine.History(kind)
	scale := PercentScale
	if !kind.IsPercent() {
		scale = AutoScale(history)
	}

	title := s.CardTitle.Render(kind.Title())
	value := s.Label.Render("no data")
	if latest, ok := m.engine.Latest(kind); ok {
		value = m.formatLatest(kind, latest.Value)
	}
	gap := inner - lipgloss.Width(title) - lipgloss.Width(value)
	if gap < 1 {
		gap = 1
	}

	graph := RenderBrailleGraph(history, inner, graphHeight, scale, s.SeriesColor(kind))
	return s.Card.Width(cardWidth - 2).Render(title + strings.Repeat(" ", gap) + value + "\n" + graph)
}

func (m Model) formatLatest(kind monitor.MetricKind, value float64) string {
	s := m.styles
	if kind.IsPercent() {
		return s.MetricStyle(value).Render(fmt.Sprintf("%.1f%%", value))
	}
	rate := m.engine.NetworkRate()
	return s.Value.Render(ui.FormatMB(value)) + s.Label.Render(fmt.Sprintf("  %.2f MB/s", rate))
}

// Process table column widths, excluding the name column which takes the rest.
const (
	colPID    = 8
	colCPU    = 8
	colMemory = 12
)

// renderProcesses renders the process table with the selection highlighted.
func (m Model) renderProcesses(width, height int) string {
	procs := m.engine.Processes()

	nameWidth := width - colPID - colCPU - colMemory - 8
	if nameWidth < 12 {
		nameWidth = 12
	}
	columns := []ui.TableColumn{
		{Title: "PID", Width: colPID},
		{Title: "Name", Width: nameWidth},
		{Title: "CPU %", Width: colCPU},
		{Title: "Memory", Width: colMemory},
	}

	rows := make([]table.Row, len(procs))
	for i, p := range procs {
		rows[i] = table.Row{
			strconv.FormatUint(uint64(p.PID), 10),
			p.Name,
			fmt.Sprintf("%.1f", p.CPUPercent),
			ui.FormatMB(p.MemoryMB),
		}
	}

	if height < 3 {
		height = 3
	}
	t := ui.NewTable(columns, rows, m.styles.Palette)
	t.SetHeight(height)
	if len(rows) > 0 {
		t.SetCursor(m.selected)
	}

	if len(rows) == 0 {
		return t.View() + "\n" + m.styles.Label.Render("  waiting for the first process snapshot")
	}
	return t.View()
}

// renderFooter renders the kill prompt or outcome, the last tick error and
// key hints.
func (m Model) renderFooter(width int) string {
	s := m.styles
	var lines []string

	switch {
	case m.confirming:
		lines = append(lines, s.Confirm.Render(fmt.Sprintf("Terminate %s (pid %d)? [y/n]", m.target.Name, m.target.PID)))
	case m.status != "":
		lines = append(lines, s.Label.Render(m.status))
	default:
		if k, ok := m.engine.LastKill(); ok {
			lines = append(lines, renderOutcome(s, k))
		}
	}

	if _, err := m.engine.LastTick(); err != nil {
		lines = append(lines, s.Warning.Render(ui.SymbolFail+" "+errors.Summary(err)))
	}

	hints := []string{"q quit", "t theme", "a all/top", "r refresh", "↑↓ select", "x kill", "? help"}
	lines = append(lines, strings.Join(hints, " | "))
	return s.Footer.Width(width).Render(strings.Join(lines, "\n"))
}

func renderOutcome(s Styles, k monitor.KillOutcome) string {
	if k.Succeeded {
		return s.Success.Render(ui.SymbolSuccess + " " + k.Message)
	}
	return s.Failure.Render(ui.SymbolFail + " " + k.Message)
}

// sinceText returns a compact "Ns ago" label.
func sinceText(at time.Time) string {
	if at.IsZero() {
		return "never"
	}
	secs := int(time.Since(at).Seconds())
	switch secs {
	case 0:
		return "just now"
	case 1:
		return "1s ago"
	default:
		return fmt.Sprintf("%ds ago", secs)
	}
}
