package dashboard

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/monitor"
)

// Width breakpoints for layout modes
const (
	// BreakpointTwoColumn is the width at which charts are laid out in pairs.
	BreakpointTwoColumn = 100
	defaultWidth        = 100
	defaultHeight       = 40
)

// graphHeight is the number of braille rows per chart.
const graphHeight = 4

// Model is the Bubble Tea model for the dashboard. All state that outlives a
// frame lives in the engine; the model only keeps view-local state.
type Model struct {
	engine   *monitor.Engine
	ctx      context.Context
	interval time.Duration
	styles   Styles

	width  int
	height int

	selected   int
	confirming bool
	target     monitor.ProcessRecord
	refreshing bool
	showHelp   bool
	quitting   bool
	status     string
}

// tickMsg signals a periodic refresh.
type tickMsg time.Time

// tickDoneMsg reports a finished engine tick.
type tickDoneMsg struct {
	err error
}

// killDoneMsg carries the outcome of a kill request.
type killDoneMsg struct {
	outcome monitor.KillOutcome
}

// NewModel creates a dashboard over engine, refreshing every interval.
func NewModel(ctx context.Context, engine *monitor.Engine, interval time.Duration) Model {
	if interval <= 0 {
		interval = monitor.DefaultInterval
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return Model{
		engine:   engine,
		ctx:      ctx,
		interval: interval,
		styles:   NewStyles(engine.Theme()),
	}
}

// Init starts the tick timer and triggers an initial sample.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.tickCmd(), m.refreshCmd())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		if m.refreshing {
			// The previous tick is still running; skip rather than queue.
			return m, m.tickCmd()
		}
		m.refreshing = true
		return m, tea.Batch(m.tickCmd(), m.refreshCmd())

	case tickDoneMsg:
		m.refreshing = false
		m.clampSelection()

	case killDoneMsg:
		m.status = ""
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderDashboard()
}

// tickCmd returns a command that sends a tick after the refresh interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// refreshCmd runs one engine tick off the UI goroutine.
func (m Model) refreshCmd() tea.Cmd {
	engine, ctx := m.engine, m.ctx
	return func() tea.Msg {
		return tickDoneMsg{err: engine.Tick(ctx)}
	}
}

// killCmd requests termination of pid off the UI goroutine.
func (m Model) killCmd(pid uint32) tea.Cmd {
	engine, ctx := m.engine, m.ctx
	return func() tea.Msg {
		return killDoneMsg{outcome: engine.RequestKill(ctx, pid)}
	}
}

// SelectedProcess returns the highlighted process, if any.
func (m Model) SelectedProcess() (monitor.ProcessRecord, bool) {
	procs := m.engine.Processes()
	if m.selected < 0 || m.selected >= len(procs) {
		return monitor.ProcessRecord{}, false
	}
	return procs[m.selected], true
}

// Confirming reports whether a kill confirmation is pending.
func (m Model) Confirming() bool {
	return m.confirming
}

// clampSelection keeps the selection inside the current process list.
func (m *Model) clampSelection() {
	n := len(m.engine.Processes())
	if m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m Model) size() (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}
