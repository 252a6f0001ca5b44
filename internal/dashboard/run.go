package dashboard

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/monitor"
)

// Run shows the dashboard on the alternate screen until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, engine *monitor.Engine, interval time.Duration) error {
	p := tea.NewProgram(
		NewModel(ctx, engine, interval),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		// Cancelled from outside (signal); not a failure.
		return nil
	}
	return err
}
