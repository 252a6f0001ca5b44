package cli

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/dashboard"
	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/errors"
	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/monitor"
)

// runDashboard is swapped in tests so no terminal program starts.
var runDashboard = dashboard.Run

// dashboardCommand starts the TUI ticking every interval.
func dashboardCommand(cmd *cobra.Command, interval time.Duration) error {
	if !isTerminal(os.Stdout) {
		return errors.New(errors.ErrInput,
			"The dashboard needs an interactive terminal",
			"Use 'procdash snapshot' or 'procdash serve' when output is redirected.")
	}

	var opts []monitor.Option
	if appConfig.SourceTimeout > interval {
		opts = append(opts, monitor.WithSourceTimeout(interval))
	}
	engine := newEngine(appConfig, false, opts...)
	return runDashboard(cmd.Context(), engine, interval)
}
