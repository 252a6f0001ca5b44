package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/errors"
	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/logger"
	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/monitor"
	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/ui"
)

// confirmKill asks the user before a process is signalled. Tests replace it.
var confirmKill = func(title, description string) (bool, error) {
	var confirmed bool
	err := huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative("Terminate").
		Negative("Cancel").
		Value(&confirmed).
		Run()
	return confirmed, err
}

// killCommand snapshots the process table, confirms, and terminates pid.
func killCommand(cmd *cobra.Command, raw string, yes, force bool) error {
	pid, err := monitor.ParsePID(raw)
	if err != nil {
		return err
	}
	if !yes && !isTerminal(os.Stdin) {
		return errors.New(errors.ErrInput,
			"Refusing to terminate a process without confirmation",
			"Pass --yes when stdin is not a terminal.")
	}

	ctx := cmd.Context()
	engine := newEngine(appConfig, force, monitor.WithShowAll(true))
	if err := engine.Tick(ctx); err != nil {
		logger.New("kill").Warn("snapshot incomplete: %s", errors.Summary(err))
	}

	if rec, found := findProcess(engine.Processes(), pid); found && !yes {
		signal := "SIGTERM"
		if force || appConfig.Kill.Force {
			signal = "SIGKILL"
		}
		ok, err := confirmKill(
			fmt.Sprintf("Terminate %s (pid %d)?", rec.Name, pid),
			fmt.Sprintf("Sends %s. CPU %.1f%%, memory %s.", signal, rec.CPUPercent, ui.FormatMB(rec.MemoryMB)),
		)
		if err == huh.ErrUserAborted || (err == nil && !ok) {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrInput, "Confirmation prompt failed", "Pass --yes to skip the prompt.")
		}
	}

	outcome := engine.RequestKill(ctx, pid)
	if !outcome.Succeeded {
		return errors.New(errors.ErrKill, outcome.Message, killSuggestion(force || appConfig.Kill.Force))
	}

	mark := lipgloss.NewStyle().Foreground(ui.ColorSuccess).Render(ui.SymbolSuccess)
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", mark, outcome.Message)
	return nil
}

func findProcess(procs []monitor.ProcessRecord, pid uint32) (monitor.ProcessRecord, bool) {
	for _, p := range procs {
		if p.PID == pid {
			return p, true
		}
	}
	return monitor.ProcessRecord{}, false
}

func killSuggestion(force bool) string {
	if force {
		return "Check the pid with 'procdash snapshot --all' and that you own the process."
	}
	return "Check the pid with 'procdash snapshot --all', or retry with --force."
}
