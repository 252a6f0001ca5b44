package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/errors"
	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/logger"
	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/monitor"
	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/ui"
)

// snapshotCommand measures over one interval and prints the view.
func snapshotCommand(cmd *cobra.Command, format outputFormat, all bool) error {
	engine := newEngine(appConfig, false, monitor.WithShowAll(all || appConfig.ShowAll))

	view, err := takeSnapshot(cmd.Context(), engine, appConfig.Interval)
	if err != nil {
		return err
	}
	return writeSnapshot(cmd.OutOrStdout(), view, format)
}

// takeSnapshot ticks twice, interval apart, so per-process CPU has a baseline.
func takeSnapshot(ctx context.Context, engine *monitor.Engine, interval time.Duration) (monitor.View, error) {
	log := logger.New("snapshot")
	if err := engine.Tick(ctx); err != nil {
		log.Debug("first sample: %s", errors.Summary(err))
	}

	timer := time.NewTimer(interval)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return monitor.View{}, errors.WrapWithCode(ctx.Err(), errors.ErrInput, "Snapshot interrupted", "")
	case <-timer.C:
	}

	if err := engine.Tick(ctx); err != nil {
		log.Warn("sample incomplete: %s", errors.Summary(err))
	}
	return engine.View(), nil
}

func writeSnapshot(w io.Writer, view monitor.View, format outputFormat) error {
	switch format {
	case formatJSON:
		data, err := json.MarshalIndent(view, "", "  ")
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrInput, "Couldn't encode snapshot as JSON", "")
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(view); err != nil {
			return errors.WrapWithCode(err, errors.ErrInput, "Couldn't encode snapshot as YAML", "")
		}
		return enc.Close()
	default:
		_, err := io.WriteString(w, renderSnapshotTable(view))
		return err
	}
}

const gaugeWidth = 20

var snapshotColumns = []ui.TableColumn{
	{Title: "PID", Width: 8},
	{Title: "NAME", Width: 28},
	{Title: "CPU %", Width: 8},
	{Title: "MEMORY", Width: 10},
}

func renderSnapshotTable(view monitor.View) string {
	var sb strings.Builder

	for _, kind := range monitor.MetricKinds {
		values := view.History[kind.String()]
		if len(values) == 0 {
			fmt.Fprintf(&sb, "%-8s -\n", kind.String())
			continue
		}
		latest := values[len(values)-1]
		if kind.IsPercent() {
			fmt.Fprintf(&sb, "%-8s %s  %s\n", kind.String(),
				ui.RenderGauge(latest, gaugeWidth),
				ui.RenderScaledSparkline(values, len(values), 0, 100, ui.ThresholdColor(latest)))
		} else {
			fmt.Fprintf(&sb, "%-8s %s total, %.2f MB/s  %s\n", kind.String(), ui.FormatMB(latest), view.NetworkRate,
				ui.RenderSparkline(values, len(values)))
		}
	}
	sb.WriteString("\n")

	scope := fmt.Sprintf("top %d of %d processes", len(view.Processes), view.ProcessCount)
	if view.ShowAll {
		scope = fmt.Sprintf("all %d processes", view.ProcessCount)
	}
	sb.WriteString(scope + "\n")

	rows := make([][]string, len(view.Processes))
	for i, p := range view.Processes {
		rows[i] = []string{
			strconv.FormatUint(uint64(p.PID), 10),
			p.Name,
			fmt.Sprintf("%.1f", p.CPUPercent),
			ui.FormatMB(p.MemoryMB),
		}
	}
	sb.WriteString(ui.RenderSimpleTable(snapshotColumns, rows))

	if view.TickError != "" {
		fmt.Fprintf(&sb, "\n%s %s\n", ui.SymbolFail, view.TickError)
	}
	return sb.String()
}
