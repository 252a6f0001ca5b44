package cli

import (
	"bytes"
	"context"
	"os"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/config"
	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/logger"
	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/monitor"
	montest "github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/monitor/testing"
)

// fakeHost replaces the engine factory with one over deterministic sources.
type fakeHost struct {
	metrics *montest.FakeMetricsSource
	procs   *montest.FakeProcessSource
	control *montest.FakeProcessControl
	force   bool
	engines int
}

func useFakeHost(t *testing.T, n int, alive ...uint32) *fakeHost {
	t.Helper()
	f := &fakeHost{
		metrics: montest.NewFakeMetricsSource(
			monitor.MetricsReading{CPUPercent: 12, MemoryPercent: 40, DiskPercent: 55, NetworkBytes: 1 << 20},
			monitor.MetricsReading{CPUPercent: 18, MemoryPercent: 41, DiskPercent: 55, NetworkBytes: 3 << 20},
		),
		procs:   montest.NewFakeProcessSource(montest.Processes(n)...),
		control: montest.NewFakeProcessControl(alive...),
	}

	origFactory, origConfig := newEngine, appConfig
	t.Cleanup(func() {
		newEngine = origFactory
		appConfig = origConfig
	})

	cfg := config.DefaultConfig()
	cfg.Interval = 10 * time.Millisecond
	cfg.SourceTimeout = 10 * time.Millisecond
	appConfig = cfg

	newEngine = func(cfg *config.Config, force bool, opts ...monitor.Option) *monitor.Engine {
		f.force = force
		f.engines++
		all := append(engineOptions(cfg), opts...)
		all = append(all, monitor.WithLogger(logger.Noop()), monitor.WithSelfPID(999999))
		return monitor.New(f.metrics, f.procs, f.control, all...)
	}
	return f
}

func stubTerminal(t *testing.T, tty bool) {
	t.Helper()
	orig := isTerminal
	isTerminal = func(*os.File) bool { return tty }
	t.Cleanup(func() { isTerminal = orig })
}

func newTestCmd(ctx context.Context) (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{}
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetContext(ctx)
	return cmd, &buf
}
