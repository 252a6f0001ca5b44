package cli

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/config"
	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/logger"
	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/monitor"
	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/sysinfo"
)

// newEngine builds an engine over the host's real sources. Tests swap it for
// one backed by fakes.
var newEngine = func(cfg *config.Config, force bool, opts ...monitor.Option) *monitor.Engine {
	host := sysinfo.NewHostSource(cfg.DiskPath)
	host.SetLogger(logger.New("sysinfo"))

	procs := sysinfo.NewProcessTable(sysinfo.DefaultHandleTTL)
	procs.SetLogger(logger.New("processes"))

	control := sysinfo.NewSignaller(force || cfg.Kill.Force)
	control.SetLogger(logger.New("kill"))

	return monitor.New(host, procs, control, append(engineOptions(cfg), opts...)...)
}

// engineOptions maps config onto engine options.
func engineOptions(cfg *config.Config) []monitor.Option {
	return []monitor.Option{
		monitor.WithHistorySize(cfg.HistorySize),
		monitor.WithTopLimit(cfg.TopLimit),
		monitor.WithSourceTimeout(cfg.SourceTimeout),
		monitor.WithTheme(resolveTheme(cfg.Theme)),
		monitor.WithShowAll(cfg.ShowAll),
		monitor.WithLogger(logger.New("engine")),
		monitor.WithSelfPID(uint32(os.Getpid())),
	}
}

var hasDarkBackground = termenv.HasDarkBackground

// resolveTheme turns a config theme name into a Theme; "auto" asks the terminal.
// Names are matched case-insensitively, as Validate accepts them.
func resolveTheme(name string) monitor.Theme {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case config.ThemeDark:
		return monitor.ThemeDark
	case config.ThemeAuto:
		if hasDarkBackground() {
			return monitor.ThemeDark
		}
	}
	return monitor.ThemeLight
}

var isTerminal = func(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
