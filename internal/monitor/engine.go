package monitor

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/errors"
	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/logger"
)

// Options configures an Engine.
type Options struct {
	HistorySize   int
	TopLimit      int
	SourceTimeout time.Duration
	Theme         Theme
	ShowAll       bool
	Logger        logger.Logger
	// SelfPID is refused by kill requests. Defaults to the current process.
	SelfPID uint32
}

// Option mutates Options.
type Option func(*Options)

func defaultOptions() *Options {
	return &Options{
		HistorySize:   DefaultHistorySize,
		TopLimit:      DefaultTopLimit,
		SourceTimeout: DefaultSourceTimeout,
		Theme:         ThemeLight,
		Logger:        logger.Noop(),
		SelfPID:       uint32(os.Getpid()),
	}
}

// WithHistorySize sets the ring buffer capacity per metric.
func WithHistorySize(n int) Option {
	return func(o *Options) { o.HistorySize = n }
}

// WithTopLimit sets how many processes Processes returns when show_all is off.
func WithTopLimit(n int) Option {
	return func(o *Options) { o.TopLimit = n }
}

// WithSourceTimeout bounds each external source call made by Tick.
func WithSourceTimeout(d time.Duration) Option {
	return func(o *Options) { o.SourceTimeout = d }
}

// WithTheme sets the initial theme.
func WithTheme(t Theme) Option {
	return func(o *Options) { o.Theme = t }
}

// WithShowAll sets the initial show_all flag.
func WithShowAll(v bool) Option {
	return func(o *Options) { o.ShowAll = v }
}

// WithLogger sets the engine logger. Components get the same logger.
func WithLogger(l logger.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithSelfPID overrides the pid that kill requests refuse.
func WithSelfPID(pid uint32) Option {
	return func(o *Options) { o.SelfPID = pid }
}

// TickHook is called after every Tick with its (possibly nil) non-fatal error.
type TickHook func(err error)

// Engine composes the collector, the process snapshotter and the display state,
// and is the only API the renderers use. Tick is the sole writer of history and
// the process cache.
type Engine struct {
	collector   *Collector
	snapshotter *ProcessSnapshotter
	display     *DisplayState
	topLimit    int
	selfPID     uint32
	log         logger.Logger

	tickMu sync.Mutex // serializes Tick

	stateMu  sync.RWMutex
	lastTick time.Time
	lastErr  error
	ticks    uint64

	hooksMu sync.RWMutex
	hooks   []TickHook
}

// New creates an engine over the given sources.
func New(metrics MetricsSource, procs ProcessSource, control ProcessControl, opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.TopLimit <= 0 {
		o.TopLimit = DefaultTopLimit
	}
	if o.Logger == nil {
		o.Logger = logger.Noop()
	}

	collector := NewCollector(metrics, o.HistorySize)
	collector.SetTimeout(o.SourceTimeout)
	collector.SetLogger(o.Logger)

	snapshotter := NewProcessSnapshotter(procs)
	snapshotter.SetTimeout(o.SourceTimeout)
	snapshotter.SetLogger(o.Logger)

	display := NewDisplayState(control)
	display.SetTimeout(o.SourceTimeout)
	display.SetTheme(o.Theme)
	display.SetShowAll(o.ShowAll)

	return &Engine{
		collector:   collector,
		snapshotter: snapshotter,
		display:     display,
		topLimit:    o.TopLimit,
		selfPID:     o.SelfPID,
		log:         o.Logger,
	}
}

// Tick runs one sampling cycle: the collector and the snapshotter run in
// parallel, each bounded by the source timeout. The returned error is never
// fatal; it combines whatever sources failed this tick.
func (e *Engine) Tick(ctx context.Context) error {
	e.tickMu.Lock()
	start := time.Now()

	var metricsErr, procErr error
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		metricsErr = e.collector.Tick(ctx)
	}()
	go func() {
		defer wg.Done()
		procErr = e.snapshotter.Tick(ctx)
	}()
	wg.Wait()

	err := errors.Combine(metricsErr, procErr)

	e.stateMu.Lock()
	e.lastTick = time.Now()
	e.lastErr = err
	e.ticks++
	e.stateMu.Unlock()
	e.tickMu.Unlock()

	e.log.Debug("tick finished in %s (%d processes)", time.Since(start).Round(time.Millisecond), e.snapshotter.Len())

	e.hooksMu.RLock()
	hooks := append([]TickHook(nil), e.hooks...)
	e.hooksMu.RUnlock()
	for _, hook := range hooks {
		hook(err)
	}
	return err
}

// OnTick registers a hook called after every Tick.
func (e *Engine) OnTick(hook TickHook) {
	e.hooksMu.Lock()
	defer e.hooksMu.Unlock()
	e.hooks = append(e.hooks, hook)
}

// History returns the stored values for kind, oldest first.
func (e *Engine) History(kind MetricKind) []float64 {
	return e.collector.History(kind)
}

// Samples returns the stored timestamped samples for kind, oldest first.
func (e *Engine) Samples(kind MetricKind) []Sample {
	return e.collector.Samples(kind)
}

// Latest returns the newest sample for kind.
func (e *Engine) Latest(kind MetricKind) (Sample, bool) {
	return e.collector.Latest(kind)
}

// HistoryCapacity returns the per-metric history capacity.
func (e *Engine) HistoryCapacity() int {
	return e.collector.Capacity()
}

// NetworkRate returns the latest network throughput in MB/s.
func (e *Engine) NetworkRate() float64 {
	return e.collector.NetworkRate()
}

// Processes returns the cached process list, limited to the top entries unless
// show_all is on. show_all is read here, not baked into the cache.
func (e *Engine) Processes() []ProcessRecord {
	if e.display.ShowAll() {
		return e.snapshotter.All()
	}
	return e.snapshotter.Top(e.topLimit)
}

// ProcessesTakenAt returns when the cached process list was built. It lags
// LastTick when enumeration has been failing.
func (e *Engine) ProcessesTakenAt() time.Time {
	return e.snapshotter.TakenAt()
}

// ProcessCount returns the size of the full cached process list.
func (e *Engine) ProcessCount() int {
	return e.snapshotter.Len()
}

// TopLimit returns how many processes are shown when show_all is off.
func (e *Engine) TopLimit() int {
	return e.topLimit
}

// Theme returns the current theme.
func (e *Engine) Theme() Theme {
	return e.display.Theme()
}

// ToggleTheme flips the theme and returns the new value.
func (e *Engine) ToggleTheme() Theme {
	t := e.display.ToggleTheme()
	e.log.Debug("theme set to %s", t)
	return t
}

// ShowAll reports whether the full process list is shown.
func (e *Engine) ShowAll() bool {
	return e.display.ShowAll()
}

// ToggleShowAll flips show_all and returns the new value.
func (e *Engine) ToggleShowAll() bool {
	v := e.display.ToggleShowAll()
	e.log.Debug("show_all set to %t", v)
	return v
}

// LastKill returns the most recent kill outcome, if any.
func (e *Engine) LastKill() (KillOutcome, bool) {
	return e.display.LastKill()
}

// RequestKill terminates pid if it is present in the last snapshot. Invalid
// pids, the engine's own pid and pids missing from the snapshot are rejected
// without reaching ProcessControl. It never returns an error; the outcome
// describes what happened and replaces the previous one.
func (e *Engine) RequestKill(ctx context.Context, pid uint32) KillOutcome {
	var outcome KillOutcome
	switch rec, found := e.snapshotter.Lookup(pid); {
	case pid == 0:
		outcome = e.display.Reject(pid, "invalid pid 0")
	case pid == e.selfPID:
		outcome = e.display.Reject(pid, fmt.Sprintf("refusing to terminate process %d: it is this monitor", pid))
	case !found:
		outcome = e.display.Reject(pid, fmt.Sprintf("process %d not found in the current snapshot", pid))
	default:
		outcome = e.display.RequestKill(ctx, pid, rec.Name)
	}

	if outcome.Succeeded {
		e.log.Info("kill %d (%s): %s", outcome.PID, outcome.Name, outcome.Message)
	} else {
		e.log.Warn("kill %d failed: %s", outcome.PID, outcome.Message)
	}
	return outcome
}

// RequestKillInput parses raw as a pid and requests the kill. Malformed input
// yields a failed outcome without reaching ProcessControl.
func (e *Engine) RequestKillInput(ctx context.Context, raw string) KillOutcome {
	pid, err := ParsePID(raw)
	if err != nil {
		outcome := e.display.Reject(0, errors.Summary(err))
		e.log.Warn("kill rejected: %s", outcome.Message)
		return outcome
	}
	return e.RequestKill(ctx, pid)
}

// LastTick returns when the last Tick finished and its non-fatal error.
func (e *Engine) LastTick() (time.Time, error) {
	e.stateMu.RLock()
	defer e.stateMu.RUnlock()
	return e.lastTick, e.lastErr
}

// TickCount returns how many ticks have run.
func (e *Engine) TickCount() uint64 {
	e.stateMu.RLock()
	defer e.stateMu.RUnlock()
	return e.ticks
}

// ParsePID parses a textual pid. Zero, negative and non-numeric values are
// rejected with an ErrInput error.
func ParsePID(raw string) (uint32, error) {
	s := strings.TrimSpace(raw)
	pid, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrInput,
			fmt.Sprintf("Invalid pid %q", raw),
			"A pid is a positive whole number")
	}
	if pid == 0 {
		return 0, errors.New(errors.ErrInput, "Invalid pid 0", "A pid is a positive whole number")
	}
	return uint32(pid), nil
}
