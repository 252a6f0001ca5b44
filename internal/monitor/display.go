package monitor

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// DisplayState holds the UI-facing toggles and the last kill outcome.
// Each field has its own lock so toggling never waits on a kill in flight,
// and none of them are touched by Tick.
type DisplayState struct {
	control ProcessControl
	timeout time.Duration
	now     func() time.Time

	themeMu sync.RWMutex
	theme   Theme

	showAllMu sync.RWMutex
	showAll   bool

	killMu   sync.RWMutex
	lastKill *KillOutcome
}

// NewDisplayState creates display state with the light theme and show_all off.
func NewDisplayState(control ProcessControl) *DisplayState {
	return &DisplayState{
		control: control,
		timeout: DefaultSourceTimeout,
		now:     time.Now,
		theme:   ThemeLight,
	}
}

// SetTimeout bounds how long a kill request waits on ProcessControl.
func (d *DisplayState) SetTimeout(timeout time.Duration) {
	if timeout > 0 {
		d.timeout = timeout
	}
}

// Theme returns the current theme.
func (d *DisplayState) Theme() Theme {
	d.themeMu.RLock()
	defer d.themeMu.RUnlock()
	return d.theme
}

// SetTheme sets the theme directly (initial config).
func (d *DisplayState) SetTheme(t Theme) {
	d.themeMu.Lock()
	defer d.themeMu.Unlock()
	d.theme = t
}

// ToggleTheme flips the theme and returns the new value.
func (d *DisplayState) ToggleTheme() Theme {
	d.themeMu.Lock()
	defer d.themeMu.Unlock()
	d.theme = d.theme.Toggle()
	return d.theme
}

// ShowAll reports whether the full process list is shown.
func (d *DisplayState) ShowAll() bool {
	d.showAllMu.RLock()
	defer d.showAllMu.RUnlock()
	return d.showAll
}

// SetShowAll sets show_all directly (initial config).
func (d *DisplayState) SetShowAll(v bool) {
	d.showAllMu.Lock()
	defer d.showAllMu.Unlock()
	d.showAll = v
}

// ToggleShowAll flips show_all and returns the new value.
func (d *DisplayState) ToggleShowAll() bool {
	d.showAllMu.Lock()
	defer d.showAllMu.Unlock()
	d.showAll = !d.showAll
	return d.showAll
}

// LastKill returns the most recent kill outcome, if any.
func (d *DisplayState) LastKill() (KillOutcome, bool) {
	d.killMu.RLock()
	defer d.killMu.RUnlock()
	if d.lastKill == nil {
		return KillOutcome{}, false
	}
	return *d.lastKill, true
}

// RequestKill asks ProcessControl to terminate pid and records the outcome,
// replacing any previous one. Failures are reported in the outcome only.
func (d *DisplayState) RequestKill(ctx context.Context, pid uint32, name string) KillOutcome {
	res, err := callWithTimeout(ctx, d.timeout, func(ctx context.Context) (terminateResult, error) {
		ok, detail := d.control.Terminate(ctx, pid)
		return terminateResult{ok: ok, detail: detail}, nil
	})
	if err != nil {
		return d.record(KillOutcome{
			PID:     pid,
			Name:    name,
			Message: fmt.Sprintf("terminate request for process %d did not complete: %v", pid, err),
		})
	}

	ok, detail := res.ok, res.detail
	if detail == "" {
		if ok {
			detail = fmt.Sprintf("terminated process %d", pid)
		} else {
			detail = fmt.Sprintf("failed to terminate process %d", pid)
		}
	}
	return d.record(KillOutcome{PID: pid, Name: name, Succeeded: ok, Message: detail})
}

// Reject records a failed outcome without calling ProcessControl.
func (d *DisplayState) Reject(pid uint32, message string) KillOutcome {
	return d.record(KillOutcome{PID: pid, Succeeded: false, Message: message})
}

type terminateResult struct {
	ok     bool
	detail string
}

func (d *DisplayState) record(o KillOutcome) KillOutcome {
	o.At = d.now()
	d.killMu.Lock()
	d.lastKill = &o
	d.killMu.Unlock()
	return o
}
