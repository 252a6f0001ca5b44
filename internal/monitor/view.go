package monitor

import (
	"time"

	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/errors"
)

// View is a point-in-time copy of everything a renderer needs. Each field is
// individually consistent; there is no cross-field atomicity.
type View struct {
	Theme        Theme                `json:"theme" yaml:"theme"`
	ShowAll      bool                 `json:"show_all" yaml:"show_all"`
	History      map[string][]float64 `json:"history" yaml:"history"`
	NetworkRate  float64              `json:"network_rate_mb_s" yaml:"network_rate_mb_s"`
	Processes    []ProcessRecord      `json:"processes" yaml:"processes"`
	ProcessCount int                  `json:"process_count" yaml:"process_count"`
	ProcessesAt  time.Time            `json:"processes_at" yaml:"processes_at"`
	LastKill     *KillOutcome         `json:"last_kill,omitempty" yaml:"last_kill,omitempty"`
	UpdatedAt    time.Time            `json:"updated_at" yaml:"updated_at"`
	TickError    string               `json:"tick_error,omitempty" yaml:"tick_error,omitempty"`
}

// View assembles a View from the engine's current state.
func (e *Engine) View() View {
	history := make(map[string][]float64, len(MetricKinds))
	for _, kind := range MetricKinds {
		history[kind.String()] = e.History(kind)
	}

	v := View{
		Theme:        e.Theme(),
		ShowAll:      e.ShowAll(),
		History:      history,
		NetworkRate:  e.NetworkRate(),
		Processes:    e.Processes(),
		ProcessCount: e.ProcessCount(),
		ProcessesAt:  e.ProcessesTakenAt(),
	}
	if k, ok := e.LastKill(); ok {
		v.LastKill = &k
	}
	updatedAt, tickErr := e.LastTick()
	v.UpdatedAt = updatedAt
	v.TickError = errors.Summary(tickErr)
	return v
}
