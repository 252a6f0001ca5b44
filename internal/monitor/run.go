package monitor

import (
	"context"
	"time"
)

// DefaultInterval is the default tick period.
const DefaultInterval = 2 * time.Second

// Run is the periodic driver: it ticks immediately, then every interval until
// ctx is cancelled. Tick failures are non-fatal and do not stop the loop.
// A tick that overruns the interval delays the next one rather than stacking.
func (e *Engine) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	e.log.Info("sampling every %s", interval)
	_ = e.Tick(ctx)

	for {
		select {
		case <-ctx.Done():
			e.log.Info("sampling stopped")
			return ctx.Err()
		case <-ticker.C:
			_ = e.Tick(ctx)
		}
	}
}
