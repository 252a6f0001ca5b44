package sysinfo

import (
	"context"
	"math"
	"sync"
	"time"

	"emperror.dev/errors"
	"github.com/jellydator/ttlcache/v3"
	"github.com/shirou/gopsutil/v4/process"

	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/logger"
	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/monitor"
)

// DefaultHandleTTL is how long an unseen process handle is kept.
const DefaultHandleTTL = time.Minute

// ErrEnumerating is returned when Enumerate overlaps a call that has not
// finished, such as one abandoned after a timeout.
const ErrEnumerating = errors.Sentinel("process enumeration already in progress")

// handle is a cached process handle. created guards against pid reuse.
type handle struct {
	proc    *process.Process
	created int64
}

// ProcessTable enumerates running processes.
type ProcessTable struct {
	mu      sync.Mutex
	handles *ttlcache.Cache[int32, *handle]
	log     logger.Logger
}

// NewProcessTable creates a table that forgets processes not seen for ttl.
func NewProcessTable(ttl time.Duration) *ProcessTable {
	if ttl <= 0 {
		ttl = DefaultHandleTTL
	}
	return &ProcessTable{
		handles: ttlcache.New(
			ttlcache.WithTTL[int32, *handle](ttl),
		),
		log: logger.Noop(),
	}
}

// SetLogger sets the logger.
func (t *ProcessTable) SetLogger(l logger.Logger) {
	if l != nil {
		t.log = l
	}
}

// Enumerate implements monitor.ProcessSource. Processes that exit or deny
// access while being read are skipped; only a failure to list pids fails the
// call. A call made while an earlier one is still running fails with
// ErrEnumerating instead of sharing its process handles.
func (t *ProcessTable) Enumerate(ctx context.Context) ([]monitor.RawProcess, error) {
	if !t.mu.TryLock() {
		return nil, ErrEnumerating
	}
	defer t.mu.Unlock()

	pids, err := process.PidsWithContext(ctx)
	if err != nil {
		return nil, errors.WrapIf(err, "list pids")
	}

	out := make([]monitor.RawProcess, 0, len(pids))
	skipped := 0
	for _, pid := range pids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw, err := t.read(ctx, pid)
		if err != nil {
			t.handles.Delete(pid)
			skipped++
			continue
		}
		out = append(out, raw)
	}

	t.handles.DeleteExpired()
	if skipped > 0 {
		t.log.Debug("skipped %d of %d processes", skipped, len(pids))
	}
	t.log.Debug("enumerated %d processes, %d handles cached", len(out), t.Len())
	return out, nil
}

func (t *ProcessTable) read(ctx context.Context, pid int32) (monitor.RawProcess, error) {
	h, err := t.handle(ctx, pid)
	if err != nil {
		return monitor.RawProcess{}, err
	}

	name, err := h.proc.NameWithContext(ctx)
	if err != nil {
		return monitor.RawProcess{}, err
	}
	cpuPct, err := h.proc.PercentWithContext(ctx, 0)
	if err != nil {
		return monitor.RawProcess{}, err
	}
	memInfo, err := h.proc.MemoryInfoWithContext(ctx)
	if err != nil {
		return monitor.RawProcess{}, err
	}

	return monitor.RawProcess{
		PID:            uint32(pid),
		Name:           name,
		CPUPercent:     cpuPct,
		MemoryRSSBytes: memInfo.RSS,
	}, nil
}

// handle returns the cached handle for pid, replacing it when the pid now
// belongs to a different process.
func (t *ProcessTable) handle(ctx context.Context, pid int32) (*handle, error) {
	proc, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		return nil, err
	}
	created, err := proc.CreateTimeWithContext(ctx)
	if err != nil {
		return nil, err
	}

	if item := t.handles.Get(pid); item != nil && item.Value().created == created {
		return item.Value(), nil
	}

	h := &handle{proc: proc, created: created}
	t.handles.Set(pid, h, ttlcache.DefaultTTL)
	return h, nil
}

// Len returns the number of cached handles.
func (t *ProcessTable) Len() int {
	return t.handles.Len()
}

// toPID32 converts a monitor pid to gopsutil's representation.
func toPID32(pid uint32) (int32, error) {
	if pid == 0 || pid > math.MaxInt32 {
		return 0, errors.Errorf("pid %d out of range", pid)
	}
	return int32(pid), nil
}
