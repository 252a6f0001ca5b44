package monitor

import (
	"context"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/errors"
	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/logger"
)

// DefaultTopLimit is the number of processes shown when show_all is off.
const DefaultTopLimit = 20

// ProcessSnapshotter turns a ProcessSource enumeration into a cached, sorted
// process list. Each tick replaces the cache wholesale; readers always see one
// complete snapshot.
type ProcessSnapshotter struct {
	source  ProcessSource
	timeout time.Duration
	log     logger.Logger
	now     func() time.Time

	mu      sync.RWMutex
	full    []ProcessRecord
	index   map[uint32]int // pid -> position in full
	takenAt time.Time
}

// NewProcessSnapshotter creates a snapshotter over source.
func NewProcessSnapshotter(source ProcessSource) *ProcessSnapshotter {
	return &ProcessSnapshotter{
		source:  source,
		timeout: DefaultSourceTimeout,
		log:     logger.Noop(),
		now:     time.Now,
		full:    []ProcessRecord{},
		index:   map[uint32]int{},
	}
}

// SetTimeout sets the per-call bound on the process source.
func (s *ProcessSnapshotter) SetTimeout(timeout time.Duration) {
	if timeout > 0 {
		s.timeout = timeout
	}
}

// SetLogger sets the logger for non-fatal enumeration events.
func (s *ProcessSnapshotter) SetLogger(l logger.Logger) {
	if l != nil {
		s.log = l
	}
}

// Tick enumerates, filters and sorts processes, then swaps the cache.
// If the enumeration fails as a whole the previous cache is kept and an
// ErrProcess error is returned.
func (s *ProcessSnapshotter) Tick(ctx context.Context) error {
	raw, err := callWithTimeout(ctx, s.timeout, s.source.Enumerate)
	if err != nil {
		s.log.Warn("process enumeration failed, keeping previous snapshot: %v", err)
		return errors.WrapWithCode(err, errors.ErrProcess, "Process enumeration failed", "")
	}

	records, dropped := buildRecords(raw)
	if dropped > 0 {
		s.log.Debug("excluded %d unreadable or duplicate process entries", dropped)
	}
	SortProcesses(records)

	index := make(map[uint32]int, len(records))
	for i, r := range records {
		index[r.PID] = i
	}

	s.mu.Lock()
	s.full = records
	s.index = index
	s.takenAt = s.now()
	s.mu.Unlock()
	return nil
}

// Top returns the first limit records of the current snapshot.
func (s *ProcessSnapshotter) Top(limit int) []ProcessRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit < 0 {
		limit = 0
	}
	if limit > len(s.full) {
		limit = len(s.full)
	}
	out := make([]ProcessRecord, limit)
	copy(out, s.full[:limit])
	return out
}

// All returns the complete current snapshot.
func (s *ProcessSnapshotter) All() []ProcessRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]ProcessRecord, len(s.full))
	copy(out, s.full)
	return out
}

// Len returns the number of processes in the current snapshot.
func (s *ProcessSnapshotter) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.full)
}

// Lookup returns the record for pid in the current snapshot.
func (s *ProcessSnapshotter) Lookup(pid uint32) (ProcessRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[pid]
	if !ok {
		return ProcessRecord{}, false
	}
	return s.full[i], true
}

// TakenAt returns when the current snapshot was built (zero before the first tick).
func (s *ProcessSnapshotter) TakenAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.takenAt
}

// SortProcesses orders records by CPU descending, then pid ascending.
func SortProcesses(records []ProcessRecord) {
	sort.Slice(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.CPUPercent != b.CPUPercent {
			return a.CPUPercent > b.CPUPercent
		}
		return a.PID < b.PID
	})
}

// buildRecords converts raw entries, dropping ones with unusable CPU figures and
// repeated pids (first occurrence wins). Returns the records and the drop count.
func buildRecords(raw []RawProcess) ([]ProcessRecord, int) {
	records := make([]ProcessRecord, 0, len(raw))
	seen := make(map[uint32]struct{}, len(raw))
	dropped := 0

	for _, p := range raw {
		if math.IsNaN(p.CPUPercent) || math.IsInf(p.CPUPercent, 0) || p.CPUPercent < 0 {
			dropped++
			continue
		}
		if _, dup := seen[p.PID]; dup {
			dropped++
			continue
		}
		seen[p.PID] = struct{}{}

		records = append(records, ProcessRecord{
			PID:        p.PID,
			Name:       p.Name,
			CPUPercent: p.CPUPercent,
			MemoryMB:   bytesToMB(p.MemoryRSSBytes),
		})
	}
	return records, dropped
}
