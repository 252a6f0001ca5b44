package monitor_test

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/errors"
	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/monitor"
	montest "github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/monitor/testing"
)

func pids(records []monitor.ProcessRecord) []uint32 {
	out := make([]uint32, len(records))
	for i, r := range records {
		out[i] = r.PID
	}
	return out
}

func TestSnapshotter_SortsByCPUThenPID(t *testing.T) {
	src := montest.NewFakeProcessSource(
		monitor.RawProcess{PID: 30, Name: "c", CPUPercent: 5},
		monitor.RawProcess{PID: 10, Name: "a", CPUPercent: 50},
		monitor.RawProcess{PID: 20, Name: "b", CPUPercent: 5},
		monitor.RawProcess{PID: 5, Name: "d", CPUPercent: 5},
		monitor.RawProcess{PID: 40, Name: "e", CPUPercent: 0},
	)
	s := monitor.NewProcessSnapshotter(src)

	require.NoError(t, s.Tick(context.Background()))

	assert.Equal(t, []uint32{10, 5, 20, 30, 40}, pids(s.All()))
}

func TestSnapshotter_Top(t *testing.T) {
	s := monitor.NewProcessSnapshotter(montest.NewFakeProcessSource(montest.Processes(25)...))
	require.NoError(t, s.Tick(context.Background()))

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"zero", 0, 0},
		{"negative", -1, 0},
		{"twenty", 20, 20},
		{"more than available", 100, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, s.Top(tt.limit), tt.want)
		})
	}

	top := s.Top(3)
	assert.Equal(t, []uint32{25, 24, 23}, pids(top))
}

func TestSnapshotter_ConvertsMemoryToMB(t *testing.T) {
	src := montest.NewFakeProcessSource(monitor.RawProcess{PID: 1, Name: "init", MemoryRSSBytes: 3 << 19})
	s := monitor.NewProcessSnapshotter(src)
	require.NoError(t, s.Tick(context.Background()))

	rec, ok := s.Lookup(1)
	require.True(t, ok)
	assert.InDelta(t, 1.5, rec.MemoryMB, 0.0001)
	assert.Equal(t, "init", rec.Name)
}

func TestSnapshotter_ExcludesBadEntries(t *testing.T) {
	src := montest.NewFakeProcessSource(
		monitor.RawProcess{PID: 1, CPUPercent: 1},
		monitor.RawProcess{PID: 2, CPUPercent: math.NaN()},
		monitor.RawProcess{PID: 3, CPUPercent: math.Inf(1)},
		monitor.RawProcess{PID: 4, CPUPercent: -1},
		monitor.RawProcess{PID: 1, CPUPercent: 99},
	)
	s := monitor.NewProcessSnapshotter(src)

	require.NoError(t, s.Tick(context.Background()))

	all := s.All()
	require.Len(t, all, 1)
	assert.Equal(t, float64(1), all[0].CPUPercent, "first occurrence of a pid wins")
}

func TestSnapshotter_ReplacesSnapshotEachTick(t *testing.T) {
	src := montest.NewFakeProcessSource(montest.Processes(5)...)
	s := monitor.NewProcessSnapshotter(src)
	require.NoError(t, s.Tick(context.Background()))

	src.Set(monitor.RawProcess{PID: 99, Name: "new", CPUPercent: 1})
	require.NoError(t, s.Tick(context.Background()))

	assert.Equal(t, []uint32{99}, pids(s.All()), "previous snapshot is discarded, not merged")
	_, ok := s.Lookup(1)
	assert.False(t, ok)
}

func TestSnapshotter_FailureKeepsPreviousCache(t *testing.T) {
	src := montest.NewFakeProcessSource(montest.Processes(3)...)
	s := monitor.NewProcessSnapshotter(src)
	require.NoError(t, s.Tick(context.Background()))
	takenAt := s.TakenAt()

	src.Fail(fmt.Errorf("permission denied"))
	err := s.Tick(context.Background())

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrProcess))
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, takenAt, s.TakenAt())
}

func TestSnapshotter_StalledSourceTimesOut(t *testing.T) {
	src := montest.NewFakeProcessSource(montest.Processes(3)...)
	src.Stall(500 * time.Millisecond)
	s := monitor.NewProcessSnapshotter(src)
	s.SetTimeout(20 * time.Millisecond)

	start := time.Now()
	err := s.Tick(context.Background())

	require.Error(t, err)
	assert.Less(t, time.Since(start), 400*time.Millisecond)
	assert.Equal(t, 0, s.Len())
	assert.True(t, s.TakenAt().IsZero())
}

func TestSnapshotter_ReadsAreCopies(t *testing.T) {
	s := monitor.NewProcessSnapshotter(montest.NewFakeProcessSource(montest.Processes(3)...))
	require.NoError(t, s.Tick(context.Background()))

	all := s.All()
	all[0].Name = "mutated"

	assert.NotEqual(t, "mutated", s.All()[0].Name)
}

func TestSortProcesses(t *testing.T) {
	records := []monitor.ProcessRecord{
		{PID: 9, CPUPercent: 1},
		{PID: 3, CPUPercent: 1},
		{PID: 7, CPUPercent: 2},
	}
	monitor.SortProcesses(records)
	assert.Equal(t, []uint32{7, 3, 9}, pids(records))
}
