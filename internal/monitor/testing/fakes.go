// Package testing provides deterministic test doubles for the monitor package.
package testing

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/monitor"
)

// FakeMetricsSource returns scripted readings. Readings are consumed in order;
// once exhausted the last one repeats. Calls listed in FailOn fail.
type FakeMetricsSource struct {
	mu sync.Mutex

	Readings []monitor.MetricsReading
	// FailOn holds 1-based call numbers that return FailError.
	FailOn    map[int]bool
	FailError error
	// Delay stalls every call, ignoring the context, to exercise timeouts.
	Delay time.Duration

	calls int
}

// NewFakeMetricsSource creates a source that returns the given readings.
func NewFakeMetricsSource(readings ...monitor.MetricsReading) *FakeMetricsSource {
	return &FakeMetricsSource{
		Readings:  readings,
		FailOn:    make(map[int]bool),
		FailError: fmt.Errorf("counters unavailable"),
	}
}

// Sample implements monitor.MetricsSource.
func (f *FakeMetricsSource) Sample(ctx context.Context) (monitor.MetricsReading, error) {
	f.mu.Lock()
	f.calls++
	call := f.calls
	delay := f.Delay
	fail := f.FailOn[call]
	var reading monitor.MetricsReading
	if n := len(f.Readings); n > 0 {
		idx := call - 1
		if idx >= n {
			idx = n - 1
		}
		reading = f.Readings[idx]
	}
	f.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}
	if fail {
		return monitor.MetricsReading{}, f.FailError
	}
	return reading, nil
}

// Calls returns how many times Sample was called.
func (f *FakeMetricsSource) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// FakeProcessSource returns a settable process list.
type FakeProcessSource struct {
	mu        sync.Mutex
	processes []monitor.RawProcess
	err       error
	delay     time.Duration
	calls     int
}

// NewFakeProcessSource creates a source returning processes.
func NewFakeProcessSource(processes ...monitor.RawProcess) *FakeProcessSource {
	return &FakeProcessSource{processes: processes}
}

// Set replaces the list returned by later calls.
func (f *FakeProcessSource) Set(processes ...monitor.RawProcess) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.processes = processes
}

// Fail makes later calls return err (nil restores success).
func (f *FakeProcessSource) Fail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

// Stall makes later calls sleep for d, ignoring the context.
func (f *FakeProcessSource) Stall(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.delay = d
}

// Enumerate implements monitor.ProcessSource.
func (f *FakeProcessSource) Enumerate(ctx context.Context) ([]monitor.RawProcess, error) {
	f.mu.Lock()
	f.calls++
	delay, err := f.delay, f.err
	out := make([]monitor.RawProcess, len(f.processes))
	copy(out, f.processes)
	f.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Calls returns how many times Enumerate was called.
func (f *FakeProcessSource) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// FakeProcessControl records Terminate calls. Pids in Alive succeed and are
// removed; any other pid fails with "no such process".
type FakeProcessControl struct {
	mu    sync.Mutex
	alive map[uint32]bool
	calls []uint32
}

// NewFakeProcessControl creates a control where pids are alive.
func NewFakeProcessControl(pids ...uint32) *FakeProcessControl {
	alive := make(map[uint32]bool, len(pids))
	for _, pid := range pids {
		alive[pid] = true
	}
	return &FakeProcessControl{alive: alive}
}

// Terminate implements monitor.ProcessControl.
func (f *FakeProcessControl) Terminate(ctx context.Context, pid uint32) (bool, string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, pid)
	if !f.alive[pid] {
		return false, fmt.Sprintf("process %d: no such process", pid)
	}
	delete(f.alive, pid)
	return true, fmt.Sprintf("sent SIGTERM to process %d", pid)
}

// Calls returns the pids passed to Terminate, in order.
func (f *FakeProcessControl) Calls() []uint32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]uint32, len(f.calls))
	copy(out, f.calls)
	return out
}

// Processes builds n raw processes with pids 1..n and CPU equal to the pid,
// so higher pids sort first.
func Processes(n int) []monitor.RawProcess {
	out := make([]monitor.RawProcess, n)
	for i := range out {
		pid := uint32(i + 1)
		out[i] = monitor.RawProcess{
			PID:            pid,
			Name:           fmt.Sprintf("proc-%d", pid),
			CPUPercent:     float64(pid),
			MemoryRSSBytes: uint64(pid) << 20,
		}
	}
	return out
}
