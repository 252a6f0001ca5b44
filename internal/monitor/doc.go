// Package monitor implements the sampling and state engine behind the
// procdash dashboards.
//
// # Key Components
//
//	RingBuffer         - Fixed-capacity, concurrency-safe history (oldest first)
//	Collector          - Samples a MetricsSource each tick into one RingBuffer per metric
//	ProcessSnapshotter - Enumerates a ProcessSource, sorts by CPU, caches the full list
//	DisplayState       - Theme, show_all and the last kill outcome
//	Engine             - Composition root and the only API renderers use
//
// # Tick Cycle
//
// A single periodic driver (Engine.Run, or the dashboard's own timer) calls
// Engine.Tick:
//
//  1. Collector and ProcessSnapshotter run in parallel, each call bounded by the
//     source timeout
//  2. A failed metrics read pushes nothing (no placeholder, no repeat)
//  3. A failed enumeration keeps the previous process cache
//  4. Both failures are returned combined and logged; neither stops the loop
//
// Readers may call any query or DisplayState command concurrently with Tick.
// Every buffer and the process cache are guarded individually, so a reader
// always sees either the pre-tick or post-tick value of what it asked for.
//
// # Kill Requests
//
// Engine.RequestKill only reaches ProcessControl for pids present in the last
// snapshot. Failures are returned as a KillOutcome, never as an error.
package monitor
