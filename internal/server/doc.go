// Package server exposes the monitoring engine over HTTP: a JSON API for
// the current view and history, Prometheus text exposition at /metrics, and
// a websocket feed that pushes a fresh view after every tick.
package server
