// Package dashboard implements the terminal dashboard over a monitor.Engine.
//
// The package uses the Bubble Tea framework (Model-Update-View):
//
//   - Model: view-local state (size, selection, pending kill confirmation);
//     metric history, the process list, theme and show_all live in the engine
//   - Update: processes keystrokes, tick events and finished engine calls
//   - View: renders header, one chart per metric, the process table and footer
//
// # Message Flow
//
//  1. tickMsg fires every interval
//  2. refreshCmd runs Engine.Tick off the UI goroutine
//  3. tickDoneMsg arrives and View re-renders from the engine
//
// A tick that arrives while the previous refresh is still running is skipped.
// Kill requests run the same way: x asks for confirmation, y sends killCmd and
// killDoneMsg clears the pending status; the outcome itself is read back from
// Engine.LastKill.
//
// # Themes
//
// Styles are derived from the ui palettes. Pressing t toggles the engine's
// theme and rebuilds the styles; charts keep their per-metric colors (blue
// CPU, red memory in the light theme).
package dashboard
