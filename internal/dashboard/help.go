package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HelpBinding represents a single keyboard shortcut entry.
type HelpBinding struct {
	Key  string
	Desc string
}

// helpBindings defines all keyboard shortcuts shown in the help overlay.
var helpBindings = []HelpBinding{
	{Key: "q / Ctrl+C", Desc: "Quit"},
	{Key: "t", Desc: "Toggle light/dark theme"},
	{Key: "a", Desc: "Show all processes / top only"},
	{Key: "r", Desc: "Refresh now"},
	{Key: "up / k", Desc: "Select previous process"},
	{Key: "down / j", Desc: "Select next process"},
	{Key: "Home / End", Desc: "Select first / last process"},
	{Key: "x", Desc: "Terminate selected process"},
	{Key: "?", Desc: "Toggle this help"},
}

// renderHelpOverlay renders a centered help box with keyboard shortcuts.
func (m Model) renderHelpOverlay() string {
	s := m.styles
	lines := []string{s.HelpTitle.Render("Keyboard Shortcuts"), ""}
	for _, binding := range helpBindings {
		lines = append(lines, s.HelpKey.Render(binding.Key)+s.HelpDesc.Render(binding.Desc))
	}
	lines = append(lines, "", s.Label.Render("Press ? to close"))

	width, height := m.size()
	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		s.HelpBox.Render(strings.Join(lines, "\n")),
		lipgloss.WithWhitespaceChars(" "),
	)
}
