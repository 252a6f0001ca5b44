package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// TableColumn defines a table column with name and width.
type TableColumn struct {
	Title string
	Width int
}

// NewTable creates a Bubbles table styled with palette.
func NewTable(columns []TableColumn, rows []table.Row, palette Palette) table.Model {
	cols := make([]table.Column, len(columns))
	for i, c := range columns {
		cols[i] = table.Column{Title: c.Title, Width: c.Width}
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+1), // +1 for header
	)
	t.SetStyles(TableStyles(palette))
	return t
}

// TableStyles returns table styles for palette.
func TableStyles(palette Palette) table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(palette.Border).
		BorderBottom(true).
		Bold(true).
		Foreground(palette.Foreground)
	s.Cell = s.Cell.
		Foreground(palette.Foreground)
	s.Selected = s.Selected.
		Foreground(palette.Surface).
		Background(palette.Accent).
		Bold(false)
	return s
}

// RenderSimpleTable renders a plain, non-interactive table for CLI output.
// Cells wider than their column are truncated with an ellipsis.
func RenderSimpleTable(columns []TableColumn, rows [][]string) string {
	if len(columns) == 0 {
		return ""
	}

	headerStyle := lipgloss.NewStyle().Bold(true)
	var sb strings.Builder

	titles := make([]string, len(columns))
	for i, c := range columns {
		titles[i] = padRight(truncate(c.Title, c.Width), c.Width)
	}
	sb.WriteString(headerStyle.Render(strings.TrimRight(strings.Join(titles, "  "), " ")))
	sb.WriteString("\n")

	for _, row := range rows {
		cells := make([]string, len(columns))
		for i, c := range columns {
			var cell string
			if i < len(row) {
				cell = row[i]
			}
			cells[i] = padRight(truncate(cell, c.Width), c.Width)
		}
		sb.WriteString(strings.TrimRight(strings.Join(cells, "  "), " "))
		sb.WriteString("\n")
	}
	return sb.String()
}

// padRight pads a string to the specified visible width.
func padRight(s string, width int) string {
	visibleLen := lipgloss.Width(s)
	if visibleLen >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visibleLen)
}

func truncate(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	if width == 1 || len(r) <= 1 {
		return string(r[:1])
	}
	if len(r) > width-1 {
		r = r[:width-1]
	}
	return string(r) + "…"
}
