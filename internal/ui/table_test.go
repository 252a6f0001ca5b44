package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable(t *testing.T) {
	columns := []TableColumn{
		{Title: "PID", Width: 8},
		{Title: "Name", Width: 20},
	}
	rows := []table.Row{
		{"1", "init"},
		{"42", "worker"},
	}

	view := NewTable(columns, rows, LightPalette).View()

	assert.Contains(t, view, "PID")
	assert.Contains(t, view, "Name")
	assert.Contains(t, view, "init")
	assert.Contains(t, view, "worker")
}

func TestNewTable_EmptyRows(t *testing.T) {
	view := NewTable([]TableColumn{{Title: "Name", Width: 10}}, nil, DarkPalette).View()
	assert.Contains(t, view, "Name")
}

func TestRenderSimpleTable(t *testing.T) {
	columns := []TableColumn{
		{Title: "PID", Width: 5},
		{Title: "NAME", Width: 8},
		{Title: "CPU%", Width: 6},
	}
	rows := [][]string{
		{"1", "systemd", "0.1"},
		{"1234", "averyverylongname", "12.5"},
		{"7"},
	}

	out := ansi.Strip(RenderSimpleTable(columns, rows))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	require.Len(t, lines, 4)
	assert.Equal(t, "PID    NAME      CPU%", lines[0])
	assert.Equal(t, "1      systemd   0.1", lines[1])
	assert.Equal(t, "1234   averyve…  12.5", lines[2])
	assert.Equal(t, "7", lines[3])
}

func TestRenderSimpleTable_NoColumns(t *testing.T) {
	assert.Empty(t, RenderSimpleTable(nil, [][]string{{"x"}}))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", padRight("ab", 5))
	assert.Equal(t, "abcdef", padRight("abcdef", 3))
}
