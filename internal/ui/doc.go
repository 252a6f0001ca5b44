// Package ui provides terminal rendering helpers shared by the dashboard and
// the CLI: theme palettes, sparklines, gauges and tables built on Lip Gloss
// and Bubbles.
//
// # Palettes
//
// LightPalette and DarkPalette hold the dashboard colors. PaletteFor maps a
// theme name to its palette:
//
//	p := ui.PaletteFor("dark")
//	title := lipgloss.NewStyle().Foreground(p.Accent).Render("CPU")
//
// # Sparklines
//
// RenderSparkline scales a series between its own min and max, for counters
// such as network totals. RenderScaledSparkline uses a fixed range, which
// keeps a steady percentage flat:
//
//	ui.RenderScaledSparkline(cpu, 40, 0, 100, p.CPU)
//
// Semantic status colors (ColorSuccess, ColorError, ...) are ANSI codes and
// do not change with the theme.
package ui
