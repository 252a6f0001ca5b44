package ui

import "github.com/charmbracelet/lipgloss"

// Semantic colors for status indication (ANSI codes, theme independent).
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "6" // Cyan
)

// Text colors for plain CLI output.
const (
	ColorPrimary   lipgloss.Color = "7" // White/default
	ColorSecondary lipgloss.Color = "4" // Blue
	ColorMuted     lipgloss.Color = "8" // Gray (bright black)
)

// Palette is the set of colors a dashboard theme renders with.
type Palette struct {
	Name       string
	Background lipgloss.Color
	Surface    lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Accent     lipgloss.Color

	// Series colors, one per metric.
	CPU     lipgloss.Color
	Memory  lipgloss.Color
	Disk    lipgloss.Color
	Network lipgloss.Color
}

// LightPalette keeps the familiar web dashboard colors: a blue CPU line and a
// red memory line on a light gray page.
var LightPalette = Palette{
	Name:       "light",
	Background: "#f5f5f5",
	Surface:    "#ffffff",
	Foreground: "#212529",
	Muted:      "#6c757d",
	Border:     "#ced4da",
	Accent:     "#007bff",
	CPU:        "#007bff",
	Memory:     "#dc3545",
	Disk:       "#28a745",
	Network:    "#6f42c1",
}

// DarkPalette is the inverted variant.
var DarkPalette = Palette{
	Name:       "dark",
	Background: "#1e1e2e",
	Surface:    "#2a2a3c",
	Foreground: "#e6e6e6",
	Muted:      "#8b8fa3",
	Border:     "#45475a",
	Accent:     "#4da3ff",
	CPU:        "#4da3ff",
	Memory:     "#ff6b7a",
	Disk:       "#5fd787",
	Network:    "#b48cff",
}

// PaletteFor returns the palette named name, falling back to LightPalette.
func PaletteFor(name string) Palette {
	if name == DarkPalette.Name {
		return DarkPalette
	}
	return LightPalette
}

// ThresholdColor returns a color for a percentage.
//   - 0-60%: green
//   - 60-80%: yellow
//   - 80-100%: red
func ThresholdColor(percent float64) lipgloss.Color {
	switch {
	case percent >= 80:
		return ColorError
	case percent >= 60:
		return ColorWarning
	default:
		return ColorSuccess
	}
}
