package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline block characters representing 8 vertical levels (lowest to highest).
const sparklineBlocks = "▁▂▃▄▅▆▇█"

var sparklineBlockRunes = []rune(sparklineBlocks)

// Gauge characters.
const (
	gaugeFilled = '█'
	gaugeEmpty  = '░'
)

// RenderSparkline creates a sparkline from the most recent width values,
// scaled between their own min and max. The color follows the last value's
// percentage threshold.
func RenderSparkline(data []float64, width int) string {
	if len(data) == 0 || width <= 0 {
		return ""
	}
	if len(data) > width {
		data = data[len(data)-width:]
	}

	minVal, maxVal := data[0], data[0]
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}

	line := sparkline(data, minVal, maxVal)
	return lipgloss.NewStyle().Foreground(ThresholdColor(data[len(data)-1])).Render(line)
}

// RenderScaledSparkline creates a sparkline on a fixed [lo, hi] scale, so that
// percentage series keep their height across redraws. Values outside the
// scale are clamped.
func RenderScaledSparkline(data []float64, width int, lo, hi float64, color lipgloss.Color) string {
	if len(data) == 0 || width <= 0 {
		return ""
	}
	if len(data) > width {
		data = data[len(data)-width:]
	}
	return lipgloss.NewStyle().Foreground(color).Render(sparkline(data, lo, hi))
}

func sparkline(data []float64, lo, hi float64) string {
	var sb strings.Builder
	sb.Grow(len(data) * 3)

	numLevels := len(sparklineBlockRunes)
	valueRange := hi - lo

	for _, v := range data {
		level := numLevels / 2
		if valueRange > 0 {
			level = int((v - lo) / valueRange * float64(numLevels-1))
			if level < 0 {
				level = 0
			} else if level >= numLevels {
				level = numLevels - 1
			}
		}
		sb.WriteRune(sparklineBlockRunes[level])
	}
	return sb.String()
}

// RenderGauge renders a percentage bar: ████████░░░░  67%
// The percent is clamped to 0-100 and colored by threshold.
func RenderGauge(percent float64, width int) string {
	if width <= 0 {
		return ""
	}
	if percent < 0 {
		percent = 0
	} else if percent > 100 {
		percent = 100
	}

	filled := int(percent / 100 * float64(width))
	bar := strings.Repeat(string(gaugeFilled), filled) + strings.Repeat(string(gaugeEmpty), width-filled)

	style := lipgloss.NewStyle().Foreground(ThresholdColor(percent))
	return style.Render(bar) + fmt.Sprintf(" %3.0f%%", percent)
}
