package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille character rendering for high-resolution terminal graphs.
//
// Braille patterns use a 2x4 dot matrix per character:
//
//	  Col 0  Col 1
//	Row 0:   ⠁      ⠈     (dots 1, 4)
//	Row 1:   ⠂      ⠐     (dots 2, 5)
//	Row 2:   ⠄      ⠠     (dots 3, 6)
//	Row 3:   ⡀      ⢀     (dots 7, 8)
//
// Unicode braille starts at U+2800 (empty); dot n sets bit n-1.
const brailleBase = '⠀'

// brailleDots maps [row][col] to the bit offset of that dot.
var brailleDots = [4][2]uint8{
	{0, 3},
	{1, 4},
	{2, 5},
	{6, 7},
}

// GraphScale is the vertical range a graph is drawn against.
type GraphScale struct {
	Min, Max float64
}

// PercentScale is the fixed 0-100 range used for percentage series.
var PercentScale = GraphScale{Min: 0, Max: 100}

// AutoScale returns a range spanning data, anchored at zero.
func AutoScale(data []float64) GraphScale {
	scale := GraphScale{Min: 0, Max: 1}
	for _, v := range data {
		if v > scale.Max {
			scale.Max = v
		}
	}
	return scale
}

// RenderBrailleGraph renders data as a filled area graph of width characters
// and height rows. Each character holds two data points and four vertical
// levels. Short series are right-aligned so the newest value is always at the
// right edge; long ones are downsampled keeping peaks.
func RenderBrailleGraph(data []float64, width, height int, scale GraphScale, color lipgloss.Color) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = make([]rune, width)
		for j := range grid[i] {
			grid[i][j] = brailleBase
		}
	}

	totalDots := height * 4
	targetPoints := width * 2
	points := data
	if len(points) > targetPoints {
		points = resampleData(points, targetPoints)
	}
	offset := targetPoints - len(points)

	for i, val := range points {
		dotHeight := clampInt(int(normalizeValue(val, scale.Min, scale.Max)*float64(totalDots)+0.5), totalDots)
		if dotHeight == 0 && val > scale.Min {
			dotHeight = 1
		}

		charCol := (i + offset) / 2
		subCol := (i + offset) % 2
		for dot := 0; dot < dotHeight; dot++ {
			row := height - 1 - dot/4
			subRow := 3 - dot%4
			grid[row][charCol] |= rune(1 << brailleDots[subRow][subCol])
		}
	}

	style := lipgloss.NewStyle().Foreground(color)
	lines := make([]string, height)
	for i, row := range grid {
		lines[i] = style.Render(string(row))
	}
	return strings.Join(lines, "\n")
}

// normalizeValue converts a value to 0-1 range given min/max bounds.
func normalizeValue(val, minVal, maxVal float64) float64 {
	if maxVal <= minVal {
		return 0.5
	}
	n := (val - minVal) / (maxVal - minVal)
	if n < 0 {
		return 0
	}
	if n > 1 {
		return 1
	}
	return n
}

// clampInt clamps an integer to [0, maxVal].
func clampInt(val, maxVal int) int {
	if val < 0 {
		return 0
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// resampleData downsamples data to targetSize buckets, keeping the max of
// each bucket so spikes stay visible.
func resampleData(data []float64, targetSize int) []float64 {
	if len(data) == 0 || targetSize <= 0 {
		return nil
	}
	if len(data) <= targetSize {
		return data
	}

	result := make([]float64, targetSize)
	bucketSize := float64(len(data)) / float64(targetSize)
	for i := 0; i < targetSize; i++ {
		start := int(float64(i) * bucketSize)
		end := int(float64(i+1) * bucketSize)
		if end > len(data) {
			end = len(data)
		}
		if start >= end {
			start = end - 1
		}

		maxVal := data[start]
		for j := start + 1; j < end; j++ {
			if data[j] > maxVal {
				maxVal = data[j]
			}
		}
		result[i] = maxVal
	}
	return result
}
