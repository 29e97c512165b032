package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Status badges for the live view header. These keep fixed conventional
// colors across themes: green running, amber paused, red recording.
var (
	StatusRunning   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff88"))
	StatusPaused    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffaa00"))
	StatusRecording = lipgloss.NewStyle().Bold(true).Blink(true).Foreground(lipgloss.Color("#ff4444"))
)

var sparkRamp = []rune("▁▂▃▄▅▆▇█")

// SparklineChart compresses a series into at most width cells, one ramp
// rune per cell, averaging the samples that fall into each. The line is
// drawn in the current theme's graph color.
func SparklineChart(values []float64, width int) string {
	if width < 1 || len(values) == 0 {
		return ""
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	cells := width
	if len(values) < cells {
		cells = len(values)
	}

	var sb strings.Builder
	for c := 0; c < cells; c++ {
		start := c * len(values) / cells
		end := (c + 1) * len(values) / cells
		sum := 0.0
		for _, v := range values[start:end] {
			sum += v
		}
		mean := sum / float64(end-start)

		idx := int((mean - lo) / span * float64(len(sparkRamp)-1))
		if idx >= len(sparkRamp) {
			idx = len(sparkRamp) - 1
		}
		sb.WriteRune(sparkRamp[idx])
	}
	return lipgloss.NewStyle().Foreground(CurrentTheme.Graph).Render(sb.String())
}

// ProgressBar renders pos in [0, 1] as a fixed-width bar in the current
// theme's accent color. Out-of-range values clamp.
func ProgressBar(pos float64, width int) string {
	if width < 1 {
		return ""
	}
	if math.IsNaN(pos) || pos < 0 {
		pos = 0
	}
	if pos > 1 {
		pos = 1
	}
	filled := int(pos*float64(width) + 0.5)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return lipgloss.NewStyle().Foreground(CurrentTheme.Accent).Render(bar)
}
