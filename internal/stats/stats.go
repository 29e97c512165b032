package stats

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/colsim/internal/body"
)

// Summary aggregates speed and energy statistics for a single snapshot.
type Summary struct {
	Bodies        int
	TotalMass     float64
	MeanSpeed     float64
	RMSSpeed      float64
	MaxSpeed      float64
	KineticEnergy float64
}

// Summarize computes a [Summary] over the given bodies.
func Summarize(bodies []*body.Body) Summary {
	s := Summary{Bodies: len(bodies)}
	if len(bodies) == 0 {
		return s
	}

	sumSq := 0.0
	for _, b := range bodies {
		speed := b.Vel.Length()
		s.MeanSpeed += speed
		sumSq += speed * speed
		if speed > s.MaxSpeed {
			s.MaxSpeed = speed
		}
		s.TotalMass += b.Mass
		s.KineticEnergy += b.KineticEnergy()
	}
	s.MeanSpeed /= float64(len(bodies))
	s.RMSSpeed = math.Sqrt(sumSq / float64(len(bodies)))
	return s
}

// Histogram is a fixed-width binning of a scalar sample over [Min, Max].
type Histogram struct {
	Min, Max float64
	Counts   []int
}

// SpeedHistogram bins body speeds into equal-width bins spanning
// [0, max speed]. A sample landing exactly on the upper edge goes into
// the last bin.
func SpeedHistogram(bodies []*body.Body, bins int) Histogram {
	if bins < 1 {
		bins = 1
	}
	h := Histogram{Counts: make([]int, bins)}
	if len(bodies) == 0 {
		return h
	}

	for _, b := range bodies {
		if v := b.Vel.Length(); v > h.Max {
			h.Max = v
		}
	}
	if h.Max == h.Min {
		// All bodies at rest: everything lands in the first bin.
		h.Counts[0] = len(bodies)
		return h
	}

	width := (h.Max - h.Min) / float64(bins)
	for _, b := range bodies {
		idx := int((b.Vel.Length() - h.Min) / width)
		if idx >= bins {
			idx = bins - 1
		}
		h.Counts[idx]++
	}
	return h
}

// Render draws the histogram as horizontal bars, one line per bin,
// scaled so the fullest bin spans width characters.
func (h Histogram) Render(width int) string {
	if len(h.Counts) == 0 {
		return ""
	}
	if width < 1 {
		width = 1
	}

	maxCount := 0
	for _, c := range h.Counts {
		if c > maxCount {
			maxCount = c
		}
	}

	binWidth := (h.Max - h.Min) / float64(len(h.Counts))
	var sb strings.Builder
	for i, c := range h.Counts {
		lo := h.Min + float64(i)*binWidth
		hi := lo + binWidth
		bar := 0
		if maxCount > 0 {
			bar = c * width / maxCount
		}
		fmt.Fprintf(&sb, "%6.2f-%6.2f │%-*s %d\n", lo, hi, width, strings.Repeat("█", bar), c)
	}
	return sb.String()
}
