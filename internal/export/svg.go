package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/colsim/internal/body"
	"github.com/san-kum/colsim/internal/vec"
)

// SceneSVG renders one frame of a simulation as a standalone SVG:
// the boundary as a rectangle, every body as a circle. Positions and
// radii pair by index; scale is output pixels per world unit. World y
// grows upward, SVG y downward, so the scene is flipped vertically.
func SceneSVG(positions []vec.Vec2, radii []float64, bounds body.Boundary, scale float64) string {
	if scale <= 0 {
		scale = 40
	}
	width := bounds.Width * scale
	height := bounds.Height * scale

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<rect x="0.5" y="0.5" width="%.1f" height="%.1f" fill="none" stroke="#444466" stroke-width="1"/>
<g fill="#00a8cc" stroke="#e0f0ff" stroke-width="1">
`, width, height, width, height, width-1, height-1))

	for i, p := range positions {
		r := 2.0
		if i < len(radii) {
			r = radii[i] * scale
		}
		cx := p.X * scale
		cy := height - p.Y*scale
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, r))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// TrajectorySVG draws per-body position traces from a frame sequence
// as polylines inside the boundary. Useful for seeing billiard paths
// at a glance without animating anything.
func TrajectorySVG(frames [][]vec.Vec2, bounds body.Boundary, scale float64) string {
	if len(frames) < 2 {
		return ""
	}
	if scale <= 0 {
		scale = 40
	}
	width := bounds.Width * scale
	height := bounds.Height * scale

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<rect x="0.5" y="0.5" width="%.1f" height="%.1f" fill="none" stroke="#444466" stroke-width="1"/>
`, width, height, width, height, width-1, height-1))

	colors := []string{"#00a8cc", "#ffd700", "#ff6b6b", "#5fd068", "#ff9ff3", "#feca57"}
	for i := range frames[0] {
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, colors[i%len(colors)]))
		for k, frame := range frames {
			if i >= len(frame) {
				break
			}
			x := frame[i].X * scale
			y := height - frame[i].Y*scale
			if k == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}
