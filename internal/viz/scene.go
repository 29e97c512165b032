package viz

import (
	"github.com/san-kum/colsim/internal/body"
	"github.com/san-kum/colsim/internal/vec"
)

// Scene maps world coordinates onto a braille canvas. The mapping
// preserves aspect ratio: one world unit spans the same number of
// sub-pixels on both axes, with the boundary centered.
type Scene struct {
	Bounds body.Boundary
	Radii  []float64

	canvas *Canvas
	scale  float64
	offX   int
	offY   int
}

// NewScene sizes a scene for a canvas of w x h characters.
func NewScene(bounds body.Boundary, radii []float64, w, h int) *Scene {
	s := &Scene{
		Bounds: bounds,
		Radii:  radii,
		canvas: NewCanvas(w, h),
	}
	cw, ch := float64(w*2-1), float64(h*4-1)
	sx := cw / bounds.Width
	sy := ch / bounds.Height
	s.scale = sx
	if sy < sx {
		s.scale = sy
	}
	s.offX = int((cw - bounds.Width*s.scale) / 2)
	s.offY = int((ch - bounds.Height*s.scale) / 2)
	return s
}

func (s *Scene) Canvas() *Canvas { return s.canvas }

// project maps a world position to sub-pixel coordinates. World y
// grows upward, canvas y grows downward.
func (s *Scene) project(p vec.Vec2) (int, int) {
	x := s.offX + int(p.X*s.scale+0.5)
	y := s.offY + int((s.Bounds.Height-p.Y)*s.scale+0.5)
	return x, y
}

// Draw clears the canvas and renders the boundary plus one disk per
// position. Radii pair with positions by index; positions without a
// radius draw as single dots.
func (s *Scene) Draw(positions []vec.Vec2) {
	s.canvas.Clear()

	x0, y0 := s.project(vec.Vec2{X: 0, Y: s.Bounds.Height})
	x1, y1 := s.project(vec.Vec2{X: s.Bounds.Width, Y: 0})
	s.canvas.DrawLine(x0, y0, x1, y0)
	s.canvas.DrawLine(x0, y1, x1, y1)
	s.canvas.DrawLine(x0, y0, x0, y1)
	s.canvas.DrawLine(x1, y0, x1, y1)

	for i, p := range positions {
		cx, cy := s.project(p)
		if i < len(s.Radii) {
			s.canvas.FillCircle(cx, cy, int(s.Radii[i]*s.scale+0.5))
		} else {
			s.canvas.Set(cx, cy)
		}
	}
}

func (s *Scene) String() string { return s.canvas.String() }
