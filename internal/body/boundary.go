package body

import "github.com/san-kum/colsim/internal/vec"

// Boundary is the rectangular domain [0,Width]×[0,Height]. It is
// immutable for the lifetime of a simulation. A zero-area boundary
// produces degenerate motion; callers must not construct one.
type Boundary struct {
	Width  float64
	Height float64
}

// Contains reports whether a disk of the given radius centered at pos
// lies fully inside the boundary.
func (bd Boundary) Contains(pos vec.Vec2, radius float64) bool {
	return pos.X >= radius && pos.X <= bd.Width-radius &&
		pos.Y >= radius && pos.Y <= bd.Height-radius
}

// Center returns the midpoint of the domain.
func (bd Boundary) Center() vec.Vec2 {
	return vec.Vec2{X: bd.Width / 2, Y: bd.Height / 2}
}
