package collision

import (
	"math"

	"github.com/san-kum/colsim/internal/body"
)

// CollideWall reflects b off the boundary walls, one axis at a time.
// The position is hard-clamped so the disk never rests past a wall, and
// the velocity component on that axis is forced outward with its
// magnitude preserved (restitution 1).
func CollideWall(b *body.Body, bounds body.Boundary) {
	if b.Pos.X-b.Radius < 0 {
		b.Pos.X = b.Radius
		b.Vel.X = math.Abs(b.Vel.X)
	} else if b.Pos.X+b.Radius > bounds.Width {
		b.Pos.X = bounds.Width - b.Radius
		b.Vel.X = -math.Abs(b.Vel.X)
	}

	if b.Pos.Y-b.Radius < 0 {
		b.Pos.Y = b.Radius
		b.Vel.Y = math.Abs(b.Vel.Y)
	} else if b.Pos.Y+b.Radius > bounds.Height {
		b.Pos.Y = bounds.Height - b.Radius
		b.Vel.Y = -math.Abs(b.Vel.Y)
	}
}
