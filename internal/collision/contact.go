package collision

import (
	"github.com/san-kum/colsim/internal/body"
	"github.com/san-kum/colsim/internal/vec"
)

const (
	// contactTol is the relative slack added to the sum-of-radii test so
	// detection does not flicker on floating-point noise.
	contactTol = 1e-8

	// minSeparation is the center distance below which the contact
	// direction is numerically meaningless.
	minSeparation = 1e-10
)

// fallbackNormal is used when two centers coincide and no direction can
// be recovered from the geometry.
var fallbackNormal = vec.Vec2{X: 1, Y: 0}

// ContactInfo describes the contact state of a body pair. When the pair
// is not colliding, Overlap is 0 and Normal is the zero vector.
type ContactInfo struct {
	Colliding bool
	Overlap   float64
	Normal    vec.Vec2 // unit vector from a toward b
}

// Detect computes the contact state of bodies a and b. The pair collides
// when the center distance is within a.Radius+b.Radius plus a relative
// tolerance of contactTol.
func Detect(a, b *body.Body) ContactInfo {
	delta := b.Pos.Sub(a.Pos)
	dist := delta.Length()
	minDist := a.Radius + b.Radius

	if dist >= minDist+minDist*contactTol {
		return ContactInfo{}
	}

	normal := fallbackNormal
	if dist > minSeparation {
		normal = delta.Scale(1 / dist)
	}

	overlap := minDist - dist
	if overlap < 0 {
		overlap = 0
	}

	return ContactInfo{Colliding: true, Overlap: overlap, Normal: normal}
}
