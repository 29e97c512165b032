package body

import (
	"math"

	"github.com/san-kum/colsim/internal/vec"
)

// Body is a circular rigid body. Pos and Vel mutate every sub-step;
// Radius and Mass are fixed after construction. Bodies carry no identity
// of their own — a simulation addresses them by index in its slice.
type Body struct {
	Pos    vec.Vec2
	Vel    vec.Vec2
	Radius float64
	Mass   float64
}

// New constructs a body of the given radius at pos moving with vel.
// Mass is derived as π·r² (unit-density disk) and is never set
// independently. radius must be positive; New does not validate it.
func New(pos, vel vec.Vec2, radius float64) *Body {
	return &Body{
		Pos:    pos,
		Vel:    vel,
		Radius: radius,
		Mass:   math.Pi * radius * radius,
	}
}

func (b *Body) Clone() *Body {
	c := *b
	return &c
}

// KineticEnergy returns ½·m·|v|².
func (b *Body) KineticEnergy() float64 {
	return 0.5 * b.Mass * b.Vel.LengthSquared()
}

// Momentum returns m·v.
func (b *Body) Momentum() vec.Vec2 {
	return b.Vel.Scale(b.Mass)
}

// IsValid reports whether position and velocity are finite.
func (b *Body) IsValid() bool {
	return b.Pos.IsValid() && b.Vel.IsValid()
}
