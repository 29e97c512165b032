// Package vec provides the 2D vector type shared by the simulation core.
package vec

import "math"

// Vec2 is a plain 2D vector. Positions, velocities and contact normals
// are all Vec2 values; methods never mutate the receiver.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Dot(o Vec2) float64   { return v.X*o.X + v.Y*o.Y }

func (v Vec2) Length() float64        { return math.Sqrt(v.X*v.X + v.Y*v.Y) }
func (v Vec2) LengthSquared() float64 { return v.X*v.X + v.Y*v.Y }

func (v Vec2) Distance(o Vec2) float64        { return v.Sub(o).Length() }
func (v Vec2) DistanceSquared(o Vec2) float64 { return v.Sub(o).LengthSquared() }

// Normalize returns the unit vector pointing in v's direction.
// The zero vector normalizes to the zero vector.
func (v Vec2) Normalize() Vec2 {
	if l := v.Length(); l != 0 {
		return v.Scale(1 / l)
	}
	return Vec2{}
}

func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// IsValid reports whether both components are finite.
func (v Vec2) IsValid() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}
