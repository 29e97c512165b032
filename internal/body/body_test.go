package body

import (
	"math"
	"testing"

	"github.com/san-kum/colsim/internal/vec"
)

func TestMassFromRadius(t *testing.T) {
	tests := []struct {
		radius float64
		mass   float64
	}{
		{1.0, math.Pi},
		{0.5, math.Pi * 0.25},
		{2.0, math.Pi * 4},
	}

	for _, tt := range tests {
		b := New(vec.Vec2{}, vec.Vec2{}, tt.radius)
		if math.Abs(b.Mass-tt.mass) > 1e-12 {
			t.Errorf("radius %f: expected mass %f, got %f", tt.radius, tt.mass, b.Mass)
		}
	}
}

func TestKineticEnergy(t *testing.T) {
	b := New(vec.Vec2{}, vec.Vec2{X: 3, Y: 4}, 1.0)
	expected := 0.5 * math.Pi * 25
	if math.Abs(b.KineticEnergy()-expected) > 1e-12 {
		t.Errorf("expected %f, got %f", expected, b.KineticEnergy())
	}
}

func TestMomentum(t *testing.T) {
	b := New(vec.Vec2{}, vec.Vec2{X: 2, Y: -1}, 1.0)
	p := b.Momentum()
	if math.Abs(p.X-2*math.Pi) > 1e-12 || math.Abs(p.Y+math.Pi) > 1e-12 {
		t.Errorf("expected (%f, %f), got %v", 2*math.Pi, -math.Pi, p)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := New(vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 1, Y: 0}, 0.5)
	c := b.Clone()
	c.Pos.X = 99

	if b.Pos.X != 1 {
		t.Errorf("clone mutation leaked into original: %v", b.Pos)
	}
}

func TestIsValid(t *testing.T) {
	b := New(vec.Vec2{}, vec.Vec2{}, 1.0)
	if !b.IsValid() {
		t.Error("finite body reported invalid")
	}
	b.Vel.X = math.NaN()
	if b.IsValid() {
		t.Error("NaN velocity reported valid")
	}
}

func TestBoundaryContains(t *testing.T) {
	bd := Boundary{Width: 10, Height: 8}

	if !bd.Contains(vec.Vec2{X: 5, Y: 4}, 1) {
		t.Error("center disk should be contained")
	}
	if bd.Contains(vec.Vec2{X: 0.4, Y: 4}, 0.5) {
		t.Error("disk past left wall should not be contained")
	}
	if bd.Contains(vec.Vec2{X: 5, Y: 7.8}, 0.5) {
		t.Error("disk past top wall should not be contained")
	}
}
