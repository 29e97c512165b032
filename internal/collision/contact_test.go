package collision

import (
	"math"
	"testing"

	"github.com/san-kum/colsim/internal/body"
	"github.com/san-kum/colsim/internal/vec"
)

func TestDetectOverlapping(t *testing.T) {
	a := body.New(vec.Vec2{X: 0, Y: 0}, vec.Vec2{}, 0.5)
	b := body.New(vec.Vec2{X: 0.8, Y: 0}, vec.Vec2{}, 0.5)

	c := Detect(a, b)
	if !c.Colliding {
		t.Fatal("expected collision")
	}
	if math.Abs(c.Overlap-0.2) > 1e-9 {
		t.Errorf("expected overlap 0.2, got %f", c.Overlap)
	}
	if math.Abs(c.Normal.X-1) > 1e-9 || math.Abs(c.Normal.Y) > 1e-9 {
		t.Errorf("expected normal (1,0), got %v", c.Normal)
	}
}

func TestDetectSeparated(t *testing.T) {
	a := body.New(vec.Vec2{X: 0, Y: 0}, vec.Vec2{}, 0.5)
	b := body.New(vec.Vec2{X: 2, Y: 0}, vec.Vec2{}, 0.5)

	c := Detect(a, b)
	if c.Colliding {
		t.Fatal("expected no collision")
	}
	if c.Overlap != 0 {
		t.Errorf("expected overlap 0, got %f", c.Overlap)
	}
	if !c.Normal.IsZero() {
		t.Errorf("expected zero normal, got %v", c.Normal)
	}
}

func TestDetectExactTouch(t *testing.T) {
	// Distance exactly equals the radius sum. The relative tolerance
	// keeps this inside the colliding band, with overlap clamped to 0.
	a := body.New(vec.Vec2{X: 0, Y: 0}, vec.Vec2{}, 0.5)
	b := body.New(vec.Vec2{X: 1, Y: 0}, vec.Vec2{}, 0.5)

	c := Detect(a, b)
	if !c.Colliding {
		t.Fatal("touching pair should report colliding")
	}
	if c.Overlap != 0 {
		t.Errorf("expected clamped overlap 0, got %g", c.Overlap)
	}
}

func TestDetectCoincidentCenters(t *testing.T) {
	a := body.New(vec.Vec2{X: 1, Y: 1}, vec.Vec2{}, 0.5)
	b := body.New(vec.Vec2{X: 1, Y: 1}, vec.Vec2{}, 0.3)

	c := Detect(a, b)
	if !c.Colliding {
		t.Fatal("expected collision")
	}
	if c.Normal != fallbackNormal {
		t.Errorf("expected fallback normal, got %v", c.Normal)
	}
	if math.Abs(c.Overlap-0.8) > 1e-12 {
		t.Errorf("expected overlap 0.8, got %f", c.Overlap)
	}
}

func TestDetectNormalDirection(t *testing.T) {
	// Normal points from a toward b.
	a := body.New(vec.Vec2{X: 0, Y: 0}, vec.Vec2{}, 1)
	b := body.New(vec.Vec2{X: 0, Y: -1}, vec.Vec2{}, 1)

	c := Detect(a, b)
	if !c.Colliding {
		t.Fatal("expected collision")
	}
	if math.Abs(c.Normal.Y+1) > 1e-12 || math.Abs(c.Normal.X) > 1e-12 {
		t.Errorf("expected normal (0,-1), got %v", c.Normal)
	}
}
