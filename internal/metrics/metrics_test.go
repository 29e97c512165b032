package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/colsim/internal/body"
	"github.com/san-kum/colsim/internal/vec"
)

func pair() []*body.Body {
	return []*body.Body{
		body.New(vec.Vec2{X: 2, Y: 2}, vec.Vec2{X: 1, Y: 0}, 0.5),
		body.New(vec.Vec2{X: 6, Y: 2}, vec.Vec2{X: -1, Y: 0}, 0.5),
	}
}

func TestKineticEnergy(t *testing.T) {
	m := NewKineticEnergy()
	bodies := pair()

	m.Observe(bodies, 0)

	// Two r=0.5 disks at unit speed: 2 · ½ · (π/4) · 1.
	expected := math.Pi / 4
	if math.Abs(m.Value()-expected) > 1e-12 {
		t.Errorf("expected %f, got %f", expected, m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestEnergyDriftTracksMax(t *testing.T) {
	m := NewEnergyDrift()
	bodies := pair()

	m.Observe(bodies, 0)
	if m.Value() != 0 {
		t.Errorf("first observation should set baseline, got drift %f", m.Value())
	}

	// Double one body's speed: energy rises, drift follows.
	bodies[0].Vel = vec.Vec2{X: 2, Y: 0}
	m.Observe(bodies, 1)
	firstDrift := m.Value()
	if firstDrift <= 0 {
		t.Fatal("expected positive drift after energy change")
	}

	// Restore the original speed: max drift must not decrease.
	bodies[0].Vel = vec.Vec2{X: 1, Y: 0}
	m.Observe(bodies, 2)
	if m.Value() != firstDrift {
		t.Errorf("max drift regressed: %f -> %f", firstDrift, m.Value())
	}
}

func TestMomentum(t *testing.T) {
	m := NewMomentum()
	bodies := pair()

	// Equal and opposite momenta cancel.
	m.Observe(bodies, 0)
	if m.Value() > 1e-12 {
		t.Errorf("expected zero net momentum, got %f", m.Value())
	}

	bodies[1].Vel = vec.Vec2{}
	m.Observe(bodies, 1)
	expected := math.Pi / 4 // m·v = π·0.25 · 1
	if math.Abs(m.Value()-expected) > 1e-12 {
		t.Errorf("expected %f, got %f", expected, m.Value())
	}
}

func TestImminentContacts(t *testing.T) {
	m := NewImminentContacts(5.0)
	bodies := pair()

	// Gap 3, closing speed 2: contact predicted at t=1.5, inside the
	// horizon.
	m.Observe(bodies, 0)
	if m.Value() != 1 {
		t.Errorf("expected 1 imminent contact, got %f", m.Value())
	}

	// Receding pair predicts never.
	bodies[0].Vel = vec.Vec2{X: -1, Y: 0}
	bodies[1].Vel = vec.Vec2{X: 1, Y: 0}
	m.Reset()
	m.Observe(bodies, 0)
	if m.Value() != 0 {
		t.Errorf("expected 0 imminent contacts, got %f", m.Value())
	}
}

func TestContainment(t *testing.T) {
	bounds := body.Boundary{Width: 10, Height: 8}
	m := NewContainment(bounds)
	bodies := pair()

	m.Observe(bodies, 0)
	if m.Value() != 1 {
		t.Errorf("expected containment 1, got %f", m.Value())
	}

	bodies[0].Pos = vec.Vec2{X: -1, Y: 2}
	m.Observe(bodies, 1)
	if m.Value() != 0.5 {
		t.Errorf("expected containment 0.5, got %f", m.Value())
	}
}
