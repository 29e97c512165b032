package stats

import (
	"math"

	"github.com/san-kum/colsim/internal/body"
	"github.com/san-kum/colsim/internal/vec"
)

// WallPressure estimates the pressure the bodies exert on the boundary
// by accumulating the impulse of wall reflections observed between
// steps. A reflection is detected when a velocity component changes
// sign while the body sits near the corresponding wall; each one
// transfers an impulse of 2m|v| along the wall normal.
//
// Pressure is accumulated impulse per unit time per unit of boundary
// length, the two-dimensional analogue of force per area. Reflections
// resolved and re-reversed entirely inside one step interval are
// invisible to the observer, so the estimate converges from below as
// dt shrinks.
type WallPressure struct {
	bounds  body.Boundary
	prev    []vec.Vec2
	prevT   float64
	started bool
	elapsed float64
	impulse float64
}

func NewWallPressure(bounds body.Boundary) *WallPressure {
	return &WallPressure{bounds: bounds}
}

// OnStep implements [sim.Observer].
func (w *WallPressure) OnStep(bodies []*body.Body, step int, t float64) {
	if !w.started {
		w.prev = make([]vec.Vec2, len(bodies))
		for i, b := range bodies {
			w.prev[i] = b.Vel
		}
		w.prevT = t
		w.started = true
		return
	}

	dt := t - w.prevT
	for i, b := range bodies {
		if i >= len(w.prev) {
			break
		}
		// A reflected body drifts away from the wall for up to a full
		// step before we see it, so the proximity margin scales with
		// distance traveled per step.
		margin := dt*b.Vel.Length() + 1e-9
		if signFlip(w.prev[i].X, b.Vel.X) && nearWallX(b, w.bounds, margin) {
			w.impulse += 2 * b.Mass * math.Abs(b.Vel.X)
		}
		if signFlip(w.prev[i].Y, b.Vel.Y) && nearWallY(b, w.bounds, margin) {
			w.impulse += 2 * b.Mass * math.Abs(b.Vel.Y)
		}
		w.prev[i] = b.Vel
	}
	w.prevT = t
	w.elapsed += dt
}

// Pressure returns the impulse accumulated so far divided by elapsed
// time and boundary perimeter. Zero until two observations arrive.
func (w *WallPressure) Pressure() float64 {
	perimeter := 2 * (w.bounds.Width + w.bounds.Height)
	if w.elapsed <= 0 || perimeter <= 0 {
		return 0
	}
	return w.impulse / (w.elapsed * perimeter)
}

// Reset discards accumulated state so the observer can watch a fresh run.
func (w *WallPressure) Reset() {
	w.prev = nil
	w.prevT = 0
	w.started = false
	w.elapsed = 0
	w.impulse = 0
}

// KineticPressure is the equilibrium estimate: total kinetic energy
// divided by boundary area. For a two-dimensional elastic gas the
// ideal-gas relation P*A = E makes this the expected wall pressure, so
// agreement with [WallPressure.Pressure] is a quick equilibration check.
func KineticPressure(bodies []*body.Body, bounds body.Boundary) float64 {
	area := bounds.Width * bounds.Height
	if area <= 0 {
		return 0
	}
	total := 0.0
	for _, b := range bodies {
		total += b.KineticEnergy()
	}
	return total / area
}

func signFlip(a, b float64) bool {
	return (a < 0 && b > 0) || (a > 0 && b < 0)
}

func nearWallX(b *body.Body, bounds body.Boundary, margin float64) bool {
	return b.Pos.X-b.Radius <= margin || b.Pos.X+b.Radius >= bounds.Width-margin
}

func nearWallY(b *body.Body, bounds body.Boundary, margin float64) bool {
	return b.Pos.Y-b.Radius <= margin || b.Pos.Y+b.Radius >= bounds.Height-margin
}
