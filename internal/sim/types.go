package sim

import (
	"github.com/san-kum/colsim/internal/body"
	"github.com/san-kum/colsim/internal/vec"
)

// Metric accumulates a scalar over a run. Observe is called once for
// the initial state and once after every macroscopic step.
type Metric interface {
	Name() string
	Observe(bodies []*body.Body, t float64)
	Value() float64
	Reset()
}

// Observer receives per-step notifications; rendering front ends hang
// off this.
type Observer interface {
	OnStep(bodies []*body.Body, step int, t float64)
}

// Config controls a Run. Kernel constants (sub-step count, relaxation
// passes) are fixed properties of the integrator, not configuration.
type Config struct {
	Dt            float64
	Duration      float64
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		Dt:            0.02,
		Duration:      10.0,
		ValidateState: true,
	}
}

// Result collects a run's output. Frames holds every body's position
// after each macroscopic step (plus the initial state), in body input
// order.
type Result struct {
	Frames      [][]vec.Vec2
	Times       []float64
	Metrics     map[string]float64
	EnergyDrift float64
	StepsTaken  int
	Collisions  int
	Errors      []error
}
