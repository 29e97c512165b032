package sim

import (
	"context"
	"math"

	"github.com/san-kum/colsim/internal/body"
	"github.com/san-kum/colsim/internal/collision"
	"github.com/san-kum/colsim/internal/vec"
)

const (
	// SubSteps divides one macroscopic step. Small sub-steps keep the
	// position update stable and shrink the tunneling window for fast,
	// small bodies.
	SubSteps = 400

	// RelaxationPasses is the number of full pair sweeps per sub-step.
	// One pass does not converge when three or more bodies touch:
	// resolving one pair can re-open another that shares a body.
	RelaxationPasses = 20
)

// Simulation owns an ordered body collection confined to a rectangular
// boundary and advances it through perfectly elastic collisions. Bodies
// are mutated in place; the simulation never adds or removes one.
//
// A Simulation is not safe for concurrent use.
type Simulation struct {
	bodies     []*body.Body
	bounds     body.Boundary
	metrics    []Metric
	observers  []Observer
	time       float64
	steps      int
	collisions int
}

// New validates the setup and wraps it in a Simulation. The body slice
// is used directly, not copied: callers hand over ownership.
func New(bodies []*body.Body, bounds body.Boundary) (*Simulation, error) {
	if len(bodies) == 0 {
		return nil, ErrNoBodies
	}
	if bounds.Width <= 0 || bounds.Height <= 0 {
		return nil, ErrBadBoundary
	}
	return &Simulation{bodies: bodies, bounds: bounds}, nil
}

func (s *Simulation) Bodies() []*body.Body  { return s.bodies }
func (s *Simulation) Bounds() body.Boundary { return s.bounds }
func (s *Simulation) Time() float64         { return s.time }
func (s *Simulation) Steps() int            { return s.steps }

// Collisions returns the total number of impulses exchanged since
// construction. Resting contacts re-fire across sub-steps, so treat
// the count as activity, not distinct events.
func (s *Simulation) Collisions() int { return s.collisions }

func (s *Simulation) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulation) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Step advances the simulation by one macroscopic step of size dt.
//
// The step divides into SubSteps sub-steps. Each sub-step moves every
// body by velocity·dtSub, reflects it off the walls immediately, then
// runs RelaxationPasses upper-triangular sweeps over all pairs (i, j),
// i<j. The sweep is sequential Gauss-Seidel: later pairs in a pass see
// positions already corrected earlier in that same pass. That ordering
// is what makes stacked contacts converge — do not parallelize it.
func (s *Simulation) Step(dt float64) {
	dtSub := dt / SubSteps

	for k := 0; k < SubSteps; k++ {
		for _, b := range s.bodies {
			b.Pos = b.Pos.Add(b.Vel.Scale(dtSub))
			collision.CollideWall(b, s.bounds)
		}

		for p := 0; p < RelaxationPasses; p++ {
			for i := 0; i < len(s.bodies); i++ {
				for j := i + 1; j < len(s.bodies); j++ {
					if collision.ResolveContact(s.bodies[i], s.bodies[j]) {
						s.collisions++
					}
				}
			}
		}
	}

	s.time += dt
	s.steps++
}

// Energy returns the total kinetic energy of the collection.
func (s *Simulation) Energy() float64 {
	e := 0.0
	for _, b := range s.bodies {
		e += b.KineticEnergy()
	}
	return e
}

// Momentum returns the total linear momentum of the collection.
func (s *Simulation) Momentum() vec.Vec2 {
	var p vec.Vec2
	for _, b := range s.bodies {
		p = p.Add(b.Momentum())
	}
	return p
}

// Positions snapshots every body position in input order.
func (s *Simulation) Positions() []vec.Vec2 {
	ps := make([]vec.Vec2, len(s.bodies))
	for i, b := range s.bodies {
		ps[i] = b.Pos
	}
	return ps
}

func (s *Simulation) valid() bool {
	for _, b := range s.bodies {
		if !b.IsValid() {
			return false
		}
	}
	return true
}

// Run advances the simulation for cfg.Duration in macroscopic steps of
// cfg.Dt, collecting a frame after every step. The step count is
// ceil(duration/dt). Cancellation is checked between macroscopic steps
// only; the kernel itself never blocks.
func (s *Simulation) Run(ctx context.Context, cfg Config) (*Result, error) {
	if cfg.Dt <= 0 {
		return nil, ErrInvalidTimeStep
	}
	if cfg.Duration <= 0 {
		return nil, ErrInvalidDuration
	}

	steps := int(math.Ceil(cfg.Duration / cfg.Dt))
	result := &Result{
		Frames:  make([][]vec.Vec2, 0, steps+1),
		Times:   make([]float64, 0, steps+1),
		Metrics: make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	initialEnergy := s.Energy()
	startCollisions := s.collisions
	s.observe(result, 0)

	for i := 1; i <= steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		s.Step(cfg.Dt)
		result.StepsTaken++

		if cfg.ValidateState && !s.valid() {
			err := SimError{Step: i, Time: s.time, Err: ErrDiverged}
			result.Errors = append(result.Errors, err)
			break
		}

		s.observe(result, i)
	}

	if initialEnergy != 0 {
		result.EnergyDrift = math.Abs(s.Energy()-initialEnergy) / math.Abs(initialEnergy)
	}
	result.Collisions = s.collisions - startCollisions
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func (s *Simulation) observe(result *Result, step int) {
	for _, m := range s.metrics {
		m.Observe(s.bodies, s.time)
	}
	for _, o := range s.observers {
		o.OnStep(s.bodies, step, s.time)
	}
	result.Frames = append(result.Frames, s.Positions())
	result.Times = append(result.Times, s.time)
}

// RunWithCallback drives the simulation for interactive front ends:
// the callback sees the live body slice after every macroscopic step
// and returns false to stop the run early.
func (s *Simulation) RunWithCallback(ctx context.Context, cfg Config, callback func(step int, t float64) bool) error {
	if cfg.Dt <= 0 {
		return ErrInvalidTimeStep
	}

	steps := int(math.Ceil(cfg.Duration / cfg.Dt))
	for i := 1; i <= steps; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		s.Step(cfg.Dt)

		if cfg.ValidateState && !s.valid() {
			return SimError{Step: i, Time: s.time, Err: ErrDiverged}
		}
		if !callback(i, s.time) {
			return nil
		}
	}
	return nil
}
