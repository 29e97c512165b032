package sim

import (
	"errors"
	"fmt"
)

// Domain errors for simulation setup and stepping.
var (
	// ErrNoBodies indicates a simulation constructed without bodies.
	ErrNoBodies = errors.New("sim: no bodies supplied")

	// ErrBadBoundary indicates a boundary without positive area.
	ErrBadBoundary = errors.New("sim: boundary must have positive width and height")

	// ErrInvalidTimeStep indicates a non-positive macroscopic dt.
	ErrInvalidTimeStep = errors.New("sim: dt must be positive")

	// ErrInvalidDuration indicates a non-positive run duration.
	ErrInvalidDuration = errors.New("sim: duration must be positive")

	// ErrDiverged indicates a body reached a NaN or Inf state.
	ErrDiverged = errors.New("sim: body state diverged (NaN or Inf)")
)

// SimError records where in a run a failure surfaced. It wraps the
// underlying cause, so errors.Is matches sentinels like [ErrDiverged].
type SimError struct {
	Step int
	Time float64
	Err  error
}

func (e SimError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Err)
}

func (e SimError) Unwrap() error { return e.Err }
