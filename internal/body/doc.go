// Package body defines the physical entities of the simulation.
//
//   - [Body]: circular rigid body with position, velocity, radius and
//     derived mass (π·r², unit-density disk)
//   - [Boundary]: immutable rectangular domain confining the bodies
//
// Bodies are created once at scenario setup and mutated in place by the
// collision and simulation packages; nothing in the core creates or
// destroys a body mid-run.
//
// # Caller contract
//
// Radius must be positive and the boundary must have positive area.
// Neither is validated here — degenerate values produce degenerate
// numerics, not errors.
package body
