// Package sim advances a collection of circular bodies through
// perfectly elastic collisions inside a rectangular boundary.
//
// The central type is [Simulation]:
//
//	s, err := sim.New(bodies, bounds)
//	result, err := s.Run(ctx, sim.DefaultConfig())
//
// One macroscopic [Simulation.Step] divides into [SubSteps] explicit
// position updates, each followed by wall reflection and
// [RelaxationPasses] sequential sweeps over all body pairs. The sweep
// order is load-bearing: it is what lets stacked multi-body contacts
// converge, so the kernel is strictly single-threaded. [Ensemble] runs
// whole simulations in parallel when replication across seeds is
// needed.
//
// # Determinism
//
// Given the same bodies, boundary and step size, a run reproduces
// bit-identical trajectories; the kernel contains no randomness and no
// time-dependent branching.
package sim
