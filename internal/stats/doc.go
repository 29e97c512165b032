// Package stats provides post-run statistical analysis of simulations.
//
// The package includes tools for characterizing an ensemble of bodies:
//
//   - [Summarize]: aggregate speed and energy statistics for a snapshot
//   - [SpeedHistogram]: binned distribution of body speeds
//   - [WallPressure]: boundary pressure accumulated from observed reflections
//   - [KineticPressure]: equilibrium pressure from the ideal-gas relation
//   - [PowerSpectrum]: magnitude spectrum of a per-step scalar series
//
// # Pressure
//
// The two pressure estimators answer the same question two ways.
// [WallPressure] watches a running simulation and counts actual wall
// impulses; [KineticPressure] applies P*A = E to a single snapshot.
// Agreement between them indicates the ensemble has equilibrated:
//
//	wp := stats.NewWallPressure(s.Bounds())
//	s.AddObserver(wp)
//	s.Run(ctx, cfg)
//	fmt.Println(wp.Pressure(), stats.KineticPressure(s.Bodies(), s.Bounds()))
package stats
