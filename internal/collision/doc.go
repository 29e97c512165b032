// Package collision implements the contact kernel for circular rigid
// bodies: detection, elastic resolution, and wall reflection.
//
//   - [Detect]: pairwise contact test producing a [ContactInfo]
//   - [Resolve]: positional de-penetration plus elastic impulse exchange
//   - [ResolveContact]: the same, reporting whether an impulse fired
//   - [CollideWall]: mirror reflection off the rectangular boundary
//   - [TimeToContact]: analytic predictor for the earliest future contact
//
// All functions are pure computation over two bodies (or one body and
// the boundary); none allocates, blocks, or touches shared state beyond
// the bodies passed in. Failure is expressed through sentinel values,
// not errors: a non-colliding pair yields a zero [ContactInfo] and a
// pair that never meets yields [Never].
//
// # Conservation
//
// [Resolve] exchanges momentum so that total linear momentum and total
// kinetic energy are preserved exactly; the conservation suite in this
// package pins that property to 1e-10 relative tolerance.
package collision
