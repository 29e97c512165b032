package collision

import (
	"math"

	"github.com/san-kum/colsim/internal/body"
)

// Never is the contact time reported for pairs that will not touch.
var Never = math.Inf(1)

// parallelEps bounds |Δv|² below which relative motion is treated as
// zero and no contact can occur.
const parallelEps = 1e-12

// TimeToContact solves |Δr + t·Δv|² = (ra+rb)² for the earliest future
// instant the two disks touch, assuming both keep their current
// velocities. It returns the smallest positive root, or Never when the
// trajectories miss, run parallel, or are already receding.
//
// This is an analytic continuous-time predictor. The stepping loop in
// the sim package does not use it; it exists as a standalone utility for
// analysis and scheduling experiments.
func TimeToContact(a, b *body.Body) float64 {
	dr := a.Pos.Sub(b.Pos)
	dv := a.Vel.Sub(b.Vel)
	sum := a.Radius + b.Radius

	qa := dv.Dot(dv)
	if qa < parallelEps {
		return Never
	}
	qb := 2 * dr.Dot(dv)
	qc := dr.Dot(dr) - sum*sum

	disc := qb*qb - 4*qa*qc
	if disc < 0 {
		return Never
	}

	sq := math.Sqrt(disc)
	// qa > 0, so t1 <= t2.
	t1 := (-qb - sq) / (2 * qa)
	t2 := (-qb + sq) / (2 * qa)

	if t1 > 0 {
		return t1
	}
	if t2 > 0 {
		return t2
	}
	return Never
}
