package scenario

import (
	"math"
	"math/rand"

	"github.com/san-kum/colsim/internal/body"
	"github.com/san-kum/colsim/internal/vec"
)

// Random scatters non-overlapping bodies by rejection sampling, each
// with a uniform radius and a uniformly directed velocity. When the box
// cannot fit the requested count, it returns the bodies that did fit.
func Random(rng *rand.Rand, p Params) []*body.Body {
	bodies := make([]*body.Body, 0, p.Count)
	maxAttempts := 200 * p.Count

	for attempts := 0; len(bodies) < p.Count && attempts < maxAttempts; attempts++ {
		r := radiusIn(rng, p)
		pos := vec.Vec2{
			X: r + (p.Bounds.Width-2*r)*rng.Float64(),
			Y: r + (p.Bounds.Height-2*r)*rng.Float64(),
		}
		if overlapsAny(bodies, pos, r) {
			continue
		}
		bodies = append(bodies, body.New(pos, randomVel(rng, p.MaxSpeed), r))
	}
	return bodies
}

// Lattice arranges the bodies on a centered grid with radii capped by
// the cell pitch, then stirs them with small random velocities.
func Lattice(rng *rand.Rand, p Params) []*body.Body {
	cols := int(math.Ceil(math.Sqrt(float64(p.Count))))
	if cols == 0 {
		return nil
	}
	rows := (p.Count + cols - 1) / cols

	dx := p.Bounds.Width / float64(cols+1)
	dy := p.Bounds.Height / float64(rows+1)

	rMax := math.Min(p.RadiusMax, 0.4*math.Min(dx, dy))
	rMin := math.Min(p.RadiusMin, rMax)

	bodies := make([]*body.Body, 0, p.Count)
	for i := 0; i < p.Count; i++ {
		pos := vec.Vec2{
			X: float64(i%cols+1) * dx,
			Y: float64(i/cols+1) * dy,
		}
		r := rMin + (rMax-rMin)*rng.Float64()
		bodies = append(bodies, body.New(pos, randomVel(rng, 0.3*p.MaxSpeed), r))
	}
	return bodies
}

// Billiards fires a cue body at a triangular rack of resting bodies.
// All bodies share RadiusMax; the rack apex sits at 60% of the width.
func Billiards(rng *rand.Rand, p Params) []*body.Body {
	r := p.RadiusMax
	pitch := 2.1 * r

	bodies := []*body.Body{
		body.New(
			vec.Vec2{X: 0.2 * p.Bounds.Width, Y: p.Bounds.Height / 2},
			vec.Vec2{X: p.MaxSpeed, Y: 0},
			r,
		),
	}

	apex := vec.Vec2{X: 0.6 * p.Bounds.Width, Y: p.Bounds.Height / 2}
	for row := 0; len(bodies) < p.Count && row < 32; row++ {
		for k := 0; k <= row && len(bodies) < p.Count; k++ {
			pos := vec.Vec2{
				X: apex.X + float64(row)*pitch*0.866,
				Y: apex.Y + (float64(k)-float64(row)/2)*pitch,
			}
			if !p.Bounds.Contains(pos, r) {
				continue
			}
			bodies = append(bodies, body.New(pos, vec.Vec2{}, r))
		}
	}
	return bodies
}

// HeadOn is the symmetric two-body closing pair. It ignores Count.
func HeadOn(rng *rand.Rand, p Params) []*body.Body {
	r := p.RadiusMax
	y := p.Bounds.Height / 2
	speed := p.MaxSpeed / 2

	return []*body.Body{
		body.New(vec.Vec2{X: 0.25 * p.Bounds.Width, Y: y}, vec.Vec2{X: speed}, r),
		body.New(vec.Vec2{X: 0.75 * p.Bounds.Width, Y: y}, vec.Vec2{X: -speed}, r),
	}
}

// Shower drops a stream of small fast bodies onto one heavy resting
// body at the floor.
func Shower(rng *rand.Rand, p Params) []*body.Body {
	big := math.Min(3*p.RadiusMax, p.Bounds.Height/4)
	bodies := []*body.Body{
		body.New(vec.Vec2{X: p.Bounds.Width / 2, Y: big}, vec.Vec2{}, big),
	}

	maxAttempts := 200 * p.Count
	for attempts := 0; len(bodies) < p.Count && attempts < maxAttempts; attempts++ {
		r := radiusIn(rng, p)
		band := 0.4*p.Bounds.Height - r
		if band <= 0 {
			break
		}
		pos := vec.Vec2{
			X: r + (p.Bounds.Width-2*r)*rng.Float64(),
			Y: 0.6*p.Bounds.Height + band*rng.Float64(),
		}
		if overlapsAny(bodies, pos, r) {
			continue
		}
		vel := vec.Vec2{
			X: 0.3 * p.MaxSpeed * (rng.Float64() - 0.5),
			Y: -p.MaxSpeed * (0.5 + 0.45*rng.Float64()),
		}
		bodies = append(bodies, body.New(pos, vel, r))
	}
	return bodies
}

func radiusIn(rng *rand.Rand, p Params) float64 {
	return p.RadiusMin + (p.RadiusMax-p.RadiusMin)*rng.Float64()
}

func randomVel(rng *rand.Rand, maxSpeed float64) vec.Vec2 {
	angle := 2 * math.Pi * rng.Float64()
	speed := maxSpeed * rng.Float64()
	return vec.Vec2{X: speed * math.Cos(angle), Y: speed * math.Sin(angle)}
}

func overlapsAny(bodies []*body.Body, pos vec.Vec2, r float64) bool {
	for _, b := range bodies {
		if pos.Distance(b.Pos) < r+b.Radius {
			return true
		}
	}
	return false
}
