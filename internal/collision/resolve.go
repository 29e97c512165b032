package collision

import "github.com/san-kum/colsim/internal/body"

// overcorrect inflates the positional split slightly to counter residual
// penetration accumulated across relaxation passes.
const overcorrect = 1.1

// Resolve de-penetrates a colliding pair and exchanges a perfectly
// elastic impulse along the contact normal. Calling it on a pair that is
// not colliding is a no-op, and a pair already separating receives only
// the positional correction — applying the impulse twice would inject
// energy.
//
// The velocity update conserves total momentum and kinetic energy
// exactly (up to rounding).
func Resolve(a, b *body.Body) {
	ResolveContact(a, b)
}

// ResolveContact is [Resolve] with a report: it returns true when an
// impulse was exchanged, false for misses, grazes, and pairs already
// separating. Integrators use the report to count collisions without
// re-detecting contacts.
func ResolveContact(a, b *body.Body) bool {
	c := Detect(a, b)
	if !c.Colliding {
		return false
	}

	total := a.Mass + b.Mass

	// Split the overlap inversely proportional to mass: the heavier
	// body moves less.
	shiftA := c.Overlap * overcorrect * (b.Mass / total)
	shiftB := c.Overlap * overcorrect * (a.Mass / total)
	a.Pos = a.Pos.Sub(c.Normal.Scale(shiftA))
	b.Pos = b.Pos.Add(c.Normal.Scale(shiftB))

	// Approach speed along the normal. Positive means a is closing on b;
	// zero or negative means grazing or separating, no impulse.
	vn := a.Vel.Sub(b.Vel).Dot(c.Normal)
	if vn <= 0 {
		return false
	}

	// Restitution 1: the relative normal speed reverses completely.
	j := 2 * vn
	a.Vel = a.Vel.Sub(c.Normal.Scale(j * b.Mass / total))
	b.Vel = b.Vel.Add(c.Normal.Scale(j * a.Mass / total))
	return true
}
