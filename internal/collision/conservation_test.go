package collision_test

import (
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/colsim/internal/body"
	"github.com/san-kum/colsim/internal/collision"
	"github.com/san-kum/colsim/internal/vec"
)

// randomContact builds an overlapping pair with random radii, offset
// direction and velocities. Overlap is guaranteed; approach is not,
// which is fine — conservation must hold either way.
func randomContact(rng *rand.Rand) (*body.Body, *body.Body) {
	ra := 0.2 + 0.8*rng.Float64()
	rb := 0.2 + 0.8*rng.Float64()

	angle := 2 * math.Pi * rng.Float64()
	dist := (ra + rb) * (0.2 + 0.75*rng.Float64())
	offset := vec.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}.Scale(dist)

	randVel := func() vec.Vec2 {
		return vec.Vec2{X: 4*rng.Float64() - 2, Y: 4*rng.Float64() - 2}
	}

	a := body.New(vec.Vec2{}, randVel(), ra)
	b := body.New(offset, randVel(), rb)
	return a, b
}

var _ = Describe("Resolve", func() {
	It("conserves total momentum across random contacts", func() {
		rng := rand.New(rand.NewSource(7))
		for i := 0; i < 500; i++ {
			a, b := randomContact(rng)
			p0 := a.Momentum().Add(b.Momentum())

			collision.Resolve(a, b)

			p1 := a.Momentum().Add(b.Momentum())
			tol := 1e-10 * (1 + p0.Length())
			Expect(p1.X).To(BeNumerically("~", p0.X, tol))
			Expect(p1.Y).To(BeNumerically("~", p0.Y, tol))
		}
	})

	It("conserves total kinetic energy across random contacts", func() {
		rng := rand.New(rand.NewSource(11))
		for i := 0; i < 500; i++ {
			a, b := randomContact(rng)
			e0 := a.KineticEnergy() + b.KineticEnergy()

			collision.Resolve(a, b)

			e1 := a.KineticEnergy() + b.KineticEnergy()
			Expect(e1).To(BeNumerically("~", e0, 1e-10*(1+e0)))
		}
	})

	It("reduces penetration on every contact", func() {
		rng := rand.New(rand.NewSource(13))
		for i := 0; i < 200; i++ {
			a, b := randomContact(rng)
			before := collision.Detect(a, b).Overlap

			collision.Resolve(a, b)

			after := collision.Detect(a, b).Overlap
			Expect(after).To(BeNumerically("<", before))
		}
	})

	It("reverses the relative normal speed of an approaching pair", func() {
		a := body.New(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 2, Y: 0}, 0.5)
		b := body.New(vec.Vec2{X: 0.9, Y: 0}, vec.Vec2{X: -1, Y: 0}, 0.5)
		n := collision.Detect(a, b).Normal
		vnBefore := a.Vel.Sub(b.Vel).Dot(n)

		collision.Resolve(a, b)

		vnAfter := a.Vel.Sub(b.Vel).Dot(n)
		Expect(vnAfter).To(BeNumerically("~", -vnBefore, 1e-12))
	})
})
