package metrics

import "github.com/san-kum/colsim/internal/body"

// Containment reports the fraction of observations in which every body
// sat fully inside the boundary. The wall clamp should hold this at 1.
type Containment struct {
	name       string
	bounds     body.Boundary
	violations int
	samples    int
}

func NewContainment(bounds body.Boundary) *Containment {
	return &Containment{name: "containment", bounds: bounds}
}

func (c *Containment) Name() string { return c.name }

func (c *Containment) Observe(bodies []*body.Body, t float64) {
	c.samples++
	for _, b := range bodies {
		if !c.bounds.Contains(b.Pos, b.Radius) {
			c.violations++
			break
		}
	}
}

func (c *Containment) Value() float64 {
	if c.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(c.violations)/float64(c.samples)
}

func (c *Containment) Reset() {
	c.violations = 0
	c.samples = 0
}
