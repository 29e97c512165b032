package metrics

import (
	"github.com/san-kum/colsim/internal/body"
	"github.com/san-kum/colsim/internal/collision"
)

// ImminentContacts averages, per observation, the number of pairs whose
// predicted contact time falls within a fixed horizon. It rides on the
// analytic predictor, so it reflects current velocities only — the
// stepping kernel is not involved.
type ImminentContacts struct {
	name    string
	horizon float64
	total   int
	samples int
}

func NewImminentContacts(horizon float64) *ImminentContacts {
	return &ImminentContacts{name: "imminent_contacts", horizon: horizon}
}

func (c *ImminentContacts) Name() string { return c.name }

func (c *ImminentContacts) Observe(bodies []*body.Body, t float64) {
	count := 0
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			if tc := collision.TimeToContact(bodies[i], bodies[j]); tc <= c.horizon {
				count++
			}
		}
	}
	c.total += count
	c.samples++
}

func (c *ImminentContacts) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return float64(c.total) / float64(c.samples)
}

func (c *ImminentContacts) Reset() {
	c.total = 0
	c.samples = 0
}
