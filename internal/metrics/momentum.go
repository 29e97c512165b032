package metrics

import (
	"github.com/san-kum/colsim/internal/body"
	"github.com/san-kum/colsim/internal/vec"
)

// Momentum reports |Σ m·v| at the most recent observation. Wall
// reflections exchange momentum with the boundary, so this is a gas
// diagnostic rather than a conserved quantity.
type Momentum struct {
	name    string
	current float64
}

func NewMomentum() *Momentum {
	return &Momentum{name: "momentum"}
}

func (m *Momentum) Name() string { return m.name }

func (m *Momentum) Observe(bodies []*body.Body, t float64) {
	var p vec.Vec2
	for _, b := range bodies {
		p = p.Add(b.Momentum())
	}
	m.current = p.Length()
}

func (m *Momentum) Value() float64 { return m.current }

func (m *Momentum) Reset() { m.current = 0 }
