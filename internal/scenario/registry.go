// Package scenario builds initial body collections for the simulator.
//
// Every generator draws exclusively from the *rand.Rand it is handed —
// never the global source — so a seed fully determines a scene. The
// driver owns seeding:
//
//	rng := rand.New(rand.NewSource(seed))
//	gen, err := scenario.Get("random")
//	bodies := gen(rng, params)
package scenario

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/san-kum/colsim/internal/body"
)

// Params bounds a generated scene. Generators keep every body inside
// Bounds and every speed at or below MaxSpeed.
type Params struct {
	Bounds    body.Boundary
	Count     int
	RadiusMin float64
	RadiusMax float64
	MaxSpeed  float64
}

// Generator produces an ordered body collection from explicit
// randomness.
type Generator func(rng *rand.Rand, p Params) []*body.Body

var generators = map[string]Generator{
	"random":    Random,
	"lattice":   Lattice,
	"billiards": Billiards,
	"headon":    HeadOn,
	"shower":    Shower,
}

// Get resolves a scenario by name.
func Get(name string) (Generator, error) {
	g, ok := generators[name]
	if !ok {
		return nil, fmt.Errorf("scenario: unknown scenario %q", name)
	}
	return g, nil
}

// List returns the registered scenario names, sorted.
func List() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
