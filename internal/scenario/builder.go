package scenario

import (
	"math/rand"
	"time"

	"github.com/san-kum/colsim/internal/body"
	"github.com/san-kum/colsim/internal/config"
	"github.com/san-kum/colsim/internal/sim"
)

// Build assembles a simulation from a config: resolve the scenario,
// seed a generator, and hand the bodies to the kernel. A zero seed is
// replaced with the wall clock so repeated unseeded runs differ.
func Build(cfg *config.Config) (*sim.Simulation, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return BuildSeeded(cfg, seed)
}

// BuildSeeded is Build with the seed pinned, ignoring cfg.Seed. Batch
// drivers use it to fan one job out across consecutive seeds.
func BuildSeeded(cfg *config.Config, seed int64) (*sim.Simulation, error) {
	gen, err := Get(cfg.Scenario)
	if err != nil {
		return nil, err
	}
	bounds := body.Boundary{Width: cfg.World.Width, Height: cfg.World.Height}
	rng := rand.New(rand.NewSource(seed))
	bodies := gen(rng, Params{
		Bounds:    bounds,
		Count:     cfg.Bodies.Count,
		RadiusMin: cfg.Bodies.RadiusMin,
		RadiusMax: cfg.Bodies.RadiusMax,
		MaxSpeed:  cfg.Bodies.MaxSpeed,
	})
	return sim.New(bodies, bounds)
}
