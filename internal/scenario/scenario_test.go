package scenario

import (
	"math"
	"math/rand"
	"testing"

	"github.com/san-kum/colsim/internal/body"
	"github.com/san-kum/colsim/internal/config"
)

func testParams() Params {
	return Params{
		Bounds:    body.Boundary{Width: 10, Height: 8},
		Count:     12,
		RadiusMin: 0.2,
		RadiusMax: 0.4,
		MaxSpeed:  2.0,
	}
}

func TestGetUnknown(t *testing.T) {
	if _, err := Get("warp"); err == nil {
		t.Error("expected error for unknown scenario")
	}
}

func TestListCoversRegistry(t *testing.T) {
	names := List()
	if len(names) != len(generators) {
		t.Fatalf("expected %d names, got %d", len(generators), len(names))
	}
	for _, name := range names {
		if _, err := Get(name); err != nil {
			t.Errorf("listed scenario %q not resolvable: %v", name, err)
		}
	}
}

func TestRandomDeterministicBySeed(t *testing.T) {
	p := testParams()
	a := Random(rand.New(rand.NewSource(9)), p)
	b := Random(rand.New(rand.NewSource(9)), p)

	if len(a) != len(b) {
		t.Fatalf("same seed produced %d and %d bodies", len(a), len(b))
	}
	for i := range a {
		if a[i].Pos != b[i].Pos || a[i].Vel != b[i].Vel || a[i].Radius != b[i].Radius {
			t.Fatalf("body %d differs between identically seeded runs", i)
		}
	}
}

func TestGeneratorsRespectParams(t *testing.T) {
	p := testParams()

	for _, name := range List() {
		t.Run(name, func(t *testing.T) {
			gen, err := Get(name)
			if err != nil {
				t.Fatalf("get failed: %v", err)
			}
			bodies := gen(rand.New(rand.NewSource(3)), p)
			if len(bodies) == 0 {
				t.Fatal("empty scene")
			}

			for i, b := range bodies {
				if !p.Bounds.Contains(b.Pos, b.Radius) {
					t.Errorf("body %d outside bounds: %v r=%f", i, b.Pos, b.Radius)
				}
				if b.Vel.Length() > p.MaxSpeed+1e-9 {
					t.Errorf("body %d too fast: %f", i, b.Vel.Length())
				}
				if b.Radius <= 0 {
					t.Errorf("body %d has non-positive radius", i)
				}
			}
		})
	}
}

func TestRandomAvoidsOverlap(t *testing.T) {
	p := testParams()
	bodies := Random(rand.New(rand.NewSource(5)), p)

	if len(bodies) != p.Count {
		t.Fatalf("expected %d bodies, got %d", p.Count, len(bodies))
	}
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			dist := bodies[i].Pos.Distance(bodies[j].Pos)
			if dist < bodies[i].Radius+bodies[j].Radius {
				t.Errorf("bodies %d and %d overlap at distance %f", i, j, dist)
			}
		}
	}
}

func TestHeadOnSymmetry(t *testing.T) {
	p := testParams()
	bodies := HeadOn(rand.New(rand.NewSource(1)), p)

	if len(bodies) != 2 {
		t.Fatalf("expected 2 bodies, got %d", len(bodies))
	}
	a, b := bodies[0], bodies[1]
	if a.Vel.X <= 0 || b.Vel.X >= 0 {
		t.Errorf("bodies not closing: %v, %v", a.Vel, b.Vel)
	}
	if math.Abs(a.Vel.X+b.Vel.X) > 1e-12 {
		t.Errorf("speeds not symmetric: %v, %v", a.Vel, b.Vel)
	}
	if a.Pos.Y != b.Pos.Y {
		t.Errorf("bodies not on the same line: %v, %v", a.Pos, b.Pos)
	}
}

func TestBilliardsRack(t *testing.T) {
	p := testParams()
	p.Count = 11
	bodies := Billiards(rand.New(rand.NewSource(1)), p)

	if len(bodies) != 11 {
		t.Fatalf("expected 11 bodies, got %d", len(bodies))
	}

	cue := bodies[0]
	if cue.Vel.X <= 0 {
		t.Errorf("cue must move toward the rack, got %v", cue.Vel)
	}
	for i, b := range bodies[1:] {
		if !b.Vel.IsZero() {
			t.Errorf("rack body %d should rest, got %v", i+1, b.Vel)
		}
	}
}

func TestShowerHeavyBase(t *testing.T) {
	p := testParams()
	bodies := Shower(rand.New(rand.NewSource(2)), p)

	base := bodies[0]
	for i, b := range bodies[1:] {
		if b.Mass >= base.Mass {
			t.Errorf("shower body %d at least as heavy as the base", i+1)
		}
		if b.Vel.Y >= 0 {
			t.Errorf("shower body %d not falling: %v", i+1, b.Vel)
		}
	}
}

func TestBuildSeededDeterministic(t *testing.T) {
	cfg := config.DefaultConfig()
	a, err := BuildSeeded(cfg, 7)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	b, err := BuildSeeded(cfg, 7)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	ba, bb := a.Bodies(), b.Bodies()
	if len(ba) != cfg.Bodies.Count {
		t.Fatalf("expected %d bodies, got %d", cfg.Bodies.Count, len(ba))
	}
	for i := range ba {
		if ba[i].Pos != bb[i].Pos || ba[i].Vel != bb[i].Vel {
			t.Fatalf("body %d differs between identically seeded builds", i)
		}
	}
}

func TestBuildUnknownScenario(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Scenario = "warp"
	if _, err := Build(cfg); err == nil {
		t.Error("expected error for unknown scenario")
	}
}
