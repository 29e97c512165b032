package stats

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/colsim/internal/body"
	"github.com/san-kum/colsim/internal/sim"
	"github.com/san-kum/colsim/internal/vec"
)

func TestSummarize(t *testing.T) {
	bodies := []*body.Body{
		body.New(vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 3, Y: 4}, 0.5),
		body.New(vec.Vec2{X: 3, Y: 3}, vec.Vec2{}, 0.5),
	}

	s := Summarize(bodies)

	if s.Bodies != 2 {
		t.Errorf("expected 2 bodies, got %d", s.Bodies)
	}
	if math.Abs(s.MeanSpeed-2.5) > 1e-12 {
		t.Errorf("expected mean speed 2.5, got %v", s.MeanSpeed)
	}
	if math.Abs(s.RMSSpeed-math.Sqrt(12.5)) > 1e-12 {
		t.Errorf("expected rms speed %v, got %v", math.Sqrt(12.5), s.RMSSpeed)
	}
	if math.Abs(s.MaxSpeed-5) > 1e-12 {
		t.Errorf("expected max speed 5, got %v", s.MaxSpeed)
	}

	mass := math.Pi * 0.25
	if math.Abs(s.TotalMass-2*mass) > 1e-12 {
		t.Errorf("expected total mass %v, got %v", 2*mass, s.TotalMass)
	}
	wantKE := 0.5 * mass * 25
	if math.Abs(s.KineticEnergy-wantKE) > 1e-12 {
		t.Errorf("expected kinetic energy %v, got %v", wantKE, s.KineticEnergy)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.Bodies != 0 || s.MeanSpeed != 0 || s.KineticEnergy != 0 {
		t.Errorf("expected zero summary, got %+v", s)
	}
}

func TestSpeedHistogram(t *testing.T) {
	bodies := []*body.Body{
		body.New(vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 1}, 0.3),
		body.New(vec.Vec2{X: 2, Y: 1}, vec.Vec2{X: 2}, 0.3),
		body.New(vec.Vec2{X: 3, Y: 1}, vec.Vec2{Y: 3}, 0.3),
		body.New(vec.Vec2{X: 4, Y: 1}, vec.Vec2{X: 4}, 0.3),
	}

	h := SpeedHistogram(bodies, 2)

	if h.Max != 4 {
		t.Errorf("expected max 4, got %v", h.Max)
	}
	if len(h.Counts) != 2 {
		t.Fatalf("expected 2 bins, got %d", len(h.Counts))
	}
	// Bins span [0,2) and [2,4]; the edge sample 4 lands in the last.
	if h.Counts[0] != 1 || h.Counts[1] != 3 {
		t.Errorf("expected counts [1 3], got %v", h.Counts)
	}
}

func TestSpeedHistogramAllAtRest(t *testing.T) {
	bodies := []*body.Body{
		body.New(vec.Vec2{X: 1, Y: 1}, vec.Vec2{}, 0.3),
		body.New(vec.Vec2{X: 2, Y: 1}, vec.Vec2{}, 0.3),
	}

	h := SpeedHistogram(bodies, 4)
	if h.Counts[0] != 2 {
		t.Errorf("expected all bodies in first bin, got %v", h.Counts)
	}
	for i := 1; i < len(h.Counts); i++ {
		if h.Counts[i] != 0 {
			t.Errorf("expected empty bin %d, got %d", i, h.Counts[i])
		}
	}
}

func TestHistogramRender(t *testing.T) {
	h := Histogram{Min: 0, Max: 2, Counts: []int{1, 3}}
	out := h.Render(12)

	if lines := strings.Count(out, "\n"); lines != 2 {
		t.Errorf("expected 2 lines, got %d:\n%s", lines, out)
	}
	if !strings.Contains(out, "█") {
		t.Errorf("expected bars in output:\n%s", out)
	}
}

func TestWallPressureCountsReflection(t *testing.T) {
	bounds := body.Boundary{Width: 10, Height: 8}
	wp := NewWallPressure(bounds)

	b := body.New(vec.Vec2{X: 9.5, Y: 4}, vec.Vec2{X: 2}, 0.5)
	wp.OnStep([]*body.Body{b}, 0, 0)

	b.Vel = vec.Vec2{X: -2}
	wp.OnStep([]*body.Body{b}, 1, 0.1)

	// One reflection: impulse 2m|v| over 0.1s and perimeter 36.
	want := 2 * b.Mass * 2 / (0.1 * 36)
	if math.Abs(wp.Pressure()-want) > 1e-12 {
		t.Errorf("expected pressure %v, got %v", want, wp.Pressure())
	}
}

func TestWallPressureIgnoresInteriorFlip(t *testing.T) {
	bounds := body.Boundary{Width: 10, Height: 8}
	wp := NewWallPressure(bounds)

	// A sign flip far from every wall is a body-body collision, not a
	// wall reflection.
	b := body.New(vec.Vec2{X: 5, Y: 4}, vec.Vec2{X: 2}, 0.5)
	wp.OnStep([]*body.Body{b}, 0, 0)

	b.Vel = vec.Vec2{X: -2}
	wp.OnStep([]*body.Body{b}, 1, 0.1)

	if wp.Pressure() != 0 {
		t.Errorf("expected zero pressure, got %v", wp.Pressure())
	}
}

func TestWallPressureReset(t *testing.T) {
	bounds := body.Boundary{Width: 10, Height: 8}
	wp := NewWallPressure(bounds)

	b := body.New(vec.Vec2{X: 9.5, Y: 4}, vec.Vec2{X: 2}, 0.5)
	wp.OnStep([]*body.Body{b}, 0, 0)
	b.Vel = vec.Vec2{X: -2}
	wp.OnStep([]*body.Body{b}, 1, 0.1)

	wp.Reset()
	if wp.Pressure() != 0 {
		t.Errorf("expected zero pressure after reset, got %v", wp.Pressure())
	}
}

func TestWallPressureObservesRun(t *testing.T) {
	bounds := body.Boundary{Width: 10, Height: 8}
	b := body.New(vec.Vec2{X: 1, Y: 4}, vec.Vec2{X: -2}, 0.5)

	s, err := sim.New([]*body.Body{b}, bounds)
	if err != nil {
		t.Fatal(err)
	}
	wp := NewWallPressure(bounds)
	s.AddObserver(wp)

	_, err = s.Run(context.Background(), sim.Config{Dt: 0.05, Duration: 1, ValidateState: true})
	if err != nil {
		t.Fatal(err)
	}

	// The body reaches the left wall at t=0.25 and reflects once.
	want := 2 * b.Mass * 2 / (1.0 * 36)
	if math.Abs(wp.Pressure()-want) > 1e-9 {
		t.Errorf("expected pressure %v, got %v", want, wp.Pressure())
	}
}

func TestKineticPressure(t *testing.T) {
	bounds := body.Boundary{Width: 10, Height: 8}
	b := body.New(vec.Vec2{X: 5, Y: 4}, vec.Vec2{X: 2}, 0.5)

	// P = E / A with E = (1/2) m v^2.
	want := 0.5 * b.Mass * 4 / 80
	got := KineticPressure([]*body.Body{b}, bounds)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestPowerSpectrumFindsOscillation(t *testing.T) {
	// 64 samples of a pure 4-cycle cosine on top of a constant offset.
	n := 64
	series := make([]float64, n)
	for i := range series {
		series[i] = 10 + math.Cos(2*math.Pi*4*float64(i)/float64(n))
	}

	mags := PowerSpectrum(series)
	if len(mags) != n/2 {
		t.Fatalf("expected %d bins, got %d", n/2, len(mags))
	}

	best := 0
	for k, m := range mags {
		if m > mags[best] {
			best = k
		}
	}
	if best != 4 {
		t.Errorf("expected peak at bin 4, got %d", best)
	}
}

func TestPowerSpectrumShortSeries(t *testing.T) {
	if got := PowerSpectrum([]float64{1}); got != nil {
		t.Errorf("expected nil for short series, got %v", got)
	}
}

func TestDominantPeriod(t *testing.T) {
	// 2 Hz oscillation sampled at 100 Hz for 2 seconds.
	dt := 0.01
	n := 200
	series := make([]float64, n)
	for i := range series {
		series[i] = math.Sin(2 * math.Pi * 2 * float64(i) * dt)
	}

	period := DominantPeriod(series, dt)
	if math.Abs(period-0.5) > 0.05 {
		t.Errorf("expected period near 0.5, got %v", period)
	}
}

func TestDominantPeriodFlat(t *testing.T) {
	series := []float64{3, 3, 3, 3, 3, 3, 3, 3}
	if got := DominantPeriod(series, 0.1); got != 0 {
		t.Errorf("expected 0 for flat series, got %v", got)
	}
}
