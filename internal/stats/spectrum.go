package stats

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum computes the magnitude spectrum of a per-step scalar
// series, typically a body coordinate recorded over a run. The mean is
// removed and a Hann window applied before the transform, so bin 0
// carries no DC component and bin k corresponds to frequency k/(n*dt).
//
// For a body bouncing between walls the x trace is a triangle wave and
// the spectrum shows its round-trip frequency; total kinetic energy,
// being conserved, transforms to nothing.
func PowerSpectrum(series []float64) []float64 {
	n := len(series)
	if n < 2 {
		return nil
	}

	mean := 0.0
	for _, v := range series {
		mean += v
	}
	mean /= float64(n)

	windowed := make([]float64, n)
	for i, v := range series {
		w := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
		windowed[i] = (v - mean) * w
	}

	spectrum := fft.FFTReal(windowed)
	mags := make([]float64, n/2)
	for i := range mags {
		mags[i] = cmplx.Abs(spectrum[i])
	}
	return mags
}

// DominantPeriod returns the period in seconds of the strongest
// spectral component of a series sampled every dt, or 0 when the
// series is too short or flat to carry one.
func DominantPeriod(series []float64, dt float64) float64 {
	if dt <= 0 {
		return 0
	}
	mags := PowerSpectrum(series)
	if len(mags) < 2 {
		return 0
	}

	best, bestMag := 0, 0.0
	for k := 1; k < len(mags); k++ {
		if mags[k] > bestMag {
			best, bestMag = k, mags[k]
		}
	}
	if bestMag <= 1e-12 {
		return 0
	}

	freq := float64(best) / (float64(len(series)) * dt)
	return 1 / freq
}
