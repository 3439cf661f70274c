// Package analysis extracts summary numbers from recorded series.
package analysis

import (
	"math"
	"math/cmplx"
)

// fft is a recursive radix-2 transform; len(x) must be a power of two.
func fft(x []complex128) []complex128 {
	n := len(x)
	if n <= 1 {
		return x
	}

	even := make([]complex128, n/2)
	odd := make([]complex128, n/2)
	for i := 0; i < n/2; i++ {
		even[i] = x[2*i]
		odd[i] = x[2*i+1]
	}

	fe := fft(even)
	fo := fft(odd)

	out := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		w := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n)))
		out[k] = fe[k] + w*fo[k]
		out[k+n/2] = fe[k] - w*fo[k]
	}
	return out
}

func pow2Floor(n int) int {
	if n < 1 {
		return 0
	}
	p := 1
	for p*2 <= n {
		p *= 2
	}
	return p
}

// PowerSpectrum returns the magnitude of each frequency bin up to the
// Nyquist limit. The series is mean-removed and truncated to the largest
// power-of-two length first; nil when fewer than two samples remain.
func PowerSpectrum(series []float64) []float64 {
	n := pow2Floor(len(series))
	if n < 2 {
		return nil
	}

	mean := 0.0
	for _, v := range series[:n] {
		mean += v
	}
	mean /= float64(n)

	x := make([]complex128, n)
	for i, v := range series[:n] {
		x[i] = complex(v-mean, 0)
	}

	bins := fft(x)
	ps := make([]float64, n/2)
	for i := range ps {
		ps[i] = cmplx.Abs(bins[i])
	}
	return ps
}

// DominantPeriod returns the strongest oscillation period in seconds, 0
// when the series is too short or carries no oscillating component. Under
// a thermostat strategy the temperature limit-cycles around the setpoint,
// and this is that cycle's length.
func DominantPeriod(series []float64, tickRate int) float64 {
	if tickRate <= 0 {
		return 0
	}
	ps := PowerSpectrum(series)
	if len(ps) < 2 {
		return 0
	}

	peak := 1
	for k := 2; k < len(ps); k++ {
		if ps[k] > ps[peak] {
			peak = k
		}
	}
	if ps[peak] == 0 {
		return 0
	}

	// bin k holds k cycles across the truncated window
	n := pow2Floor(len(series))
	return float64(n) / (float64(peak) * float64(tickRate))
}
