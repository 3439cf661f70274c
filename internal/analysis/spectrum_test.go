package analysis

import (
	"math"
	"testing"
)

func TestPowerSpectrumLength(t *testing.T) {
	tests := []struct {
		name    string
		samples int
		want    int
	}{
		{"power of two", 256, 128},
		{"truncates down", 300, 128},
		{"tiny", 1, 0},
		{"empty", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series := make([]float64, tt.samples)
			if got := len(PowerSpectrum(series)); got != tt.want {
				t.Errorf("expected %d bins, got %d", tt.want, got)
			}
		})
	}
}

func TestDominantPeriodOfSine(t *testing.T) {
	const tickRate = 60
	series := make([]float64, 2500) // window truncates to 2048, 8 whole cycles
	for i := range series {
		series[i] = 3000 + 500*math.Sin(2*math.Pi*float64(i)/256)
	}

	got := DominantPeriod(series, tickRate)
	want := 256.0 / tickRate
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("expected period %v, got %v", want, got)
	}
}

func TestDominantPeriodOfFlatSeries(t *testing.T) {
	series := make([]float64, 1024)
	for i := range series {
		series[i] = 5000
	}
	if got := DominantPeriod(series, 60); got != 0 {
		t.Errorf("expected 0 for a flat series, got %v", got)
	}
}

func TestDominantPeriodShortSeries(t *testing.T) {
	if got := DominantPeriod([]float64{1, 2}, 60); got != 0 {
		t.Errorf("expected 0 for a two-sample series, got %v", got)
	}
	if got := DominantPeriod(nil, 60); got != 0 {
		t.Errorf("expected 0 for nil, got %v", got)
	}
}
