package metrics

import (
	"testing"

	"github.com/pkarell/fissim/internal/reactor"
)

func TestSeriesHelpers(t *testing.T) {
	tests := []struct {
		name string
		s    Series
		max  float64
		min  float64
		last float64
	}{
		{"empty", Series{}, 0, 0, 0},
		{"single", Series{7}, 7, 7, 7},
		{"mixed", Series{3, -2, 9, 4}, 9, -2, 4},
		{"all negative", Series{-5, -1, -9}, -1, -9, -9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.Max(); got != tt.max {
				t.Errorf("max: expected %v, got %v", tt.max, got)
			}
			if got := tt.s.Min(); got != tt.min {
				t.Errorf("min: expected %v, got %v", tt.min, got)
			}
			if got := tt.s.Last(); got != tt.last {
				t.Errorf("last: expected %v, got %v", tt.last, got)
			}
		})
	}
}

func TestRecorderAppendsOneSamplePerTick(t *testing.T) {
	rec := NewRecorder(8)
	var in reactor.Input
	in.SetTurbineRate(40)

	out := reactor.Output{Temperature: 1234, FuelPotential: 160, FissionRate: 12, TurbineRate: 34, Power: 1360}
	for i := 0; i < 5; i++ {
		rec.Update(out, &in)
	}

	if rec.Ticks() != 5 {
		t.Fatalf("expected 5 ticks, got %d", rec.Ticks())
	}
	for name, s := range map[string]Series{
		"temperature":     rec.Temperature,
		"fission":         rec.Fission,
		"fission target":  rec.FissionTarget,
		"fission optimal": rec.FissionOptimal,
		"turbine":         rec.Turbine,
		"turbine target":  rec.TurbineTarget,
		"load":            rec.Load,
		"power":           rec.Power,
	} {
		if len(s) != 5 {
			t.Errorf("%s: expected 5 samples, got %d", name, len(s))
		}
	}
}

func TestRecorderOptimalFissionFormula(t *testing.T) {
	rec := NewRecorder(1)
	var in reactor.Input
	in.SetTurbineRate(40)

	rec.Update(reactor.Output{FuelPotential: 160}, &in)

	// 40 * 75 / 160
	if got := rec.FissionOptimal.Last(); got != 18.75 {
		t.Errorf("expected 18.75, got %v", got)
	}
}

func TestRecorderNeverWritesInput(t *testing.T) {
	rec := NewRecorder(1)
	var in reactor.Input
	in.SetFissionRate(61)
	in.SetTurbineRate(62)
	in.SetLoad(63)

	rec.Update(reactor.Output{FuelPotential: 160}, &in)

	if in.FissionRate() != 61 || in.TurbineRate() != 62 || in.Load() != 63 {
		t.Errorf("expected input untouched, got %v %v %v", in.FissionRate(), in.TurbineRate(), in.Load())
	}
}
