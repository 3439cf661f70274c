package reactor

import (
	"math"
	"testing"
)

func TestInputSettersClamp(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want float64
	}{
		{"in range", 42.5, 42.5},
		{"low edge", 0, 0},
		{"high edge", 100, 100},
		{"below range", -3, 0},
		{"far below", -1e9, 0},
		{"above range", 180, 100},
		{"positive infinity", math.Inf(1), 100},
		{"negative infinity", math.Inf(-1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in Input
			in.SetFissionRate(tt.v)
			in.SetTurbineRate(tt.v)
			in.SetLoad(tt.v)

			if got := in.FissionRate(); got != tt.want {
				t.Errorf("fission rate: expected %v, got %v", tt.want, got)
			}
			if got := in.TurbineRate(); got != tt.want {
				t.Errorf("turbine rate: expected %v, got %v", tt.want, got)
			}
			if got := in.Load(); got != tt.want {
				t.Errorf("load: expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestInputLastWriteWins(t *testing.T) {
	var in Input
	in.SetFissionRate(30)
	in.SetFissionRate(70)
	if got := in.FissionRate(); got != 70 {
		t.Errorf("expected 70, got %v", got)
	}
}
