// Package metrics collects per-tick measurements from a running reactor.
package metrics

import "github.com/pkarell/fissim/internal/reactor"

// Series is one recorded quantity, one sample per tick.
type Series []float64

// Max returns the largest sample, 0 for an empty series.
func (s Series) Max() float64 {
	m := 0.0
	for i, v := range s {
		if i == 0 || v > m {
			m = v
		}
	}
	return m
}

// Min returns the smallest sample, 0 for an empty series.
func (s Series) Min() float64 {
	m := 0.0
	for i, v := range s {
		if i == 0 || v < m {
			m = v
		}
	}
	return m
}

// Last returns the most recent sample, 0 for an empty series.
func (s Series) Last() float64 {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1]
}

// Recorder is a controller that only watches. Each tick it appends the
// panel state, the requested targets and the optimal fission rate (the
// rate that would match the current turbine demand) to its series. It
// never writes the input.
type Recorder struct {
	Temperature    Series
	Fission        Series
	FissionTarget  Series
	FissionOptimal Series
	Turbine        Series
	TurbineTarget  Series
	Load           Series
	Power          Series
}

// NewRecorder pre-sizes every series for a run of the given tick count.
func NewRecorder(ticks int) *Recorder {
	if ticks < 0 {
		ticks = 0
	}
	return &Recorder{
		Temperature:    make(Series, 0, ticks),
		Fission:        make(Series, 0, ticks),
		FissionTarget:  make(Series, 0, ticks),
		FissionOptimal: make(Series, 0, ticks),
		Turbine:        make(Series, 0, ticks),
		TurbineTarget:  make(Series, 0, ticks),
		Load:           make(Series, 0, ticks),
		Power:          make(Series, 0, ticks),
	}
}

func (r *Recorder) Update(out reactor.Output, in *reactor.Input) {
	r.Temperature = append(r.Temperature, out.Temperature)
	r.Fission = append(r.Fission, out.FissionRate)
	r.FissionTarget = append(r.FissionTarget, in.FissionRate())
	r.FissionOptimal = append(r.FissionOptimal, in.TurbineRate()*75/out.FuelPotential)
	r.Turbine = append(r.Turbine, out.TurbineRate)
	r.TurbineTarget = append(r.TurbineTarget, in.TurbineRate())
	r.Load = append(r.Load, in.Load())
	r.Power = append(r.Power, out.Power)
}

// Ticks is the number of samples recorded so far.
func (r *Recorder) Ticks() int {
	return len(r.Temperature)
}
