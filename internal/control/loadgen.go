package control

import "github.com/pkarell/fissim/internal/reactor"

// SquareLoad alternates the turbine demand between Max and Min on a fixed
// period, high phase first, and mirrors the driven level into the load
// echo. The counter advances before the phase check, so the first tick
// already sits inside the high phase.
type SquareLoad struct {
	Min    float64
	Max    float64
	Period int // ticks per full wave

	tick int
}

func NewSquareLoad(min, max float64, period int) *SquareLoad {
	return &SquareLoad{
		Min:    min,
		Max:    max,
		Period: period,
	}
}

func (l *SquareLoad) Update(out reactor.Output, in *reactor.Input) {
	if l.Period <= 0 {
		return
	}
	l.tick = (l.tick + 1) % l.Period

	level := l.Min
	if l.tick < l.Period/2 {
		level = l.Max
	}
	in.SetTurbineRate(level)
	in.SetLoad(level)
}
