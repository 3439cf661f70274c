// Package sim drives one reactor under a controller stack on a fixed tick.
package sim

import (
	"time"

	"github.com/pkarell/fissim/internal/reactor"
)

// DefaultTickRate is the reference tick frequency in ticks per second.
const DefaultTickRate = 60

// Controller acts on the reactor panel once per tick: read the output
// snapshot, mutate the input targets. Implementations own any state they
// keep between ticks.
type Controller interface {
	Update(out reactor.Output, in *reactor.Input)
}

// Sequence runs its members in order with the same snapshot and the same
// input, so a later member observes every write an earlier member made this
// tick. An empty Sequence is a no-op, and Sequences nest.
type Sequence []Controller

func (s Sequence) Update(out reactor.Output, in *reactor.Input) {
	for _, c := range s {
		c.Update(out, in)
	}
}

// Simulation ticks one reactor under one controller.
type Simulation struct {
	reactor    *reactor.Reactor
	controller Controller
	ticks      int
	dt         float64
}

// New sizes a run from its duration: whole seconds times the tick rate,
// each tick advancing 1/tickRate seconds of plant time.
func New(duration time.Duration, tickRate int, r *reactor.Reactor, c Controller) *Simulation {
	return &Simulation{
		reactor:    r,
		controller: c,
		ticks:      int(duration/time.Second) * tickRate,
		dt:         1.0 / float64(tickRate),
	}
}

// Ticks is the number of updates Run will execute.
func (s *Simulation) Ticks() int { return s.ticks }

// Dt is the plant time one tick advances.
func (s *Simulation) Dt() float64 { return s.dt }

// Run executes the full schedule, controller before plant on every tick,
// and hands the controller back for inspection.
func (s *Simulation) Run() Controller {
	for i := 0; i < s.ticks; i++ {
		in, out := s.reactor.Controls()
		s.controller.Update(out, in)
		s.reactor.Update(s.dt)
	}
	return s.controller
}
