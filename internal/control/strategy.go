package control

import (
	"errors"
	"fmt"

	"github.com/pkarell/fissim/internal/sim"
)

var ErrUnknownStrategy = errors.New("control: unknown strategy")

// Params carries the tunables a strategy may need.
type Params struct {
	Setpoint float64
	Kp       float64
	Ki       float64
	Kd       float64
}

// Strategy builds the automatic strategy named by kind: "bangbang", "pid"
// or "none" (an empty sequence that leaves the panel alone).
func Strategy(kind string, p Params) (sim.Controller, error) {
	switch kind {
	case "bangbang":
		return NewBangBang(p.Setpoint), nil
	case "pid":
		return NewPID(p.Kp, p.Ki, p.Kd, p.Setpoint), nil
	case "none", "":
		return sim.Sequence{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, kind)
	}
}
