package control

import "github.com/pkarell/fissim/internal/reactor"

const fullScale = 100.0

// PID drives the fission target toward a temperature setpoint. Gains act
// per tick. The integral term is bounded so a long saturation cannot wind
// it up past full scale.
type PID struct {
	Kp       float64
	Ki       float64
	Kd       float64
	Setpoint float64

	integral float64
	prevErr  float64
	first    bool
}

func NewPID(kp, ki, kd, setpoint float64) *PID {
	return &PID{
		Kp:       kp,
		Ki:       ki,
		Kd:       kd,
		Setpoint: setpoint,
		first:    true,
	}
}

func (p *PID) Update(out reactor.Output, in *reactor.Input) {
	err := p.Setpoint - out.Temperature
	if p.first {
		p.prevErr = err
		p.first = false
	}

	p.integral += err
	if p.Ki > 0 {
		bound := fullScale / p.Ki
		p.integral = min(max(p.integral, -bound), bound)
	}
	derivative := err - p.prevErr
	p.prevErr = err

	u := p.Kp*err + p.Ki*p.integral + p.Kd*derivative
	in.SetFissionRate(u)
}
