package control

import "github.com/pkarell/fissim/internal/reactor"

// BangBang is a thermostat on the fission target: wide open until the
// temperature passes the setpoint, shut once it does.
type BangBang struct {
	Setpoint float64
}

func NewBangBang(setpoint float64) *BangBang {
	return &BangBang{
		Setpoint: setpoint,
	}
}

func (b *BangBang) Update(out reactor.Output, in *reactor.Input) {
	if out.Temperature > b.Setpoint {
		in.SetFissionRate(0)
		return
	}
	in.SetFissionRate(100)
}
