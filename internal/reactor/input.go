package reactor

// Input is the writable side of the reactor panel. Controllers set the
// fission and turbine targets and the external load; every setter clamps
// its argument to the operational range [0,100], so no write can fail.
type Input struct {
	fissionRate float64
	turbineRate float64
	load        float64
}

func (in *Input) SetFissionRate(v float64) { in.fissionRate = clamp(v, 0, rateCeiling) }
func (in *Input) SetTurbineRate(v float64) { in.turbineRate = clamp(v, 0, rateCeiling) }
func (in *Input) SetLoad(v float64)        { in.load = clamp(v, 0, rateCeiling) }

func (in *Input) FissionRate() float64 { return in.fissionRate }
func (in *Input) TurbineRate() float64 { return in.turbineRate }
func (in *Input) Load() float64        { return in.load }
