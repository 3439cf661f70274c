package reactor

import "math"

const (
	rateCeiling      = 100.0
	targetSlewRate   = 5.0 // target units per second
	heatPotentialCap = 320.0
	temperatureMax   = 10000.0
	temperatureRate  = 1000.0 // degrees per second toward the pursuit point
	demandFactor     = 75.0   // heat asked per turbine unit
	drawFactor       = 100.0  // heat drawn from the coolant per turbine unit
	supplyFactor     = 2.0    // heat supplied per core unit per fuel potential
)

// Reactor couples the fission core, the steam turbine and the coolant
// temperature into one fixed-step plant.
type Reactor struct {
	input  Input
	output Output

	core    core
	turbine turbine

	temperature   float64
	fuelPotential float64
	powerMax      float64
}

// New builds an idle reactor. fuelPotential scales how much heat a unit of
// core output supplies; powerMax is the nameplate output at full throttle.
func New(fuelPotential, powerMax float64) *Reactor {
	r := &Reactor{
		fuelPotential: fuelPotential,
		powerMax:      powerMax,
	}
	r.output.FuelPotential = fuelPotential
	return r
}

// Controls hands a controller the mutable input alongside the current
// panel snapshot.
func (r *Reactor) Controls() (*Input, Output) {
	return &r.input, r.output
}

// Update advances the plant by dt seconds. The temperature moves first,
// against the core and turbine values of the previous tick, then the two
// actuators chase their requested targets and the panel refreshes.
func (r *Reactor) Update(dt float64) {
	r.updateTemperature(dt)
	r.core.update(r.input.fissionRate, dt)
	r.turbine.update(r.input.turbineRate, dt)

	r.output.Temperature = r.temperature
	r.output.Load = r.input.load
	r.output.Power = r.Power()
	r.output.FuelPotential = r.fuelPotential
	r.output.FissionRate = r.core.value
	r.output.TurbineRate = r.turbine.value
}

func (r *Reactor) updateTemperature(dt float64) {
	gap := (r.HeatSupply() - r.turbine.value*drawFactor) - r.temperature
	step := math.Copysign(temperatureRate*dt, gap)
	if math.Abs(step) > math.Abs(gap) {
		step = gap
	}
	r.temperature = clamp(r.temperature+step, 0, temperatureMax)
}

func (r *Reactor) Temperature() float64   { return r.temperature }
func (r *Reactor) FissionRate() float64   { return r.core.value }
func (r *Reactor) TurbineRate() float64   { return r.turbine.value }
func (r *Reactor) FuelPotential() float64 { return r.fuelPotential }
func (r *Reactor) PowerMax() float64      { return r.powerMax }

// HeatDemand is the heat the turbine asks of the core at its current speed.
func (r *Reactor) HeatDemand() float64 {
	return r.turbine.value * demandFactor
}

// HeatSupply is the heat the core produces at its current output.
func (r *Reactor) HeatSupply() float64 {
	return supplyFactor * r.core.value * r.fuelPotential
}

// Power is the electrical output delivered at the current turbine speed.
func (r *Reactor) Power() float64 {
	return r.turbine.value * r.powerMax / 100.0
}
