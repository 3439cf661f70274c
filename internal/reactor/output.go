package reactor

// Output is the panel snapshot handed to controllers each tick. FissionRate
// and TurbineRate carry the achieved actuator values rather than the
// requested targets; an operator panel would hide them, measurement code
// wants them.
type Output struct {
	Temperature   float64
	Load          float64
	Power         float64
	FuelPotential float64
	FissionRate   float64
	TurbineRate   float64
}
