package reactor

import "math"

// slewToward moves current toward target by at most maxStep, landing
// exactly on the target rather than stepping past it.
func slewToward(current, target, maxStep float64) float64 {
	diff := target - current
	if math.Abs(diff) <= maxStep {
		return target
	}
	return current + math.Copysign(maxStep, diff)
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}

// core is the fission side of the plant. Its target chases the requested
// rate at the actuator slew limit and its value relaxes toward the target,
// capped by the fuel's heat potential.
type core struct {
	value  float64
	target float64
}

func (c *core) update(requested, dt float64) {
	c.target = slewToward(c.target, requested, targetSlewRate*dt)
	c.value += (min(c.target, heatPotentialCap) - c.value) * dt
	c.value = clamp(c.value, 0, rateCeiling)
}

// turbine mirrors core without the heat-potential cap.
type turbine struct {
	value  float64
	target float64
}

func (t *turbine) update(requested, dt float64) {
	t.target = slewToward(t.target, requested, targetSlewRate*dt)
	t.value += (t.target - t.value) * dt
	t.value = clamp(t.value, 0, rateCeiling)
}
