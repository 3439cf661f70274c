// Package reactor models a fission reactor as a fixed-step plant: a fuel
// core and a steam turbine, each chasing an operator target at a bounded
// slew rate, coupled by a coolant temperature that pursues the balance of
// heat supplied and heat drawn.
//
//   - [Input]: the writable targets (fission, turbine, load), clamped to [0,100]
//   - [Output]: the panel snapshot controllers observe each tick
//   - [Reactor]: couples core, turbine and temperature; Update advances one tick
//
// Observation lags actuation by one tick: Update moves the temperature
// against the previous tick's core and turbine values before the actuators
// themselves move. Controllers that read Output therefore always see the
// plant as it was when they last acted.
package reactor
