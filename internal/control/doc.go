// Package control provides tick controllers for the reactor panel.
//
// Controllers implement the [sim.Controller] interface, reading the output
// snapshot and writing the input targets once per tick:
//
//   - [BangBang]: full-on/full-off thermostat on the fission target
//   - [PID]: proportional-integral-derivative drive toward a temperature setpoint
//   - [SquareLoad]: synthetic square-wave turbine demand
//
// [Strategy] builds a controller by name. Compose stacks with
// [sim.Sequence]; order matters, later members see earlier writes.
package control
