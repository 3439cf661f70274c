// Package viz provides a terminal dashboard for a running reactor.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: live view stepping the plant at the configured tick rate
//   - [Gauge], [Sparkline]: bar and trend renderers for panel rows
//
// # Key Bindings
//
//	Space - Pause/Resume the plant
//	R     - Reset to a cold core
//	Up/Dn - Nudge the fission target
//	Lt/Rt - Nudge the turbine target
//	Q     - Quit
//
// A controller from the control package can be attached; it runs before
// every plant step, so the panel shows exactly what a headless run does.
package viz
