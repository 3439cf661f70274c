package config

import "sort"

var Presets = map[string]*Config{
	"reference": {
		Reactor:    ReactorConfig{FuelPotential: 160, PowerMax: 4000},
		Sim:        SimConfig{Duration: 60, TickRate: 60},
		Controller: ControllerConfig{Kind: "bangbang", Setpoint: 5000},
		Load:       LoadConfig{Min: 0, Max: 100, Period: 18000},
		Safety:     SafetyConfig{MaxTemperature: 6482},
	},
	"idle": {
		Reactor:    ReactorConfig{FuelPotential: 160, PowerMax: 4000},
		Sim:        SimConfig{Duration: 10, TickRate: 60},
		Controller: ControllerConfig{Kind: "none"},
		Safety:     SafetyConfig{MaxTemperature: 6482},
	},
	"surge": {
		Reactor:    ReactorConfig{FuelPotential: 240, PowerMax: 4000},
		Sim:        SimConfig{Duration: 120, TickRate: 60},
		Controller: ControllerConfig{Kind: "bangbang", Setpoint: 5000},
		Load:       LoadConfig{Min: 20, Max: 100, Period: 3600},
		Safety:     SafetyConfig{MaxTemperature: 6482},
	},
	"pid": {
		Reactor:    ReactorConfig{FuelPotential: 160, PowerMax: 4000},
		Sim:        SimConfig{Duration: 120, TickRate: 60},
		Controller: ControllerConfig{Kind: "pid", Setpoint: 5000, Kp: 0.05, Ki: 0.0005, Kd: 0.3},
		Load:       LoadConfig{Min: 0, Max: 100, Period: 18000},
		Safety:     SafetyConfig{MaxTemperature: 6482},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
