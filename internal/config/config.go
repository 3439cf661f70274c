package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTickRate      = 60
	DefaultDuration      = 60.0
	DefaultFuelPotential = 160.0
	DefaultPowerMax      = 4000.0
	DefaultSetpoint      = 5000.0
	DefaultSafeLimit     = 6482.0
	DefaultLoadPeriod    = 18000
)

type Config struct {
	Reactor    ReactorConfig    `yaml:"reactor"`
	Sim        SimConfig        `yaml:"sim"`
	Controller ControllerConfig `yaml:"controller"`
	Load       LoadConfig       `yaml:"load"`
	Safety     SafetyConfig     `yaml:"safety"`
}

type ReactorConfig struct {
	FuelPotential float64 `yaml:"fuel_potential"`
	PowerMax      float64 `yaml:"power_max"`
}

type SimConfig struct {
	Duration float64 `yaml:"duration"` // seconds
	TickRate int     `yaml:"tick_rate"`
}

type ControllerConfig struct {
	Kind     string  `yaml:"kind"`
	Setpoint float64 `yaml:"setpoint"`
	Kp       float64 `yaml:"kp"`
	Ki       float64 `yaml:"ki"`
	Kd       float64 `yaml:"kd"`
}

type LoadConfig struct {
	Min    float64 `yaml:"min"`
	Max    float64 `yaml:"max"`
	Period int     `yaml:"period"` // ticks; zero or negative disables the generator
}

type SafetyConfig struct {
	MaxTemperature float64 `yaml:"max_temperature"`
}

func DefaultConfig() *Config {
	return &Config{
		Reactor: ReactorConfig{
			FuelPotential: DefaultFuelPotential,
			PowerMax:      DefaultPowerMax,
		},
		Sim: SimConfig{
			Duration: DefaultDuration,
			TickRate: DefaultTickRate,
		},
		Controller: ControllerConfig{
			Kind:     "bangbang",
			Setpoint: DefaultSetpoint,
		},
		Load: LoadConfig{
			Min:    0,
			Max:    100,
			Period: DefaultLoadPeriod,
		},
		Safety: SafetyConfig{
			MaxTemperature: DefaultSafeLimit,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Reactor.FuelPotential <= 0 {
		return fmt.Errorf("fuel_potential must be positive, got %v", c.Reactor.FuelPotential)
	}
	if c.Reactor.PowerMax < 0 {
		return fmt.Errorf("power_max must not be negative, got %v", c.Reactor.PowerMax)
	}
	if c.Sim.TickRate <= 0 {
		return fmt.Errorf("tick_rate must be positive, got %d", c.Sim.TickRate)
	}
	if c.Sim.Duration < 0 {
		return fmt.Errorf("duration must not be negative, got %v", c.Sim.Duration)
	}
	switch c.Controller.Kind {
	case "bangbang", "pid", "none", "":
	default:
		return fmt.Errorf("unknown controller: %s", c.Controller.Kind)
	}
	return nil
}

// RunDuration is the configured run length as a time.Duration.
func (c *Config) RunDuration() time.Duration {
	return time.Duration(c.Sim.Duration * float64(time.Second))
}
