package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkarell/fissim/internal/metrics"
)

// palette shared with the terminal styles
const (
	colorTemperature = "#ff4444"
	colorReference   = "#ffaa00"
	colorOptimal     = "#00ff88"
	colorTarget      = "#ffaa00"
	colorActual      = "#ff4444"
)

// WriteRunCharts writes the three standard charts for one recorded run
// into dir, creating it first: the temperature trace against the
// thermostat reference, the fission picture (optimal, target, actual) and
// the turbine picture (target, actual).
func WriteRunCharts(dir string, rec *metrics.Recorder, setpoint float64) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("chart dir: %w", err)
	}

	reference := make([]float64, rec.Ticks())
	for i := range reference {
		reference[i] = setpoint
	}

	charts := []struct {
		name  string
		chart Chart
	}{
		{"temperature.svg", Chart{
			Title: "Temperature",
			YMin:  0,
			YMax:  10000,
			Lines: []Line{
				{Label: "temperature", Color: colorTemperature, Values: rec.Temperature},
				{Label: "reference", Color: colorReference, Dashed: true, Values: reference},
			},
		}},
		{"fission.svg", Chart{
			Title: "Fission Rate",
			YMin:  0,
			YMax:  100,
			Lines: []Line{
				{Label: "optimal", Color: colorOptimal, Values: rec.FissionOptimal},
				{Label: "target", Color: colorTarget, Values: rec.FissionTarget},
				{Label: "actual", Color: colorActual, Values: rec.Fission},
			},
		}},
		{"turbine.svg", Chart{
			Title: "Turbine Rate",
			YMin:  0,
			YMax:  100,
			Lines: []Line{
				{Label: "actual", Color: colorActual, Values: rec.Turbine},
				{Label: "target", Color: colorTarget, Values: rec.TurbineTarget},
			},
		}},
	}

	for _, c := range charts {
		if err := c.chart.WriteFile(filepath.Join(dir, c.name)); err != nil {
			return err
		}
	}
	return nil
}
