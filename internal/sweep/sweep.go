// Package sweep fans a reactor study out across fuel potentials and
// classifies each run against the configured temperature limit.
package sweep

import (
	"fmt"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/pkarell/fissim/internal/config"
	"github.com/pkarell/fissim/internal/control"
	"github.com/pkarell/fissim/internal/export"
	"github.com/pkarell/fissim/internal/metrics"
	"github.com/pkarell/fissim/internal/reactor"
	"github.com/pkarell/fissim/internal/sim"
)

// DefaultPotentials are the fuel potentials studied when the caller does
// not supply its own set.
var DefaultPotentials = []float64{80, 160, 240, 320}

// Result summarizes one run of the sweep.
type Result struct {
	FuelPotential  float64
	MaxTemperature float64
	Safe           bool
	Recorder       *metrics.Recorder
	ChartDir       string
}

// Sweeper runs the configured scenario once per fuel potential, all runs
// in parallel. Every run gets its own reactor, recorder, and controller
// stack built from the shared config.
type Sweeper struct {
	cfg    *config.Config
	outDir string
	logger *log.Logger
}

// New returns a Sweeper. If outDir is empty no charts are written. A nil
// logger falls back to the process default.
func New(cfg *config.Config, outDir string, logger *log.Logger) *Sweeper {
	if logger == nil {
		logger = log.Default()
	}
	return &Sweeper{cfg: cfg, outDir: outDir, logger: logger}
}

// Run simulates every fuel potential and returns the results in input
// order. Runs are independent: when one fails, the others still finish
// and their results are returned alongside the first error.
func (s *Sweeper) Run(potentials []float64) ([]Result, error) {
	if len(potentials) == 0 {
		potentials = DefaultPotentials
	}

	results := make([]Result, len(potentials))
	errs := make([]error, len(potentials))

	var wg sync.WaitGroup
	for i, fp := range potentials {
		wg.Add(1)
		go func(idx int, fp float64) {
			defer wg.Done()
			results[idx], errs[idx] = s.runOne(fp)
		}(i, fp)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return results, err
		}
	}
	return results, nil
}

func (s *Sweeper) runOne(fp float64) (Result, error) {
	strategy, err := control.Strategy(s.cfg.Controller.Kind, control.Params{
		Setpoint: s.cfg.Controller.Setpoint,
		Kp:       s.cfg.Controller.Kp,
		Ki:       s.cfg.Controller.Ki,
		Kd:       s.cfg.Controller.Kd,
	})
	if err != nil {
		return Result{FuelPotential: fp}, fmt.Errorf("fuel potential %g: %w", fp, err)
	}

	r := reactor.New(fp, s.cfg.Reactor.PowerMax)
	rec := metrics.NewRecorder(int(s.cfg.Sim.Duration) * s.cfg.Sim.TickRate)

	// The recorder sits between the load generator and the strategy, so
	// each sample pairs the tick's demand with the command issued on the
	// previous tick.
	stack := sim.Sequence{}
	if s.cfg.Load.Period > 0 {
		stack = append(stack, &control.SquareLoad{
			Min:    s.cfg.Load.Min,
			Max:    s.cfg.Load.Max,
			Period: s.cfg.Load.Period,
		})
	}
	stack = append(stack, rec, strategy)

	sim.New(s.cfg.RunDuration(), s.cfg.Sim.TickRate, r, stack).Run()

	res := Result{
		FuelPotential:  fp,
		MaxTemperature: rec.Temperature.Max(),
		Recorder:       rec,
	}
	res.Safe = res.MaxTemperature <= s.cfg.Safety.MaxTemperature

	if s.outDir != "" {
		dir := filepath.Join(s.outDir, strconv.FormatFloat(fp, 'f', -1, 64))
		if err := export.WriteRunCharts(dir, rec, s.cfg.Controller.Setpoint); err != nil {
			return res, fmt.Errorf("fuel potential %g: %w", fp, err)
		}
		res.ChartDir = dir
	}

	s.logger.Info("sweep run finished",
		"fuel_potential", fp,
		"max_temp", res.MaxTemperature,
		"safe", res.Safe,
	)
	return res, nil
}
