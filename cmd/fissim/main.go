package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/pkarell/fissim/internal/analysis"
	"github.com/pkarell/fissim/internal/config"
	"github.com/pkarell/fissim/internal/control"
	"github.com/pkarell/fissim/internal/export"
	"github.com/pkarell/fissim/internal/metrics"
	"github.com/pkarell/fissim/internal/reactor"
	"github.com/pkarell/fissim/internal/sim"
	"github.com/pkarell/fissim/internal/sweep"
	"github.com/pkarell/fissim/internal/viz"
)

var (
	configFile string
	preset     string
	verbose    bool

	fuelPotential float64
	powerMax      float64
	duration      float64
	tickRate      int
	controller    string
	setpoint      float64
	kp            float64
	ki            float64
	kd            float64
	loadMin       float64
	loadMax       float64
	loadPeriod    int
	safeLimit     float64

	outDir     string
	plotSeries bool
	potentials []float64
)

var logger = log.New(os.Stderr)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fissim",
		Short: "fission reactor control simulation lab",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "debug logging")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run one simulation",
		RunE:  runSimulation,
	}
	addConfigFlags(runCmd)
	runCmd.Flags().StringVar(&outDir, "out", "", "write charts into this directory")
	runCmd.Flags().BoolVar(&plotSeries, "plot", false, "print terminal charts of the recorded series")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "study fuel potentials in parallel",
		RunE:  runSweep,
	}
	addConfigFlags(sweepCmd)
	sweepCmd.Flags().Float64SliceVar(&potentials, "potentials", sweep.DefaultPotentials, "fuel potentials to study")
	sweepCmd.Flags().StringVar(&outDir, "out", "reactor", "chart directory root (empty disables charts)")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "drive the reactor from a live control-room panel",
		RunE:  runLive,
	}
	addConfigFlags(liveCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(runCmd, sweepCmd, liveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().Float64Var(&fuelPotential, "potential", config.DefaultFuelPotential, "fuel potential")
	cmd.Flags().Float64Var(&powerMax, "power", config.DefaultPowerMax, "rated maximum power")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "run duration in seconds")
	cmd.Flags().IntVar(&tickRate, "tick-rate", config.DefaultTickRate, "ticks per simulated second")
	cmd.Flags().StringVar(&controller, "controller", "bangbang", "controller (bangbang, pid, none)")
	cmd.Flags().Float64Var(&setpoint, "setpoint", config.DefaultSetpoint, "controller temperature setpoint")
	cmd.Flags().Float64Var(&kp, "kp", 0, "pid kp")
	cmd.Flags().Float64Var(&ki, "ki", 0, "pid ki")
	cmd.Flags().Float64Var(&kd, "kd", 0, "pid kd")
	cmd.Flags().Float64Var(&loadMin, "load-min", 0, "load wave low level")
	cmd.Flags().Float64Var(&loadMax, "load-max", 100, "load wave high level")
	cmd.Flags().IntVar(&loadPeriod, "load-period", config.DefaultLoadPeriod, "load wave period in ticks (0 disables)")
	cmd.Flags().Float64Var(&safeLimit, "safe-limit", config.DefaultSafeLimit, "maximum safe temperature")
}

// resolveConfig layers the run configuration: defaults, then the preset,
// then the config file, then any flag set explicitly on the command line.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("potential") {
		cfg.Reactor.FuelPotential = fuelPotential
	}
	if cmd.Flags().Changed("power") {
		cfg.Reactor.PowerMax = powerMax
	}
	if cmd.Flags().Changed("time") {
		cfg.Sim.Duration = duration
	}
	if cmd.Flags().Changed("tick-rate") {
		cfg.Sim.TickRate = tickRate
	}
	if cmd.Flags().Changed("controller") {
		cfg.Controller.Kind = controller
	}
	if cmd.Flags().Changed("setpoint") {
		cfg.Controller.Setpoint = setpoint
	}
	if cmd.Flags().Changed("kp") {
		cfg.Controller.Kp = kp
	}
	if cmd.Flags().Changed("ki") {
		cfg.Controller.Ki = ki
	}
	if cmd.Flags().Changed("kd") {
		cfg.Controller.Kd = kd
	}
	if cmd.Flags().Changed("load-min") {
		cfg.Load.Min = loadMin
	}
	if cmd.Flags().Changed("load-max") {
		cfg.Load.Max = loadMax
	}
	if cmd.Flags().Changed("load-period") {
		cfg.Load.Period = loadPeriod
	}
	if cmd.Flags().Changed("safe-limit") {
		cfg.Safety.MaxTemperature = safeLimit
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func controlParams(cfg *config.Config) control.Params {
	return control.Params{
		Setpoint: cfg.Controller.Setpoint,
		Kp:       cfg.Controller.Kp,
		Ki:       cfg.Controller.Ki,
		Kd:       cfg.Controller.Kd,
	}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	strategy, err := control.Strategy(cfg.Controller.Kind, controlParams(cfg))
	if err != nil {
		return err
	}

	r := reactor.New(cfg.Reactor.FuelPotential, cfg.Reactor.PowerMax)
	rec := metrics.NewRecorder(int(cfg.Sim.Duration) * cfg.Sim.TickRate)

	stack := sim.Sequence{}
	if cfg.Load.Period > 0 {
		stack = append(stack, control.NewSquareLoad(cfg.Load.Min, cfg.Load.Max, cfg.Load.Period))
	}
	stack = append(stack, rec, strategy)

	logger.Debug("starting run",
		"fuel_potential", cfg.Reactor.FuelPotential,
		"controller", cfg.Controller.Kind,
		"duration", cfg.RunDuration())

	start := time.Now()
	sim.New(cfg.RunDuration(), cfg.Sim.TickRate, r, stack).Run()
	elapsed := time.Since(start)

	maxTemp := rec.Temperature.Max()
	safe := maxTemp <= cfg.Safety.MaxTemperature
	period := analysis.DominantPeriod(rec.Temperature, cfg.Sim.TickRate)

	logger.Info("run finished",
		"ticks", rec.Ticks(),
		"elapsed", elapsed,
		"max_temp", maxTemp,
		"safe", safe)

	if outDir != "" {
		if err := export.WriteRunCharts(outDir, rec, cfg.Controller.Setpoint); err != nil {
			return err
		}
		logger.Info("charts written", "dir", outDir)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FUEL\tMAX TEMP\tFINAL TEMP\tFINAL POWER\tVERDICT\tOSC PERIOD")
	fmt.Fprintf(w, "%.0f\t%.1f\t%.1f\t%.1f\t%s\t%s\n",
		cfg.Reactor.FuelPotential,
		maxTemp,
		rec.Temperature.Last(),
		rec.Power.Last(),
		verdict(safe),
		periodLabel(period),
	)
	if err := w.Flush(); err != nil {
		return err
	}

	if plotSeries {
		printPlots(rec)
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	logger.Info("starting sweep", "potentials", potentials, "out", outDir)
	results, runErr := sweep.New(cfg, outDir, logger).Run(potentials)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FUEL\tMAX TEMP\tVERDICT\tCHARTS")
	for _, res := range results {
		charts := res.ChartDir
		if charts == "" {
			charts = "-"
		}
		fmt.Fprintf(w, "%.0f\t%.1f\t%s\t%s\n",
			res.FuelPotential,
			res.MaxTemperature,
			verdict(res.Safe),
			charts,
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return runErr
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	strategy, err := control.Strategy(cfg.Controller.Kind, controlParams(cfg))
	if err != nil {
		return err
	}

	r := reactor.New(cfg.Reactor.FuelPotential, cfg.Reactor.PowerMax)
	m := viz.NewModel(r, strategy, cfg.Sim.TickRate)

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFUEL\tPOWER\tTIME\tCONTROLLER\tSETPOINT\tLOAD PERIOD")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%.0f\t%.0f\t%.0fs\t%s\t%.0f\t%d\n",
			name,
			p.Reactor.FuelPotential,
			p.Reactor.PowerMax,
			p.Sim.Duration,
			p.Controller.Kind,
			p.Controller.Setpoint,
			p.Load.Period,
		)
	}
	return w.Flush()
}

func verdict(safe bool) string {
	if safe {
		return "safe"
	}
	return "unsafe"
}

func periodLabel(period float64) string {
	if period == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1fs", period)
}

func printPlots(rec *metrics.Recorder) {
	plots := []struct {
		caption string
		series  metrics.Series
	}{
		{"temperature", rec.Temperature},
		{"fission rate (actual)", rec.Fission},
		{"turbine rate (actual)", rec.Turbine},
	}
	for _, p := range plots {
		if len(p.series) < 2 {
			continue
		}
		fmt.Println()
		fmt.Println(asciigraph.Plot(p.series,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(p.caption)))
	}
}
