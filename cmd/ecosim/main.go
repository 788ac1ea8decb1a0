package main

import (
	"fmt"
	"os"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/ecosim/internal/config"
	"github.com/san-kum/ecosim/internal/export"
	"github.com/san-kum/ecosim/internal/fit"
	"github.com/san-kum/ecosim/internal/integrators"
	"github.com/san-kum/ecosim/internal/lotka"
	"github.com/san-kum/ecosim/internal/sim"
	"github.com/san-kum/ecosim/internal/trace"
	"github.com/san-kum/ecosim/internal/viz"
)

var (
	dt        float64
	duration  float64
	modelFile string
	initPops  []float64
	outFile   string
	// Config file and preset
	configFile string
	preset     string
	// Resample window
	sampleStart float64
	sampleEnd   float64
	sampleStep  float64
	// Plot dimensions
	plotWidth  int
	plotHeight int
	// Fit grid
	fitDt        float64
	fitDivisions int
	fitLow       float64
	fitHigh      float64
	fitModelOut  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ecosim",
		Short: "multi-species Lotka-Volterra simulation lab",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a simulation and save the trace",
		RunE:  runSimulation,
	}
	addRunFlags(runCmd)
	runCmd.Flags().StringVar(&outFile, "out", "trace.txt", "output trace file")
	runCmd.Flags().Float64Var(&sampleStep, "sample-step", 0, "resample output onto a regular grid with this step")

	resampleCmd := &cobra.Command{
		Use:   "resample [trace] [out]",
		Short: "resample a trace onto a regular time grid",
		Args:  cobra.ExactArgs(2),
		RunE:  resampleTrace,
	}
	resampleCmd.Flags().Float64Var(&sampleStart, "start", 0, "first sample time")
	resampleCmd.Flags().Float64Var(&sampleEnd, "end", -1, "last sample time (default: trace max time)")
	resampleCmd.Flags().Float64Var(&sampleStep, "step", 1.0, "sample interval")

	plotCmd := &cobra.Command{
		Use:   "plot [trace]",
		Short: "plot trace populations in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  plotTrace,
	}
	plotCmd.Flags().IntVar(&plotWidth, "width", 80, "plot width")
	plotCmd.Flags().IntVar(&plotHeight, "height", 16, "plot height")

	showCmd := &cobra.Command{
		Use:   "show [model]",
		Short: "print model parameters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := lotka.ReadFile(args[0])
			if err != nil {
				return err
			}
			fmt.Print(m)
			return nil
		},
	}

	fitCmd := &cobra.Command{
		Use:   "fit [observed-trace]",
		Short: "grid-search model parameters against an observed trace",
		Args:  cobra.ExactArgs(1),
		RunE:  fitTrace,
	}
	fitCmd.Flags().Float64Var(&fitDt, "dt", 0.01, "integration timestep for candidates")
	fitCmd.Flags().IntVar(&fitDivisions, "divisions", 3, "grid divisions per coefficient")
	fitCmd.Flags().Float64Var(&fitLow, "low", 0, "coefficient lower bound")
	fitCmd.Flags().Float64Var(&fitHigh, "high", 1, "coefficient upper bound")
	fitCmd.Flags().StringVar(&fitModelOut, "model-out", "", "save the best model to this file")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [trace]",
		Short: "export a trace as JSON",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := trace.ReadFile(args[0])
			if err != nil {
				return err
			}
			if len(args) == 2 {
				return export.JSONFile(args[1], tr)
			}
			return export.JSON(os.Stdout, tr)
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run a simulation with live visualization",
		RunE:  runLive,
	}
	addRunFlags(liveCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(runCmd, resampleCmd, plotCmd, showCmd, fitCmd, exportJSONCmd, liveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "total simulated time")
	cmd.Flags().StringVar(&modelFile, "model", "", "model parameter file")
	cmd.Flags().Float64SliceVar(&initPops, "init", nil, "initial populations")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use a named preset")
}

// resolveRun merges preset, config file and CLI flags (flags win) into the
// model and run parameters.
func resolveRun(cmd *cobra.Command) (*lotka.Model, []float64, float64, float64, *config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, nil, 0, 0, nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		c := *p
		cfg = &c
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, nil, 0, 0, nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if modelFile != "" {
		cfg.ModelFile = modelFile
		cfg.Model = nil
	}
	if cmd.Flags().Changed("init") {
		cfg.InitialPopulations = initPops
	}
	if cmd.Flags().Changed("dt") || cfg.Dt == 0 {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") || cfg.Duration == 0 {
		cfg.Duration = duration
	}

	m, err := cfg.BuildModel()
	if err != nil {
		return nil, nil, 0, 0, nil, err
	}
	if len(cfg.InitialPopulations) != m.Species() {
		return nil, nil, 0, 0, nil, fmt.Errorf("need %d initial populations, got %d", m.Species(), len(cfg.InitialPopulations))
	}
	return m, cfg.InitialPopulations, cfg.Duration, cfg.Dt, cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	m, initial, totalTime, step, cfg, err := resolveRun(cmd)
	if err != nil {
		return err
	}

	fmt.Printf("integrating %d species over t=[0,%g] with dt=%g...\n", m.Species(), totalTime, step)
	start := time.Now()

	tr, err := sim.Integrate(m, integrators.NewRK4(), initial, totalTime, step)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v (%d states)\n", time.Since(start), tr.Len())

	out := outFile
	if cfg.Output != "" && !cmd.Flags().Changed("out") {
		out = cfg.Output
	}

	if cfg.Sample != nil {
		return tr.SaveSampled(out, cfg.Sample.Start, cfg.Sample.End, cfg.Sample.Step)
	}
	if sampleStep > 0 {
		return tr.SaveSampled(out, 0, tr.MaxTime(), sampleStep)
	}
	return tr.SaveFile(out)
}

func resampleTrace(cmd *cobra.Command, args []string) error {
	tr, err := trace.ReadFile(args[0])
	if err != nil {
		return err
	}
	end := sampleEnd
	if end < 0 {
		end = tr.MaxTime()
	}
	return tr.SaveSampled(args[1], sampleStart, end, sampleStep)
}

func plotTrace(cmd *cobra.Command, args []string) error {
	tr, err := trace.ReadFile(args[0])
	if err != nil {
		return err
	}
	if tr.Len() == 0 {
		return fmt.Errorf("trace is empty")
	}

	// Resample onto the plot width so irregular traces render evenly.
	series := make([][]float64, tr.Species())
	for i := range series {
		series[i] = make([]float64, plotWidth)
	}
	maxTime := tr.MaxTime()
	for k := 0; k < plotWidth; k++ {
		t := maxTime * float64(k) / float64(plotWidth-1)
		state := tr.StateAt(t)
		for i := range series {
			series[i][k] = state[i]
		}
	}

	fmt.Println(asciigraph.PlotMany(series,
		asciigraph.Width(plotWidth),
		asciigraph.Height(plotHeight),
		asciigraph.Caption(fmt.Sprintf("populations over t=[0,%g]", maxTime)),
	))
	return nil
}

func fitTrace(cmd *cobra.Command, args []string) error {
	observed, err := trace.ReadFile(args[0])
	if err != nil {
		return err
	}

	obj := fit.NewObjective(observed, fitDt)
	ranges := fit.UniformRanges(fit.GenomeLen(observed.Species()), fitDivisions, fitLow, fitHigh)

	fmt.Printf("searching %d coefficients, %d divisions each...\n", len(ranges), fitDivisions)
	start := time.Now()

	best, score := fit.NewGridSearch(ranges).Search(obj)
	if best == nil {
		return fmt.Errorf("no valid candidate found")
	}

	fmt.Printf("completed in %v (error = %g)\n", time.Since(start), score)

	m, err := obj.Model(best)
	if err != nil {
		return err
	}
	fmt.Print(m)

	if fitModelOut != "" {
		return m.WriteFile(fitModelOut)
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	m, initial, totalTime, step, _, err := resolveRun(cmd)
	if err != nil {
		return err
	}
	return viz.RunLive(m, integrators.NewRK4(), initial, step, totalTime)
}
