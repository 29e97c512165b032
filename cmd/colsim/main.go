package main

import (
	"context"
	"fmt"
	"image"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/colsim/internal/automation"
	"github.com/san-kum/colsim/internal/body"
	"github.com/san-kum/colsim/internal/config"
	"github.com/san-kum/colsim/internal/export"
	"github.com/san-kum/colsim/internal/gui"
	"github.com/san-kum/colsim/internal/metrics"
	"github.com/san-kum/colsim/internal/scenario"
	"github.com/san-kum/colsim/internal/sim"
	"github.com/san-kum/colsim/internal/stats"
	"github.com/san-kum/colsim/internal/viz"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	dt         float64
	duration   float64
	seed       int64
	numBodies  int
	worldW     float64
	worldH     float64
	radiusMin  float64
	radiusMax  float64
	maxSpeed   float64
	configFile string
	preset     string
	gifPath    string
	svgPath    string
	trajPath   string
	histBins   int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "colsim",
		Short: "elastic collision simulation lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the interactive picker when no command given
			return viz.RunInteractive()
		},
	}

	runCmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "run a simulation and report metrics",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSimulation,
	}
	addConfigFlags(runCmd)
	runCmd.Flags().StringVar(&gifPath, "gif", "", "write an animated gif of the run")
	runCmd.Flags().StringVar(&svgPath, "svg", "", "write the final frame as svg")
	runCmd.Flags().StringVar(&trajPath, "traj", "", "write body trajectories as svg")

	liveCmd := &cobra.Command{
		Use:   "live [scenario]",
		Short: "watch a simulation in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addConfigFlags(liveCmd)

	guiCmd := &cobra.Command{
		Use:   "gui [scenario]",
		Short: "watch a simulation in a raylib window",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGUI,
	}
	addConfigFlags(guiCmd)

	statsCmd := &cobra.Command{
		Use:   "stats [scenario]",
		Short: "run a simulation and print gas statistics",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runStats,
	}
	addConfigFlags(statsCmd)
	statsCmd.Flags().IntVar(&histBins, "bins", 8, "speed histogram bins")

	scenariosCmd := &cobra.Command{
		Use:   "scenarios",
		Short: "list scenario generators",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range scenario.List() {
				fmt.Println(name)
			}
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [name]",
		Short: "list preset configurations",
		Args:  cobra.MaximumNArgs(1),
		RunE:  showPresets,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [batch.yaml]",
		Short: "run a scripted batch of simulations",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "time the kernel across body counts",
		RunE:  runBench,
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("colsim %s\n", version)
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, guiCmd, statsCmd, scenariosCmd, presetsCmd, sweepCmd, benchCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	cmd.Flags().IntVar(&numBodies, "bodies", config.DefaultBodies, "number of bodies")
	cmd.Flags().Float64Var(&worldW, "width", config.DefaultWidth, "world width")
	cmd.Flags().Float64Var(&worldH, "height", config.DefaultHeight, "world height")
	cmd.Flags().Float64Var(&radiusMin, "radius-min", config.DefaultRadiusMin, "smallest body radius")
	cmd.Flags().Float64Var(&radiusMax, "radius-max", config.DefaultRadiusMax, "largest body radius")
	cmd.Flags().Float64Var(&maxSpeed, "max-speed", config.DefaultMaxSpeed, "speed cap for generated bodies")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// loadConfig assembles the effective config: defaults, then preset,
// then config file, then explicit flags. A positional argument names
// the scenario.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if len(args) > 0 {
		cfg.Scenario = args[0]
	}

	flags := cmd.Flags()
	if flags.Changed("dt") {
		cfg.Dt = dt
	}
	if flags.Changed("time") {
		cfg.Duration = duration
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("bodies") {
		cfg.Bodies.Count = numBodies
	}
	if flags.Changed("width") {
		cfg.World.Width = worldW
	}
	if flags.Changed("height") {
		cfg.World.Height = worldH
	}
	if flags.Changed("radius-min") {
		cfg.Bodies.RadiusMin = radiusMin
	}
	if flags.Changed("radius-max") {
		cfg.Bodies.RadiusMax = radiusMax
	}
	if flags.Changed("max-speed") {
		cfg.Bodies.MaxSpeed = maxSpeed
	}
	return cfg, nil
}

// energyTrace records total kinetic energy after every macro step.
type energyTrace struct {
	series []float64
}

func (e *energyTrace) OnStep(bodies []*body.Body, step int, t float64) {
	e.series = append(e.series, stats.Summarize(bodies).KineticEnergy)
}

func bodyRadii(s *sim.Simulation) []float64 {
	bodies := s.Bodies()
	radii := make([]float64, len(bodies))
	for i, b := range bodies {
		radii[i] = b.Radius
	}
	return radii
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	s, err := scenario.Build(cfg)
	if err != nil {
		return err
	}
	s.AddMetric(metrics.NewKineticEnergy())
	s.AddMetric(metrics.NewMomentum())
	s.AddMetric(metrics.NewImminentContacts(cfg.Dt))
	s.AddMetric(metrics.NewContainment(s.Bounds()))

	trace := &energyTrace{}
	s.AddObserver(trace)

	fmt.Printf("running %s: %d bodies in %gx%g\n",
		cfg.Scenario, len(s.Bodies()), cfg.World.Width, cfg.World.Height)
	start := time.Now()

	result, err := s.Run(context.Background(), sim.Config{
		Dt:            cfg.Dt,
		Duration:      cfg.Duration,
		ValidateState: true,
	})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("steps: %d\n", result.StepsTaken)
	fmt.Printf("collisions: %d\n", result.Collisions)
	fmt.Printf("energy drift: %.3e\n", result.EnergyDrift)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	if len(trace.series) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(trace.series,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("kinetic energy"),
		))
	}

	if gifPath != "" {
		if err := writeGIF(gifPath, s, result); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", gifPath)
	}
	if svgPath != "" {
		doc := export.SceneSVG(s.Positions(), bodyRadii(s), s.Bounds(), 0)
		if err := os.WriteFile(svgPath, []byte(doc), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgPath)
	}
	if trajPath != "" {
		doc := export.TrajectorySVG(result.Frames, s.Bounds(), 0)
		if doc == "" {
			return fmt.Errorf("not enough frames for a trajectory")
		}
		if err := os.WriteFile(trajPath, []byte(doc), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", trajPath)
	}

	return nil
}

func writeGIF(path string, s *sim.Simulation, result *sim.Result) error {
	scene := viz.NewScene(s.Bounds(), bodyRadii(s), 80, 24)
	frames := make([]*image.Paletted, 0, len(result.Frames))
	for _, positions := range result.Frames {
		scene.Draw(positions)
		frames = append(frames, scene.Canvas().Paletted())
	}
	return viz.SaveGIF(path, frames)
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	s, err := scenario.Build(cfg)
	if err != nil {
		return err
	}

	m := viz.NewModel(s, cfg.Dt, cfg.Scenario)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	s, err := scenario.Build(cfg)
	if err != nil {
		return err
	}

	gui.NewApp(s, cfg.Dt, cfg.Scenario).Run()
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	s, err := scenario.Build(cfg)
	if err != nil {
		return err
	}

	wp := stats.NewWallPressure(s.Bounds())
	s.AddObserver(wp)

	fmt.Printf("running %s for %gs...\n\n", cfg.Scenario, cfg.Duration)
	result, err := s.Run(context.Background(), sim.Config{
		Dt:            cfg.Dt,
		Duration:      cfg.Duration,
		ValidateState: true,
	})
	if err != nil {
		return err
	}

	bodies := s.Bodies()
	sum := stats.Summarize(bodies)
	fmt.Printf("bodies: %d\n", sum.Bodies)
	fmt.Printf("total mass: %.4f\n", sum.TotalMass)
	fmt.Printf("mean speed: %.4f\n", sum.MeanSpeed)
	fmt.Printf("rms speed: %.4f\n", sum.RMSSpeed)
	fmt.Printf("max speed: %.4f\n", sum.MaxSpeed)
	fmt.Printf("kinetic energy: %.4f\n", sum.KineticEnergy)
	fmt.Printf("energy drift: %.3e\n", result.EnergyDrift)
	fmt.Printf("collisions: %d\n", result.Collisions)

	fmt.Println("\nspeed distribution:")
	fmt.Print(stats.SpeedHistogram(bodies, histBins).Render(40))

	fmt.Println("\npressure:")
	fmt.Printf("  wall impulse: %.4f\n", wp.Pressure())
	fmt.Printf("  kinetic (P*A = E): %.4f\n", stats.KineticPressure(bodies, s.Bounds()))

	// Spectrum of the first body's x trace; wall round trips show up
	// as the dominant line. Total energy is conserved, so it would
	// transform to nothing.
	if len(result.Frames) > 3 && len(result.Frames[0]) > 0 {
		x0 := make([]float64, len(result.Frames))
		for i, frame := range result.Frames {
			x0[i] = frame[0].X
		}

		ps := stats.PowerSpectrum(x0)
		fmt.Println()
		fmt.Println(asciigraph.Plot(ps[:len(ps)/2],
			asciigraph.Height(10),
			asciigraph.Width(70),
			asciigraph.Caption("power spectrum (x0)"),
		))
		if period := stats.DominantPeriod(x0, cfg.Dt); period > 0 {
			fmt.Printf("\ndominant period: %.3f s\n", period)
		}
	}

	return nil
}

func showPresets(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		for _, name := range config.ListPresets() {
			fmt.Println(name)
		}
		return nil
	}

	cfg := config.GetPreset(args[0])
	if cfg == nil {
		return fmt.Errorf("unknown preset: %s (available: %v)", args[0], config.ListPresets())
	}
	fmt.Printf("scenario: %s\n", cfg.Scenario)
	fmt.Printf("dt: %g\n", cfg.Dt)
	fmt.Printf("duration: %g\n", cfg.Duration)
	fmt.Printf("world: %gx%g\n", cfg.World.Width, cfg.World.Height)
	fmt.Printf("bodies: %d, radius [%g, %g], max speed %g\n",
		cfg.Bodies.Count, cfg.Bodies.RadiusMin, cfg.Bodies.RadiusMax, cfg.Bodies.MaxSpeed)
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	batch, err := automation.LoadBatch(args[0])
	if err != nil {
		return err
	}

	if batch.Name != "" {
		fmt.Printf("batch: %s\n", batch.Name)
	}
	if batch.Description != "" {
		fmt.Println(batch.Description)
	}

	results, err := automation.RunBatch(context.Background(), batch)
	if err != nil {
		return err
	}

	fmt.Println()
	return automation.WriteReport(os.Stdout, results)
}

func runBench(cmd *cobra.Command, args []string) error {
	counts := []int{8, 16, 32, 64}
	dts := []float64{0.005, 0.02, 0.05}

	fmt.Printf("benchmarking random scenes\n\n")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BODIES\tDT\tSTEPS\tCOLLISIONS\tTIME\tSTEPS/SEC")

	for _, count := range counts {
		for _, benchDt := range dts {
			cfg := config.DefaultConfig()
			cfg.Bodies.Count = count
			cfg.Dt = benchDt
			cfg.Duration = 2.0
			cfg.Seed = 42

			s, err := scenario.Build(cfg)
			if err != nil {
				return err
			}

			start := time.Now()
			result, err := s.Run(context.Background(), sim.Config{
				Dt:            cfg.Dt,
				Duration:      cfg.Duration,
				ValidateState: true,
			})
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			stepsPerSec := float64(result.StepsTaken) / elapsed.Seconds()
			fmt.Fprintf(w, "%d\t%.3fs\t%d\t%d\t%v\t%.0f\n",
				len(s.Bodies()), cfg.Dt, result.StepsTaken, result.Collisions, elapsed, stepsPerSec)
		}
	}

	return w.Flush()
}
