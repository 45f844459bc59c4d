package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"pebbledisk/internal/accrete"
	"pebbledisk/internal/config"
	"pebbledisk/internal/diag"
	"pebbledisk/internal/disk"
	"pebbledisk/internal/flux"
	"pebbledisk/internal/metrics"
	"pebbledisk/internal/storage"
	"pebbledisk/internal/viz"
)

var (
	dataDir    string
	logLevel   string
	inner      float64
	outer      float64
	annuli     int
	maxSigma   float64
	startTime  float64
	duration   float64
	dt         float64
	seed       int64
	configFile string
	preset     string
	snapEvery  int
	plotTime   float64
	tableName  string
	frameRate  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pebbledisk",
		Short: "pebble accretion disk simulator",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".pebbledisk", "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a disk simulation",
		RunE:  runSimulation,
	}
	addDiskFlags(runCmd)
	runCmd.Flags().IntVar(&snapEvery, "snapshots", 10, "save embryo snapshots every N steps (0 disables)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a run's flux or surface density profile",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().Float64Var(&plotTime, "time", 0, "time [yr] to plot (nearest step)")
	plotCmd.Flags().StringVar(&tableName, "table", "flux", "table to plot (flux or sigma)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "dump a run table to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVar(&tableName, "table", "flux", "table to export (flux or sigma)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "step a disk with live visualization",
		RunE:  runLive,
	}
	addDiskFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "steps per second")

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCSVCmd, presetsCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addDiskFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&inner, "inner", config.DefaultInnerAU, "inner disk edge [AU]")
	cmd.Flags().Float64Var(&outer, "outer", config.DefaultOuterAU, "outer disk edge [AU]")
	cmd.Flags().IntVar(&annuli, "annuli", config.DefaultAnnuli, "number of annuli")
	cmd.Flags().Float64Var(&maxSigma, "max-sigma", config.DefaultMaxSigma, "embryo spawn threshold [g/cm^2]")
	cmd.Flags().Float64Var(&startTime, "t0", config.DefaultStartTime, "start time [yr]")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "simulated duration [yr]")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep [yr]")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed for spawn placement")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig merges preset, config file and changed CLI flags, in
// that order of increasing precedence.
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

	if cmd.Flags().Changed("inner") {
		cfg.Disk.InnerAU = inner
	}
	if cmd.Flags().Changed("outer") {
		cfg.Disk.OuterAU = outer
	}
	if cmd.Flags().Changed("annuli") {
		cfg.Disk.Annuli = annuli
	}
	if cmd.Flags().Changed("max-sigma") {
		cfg.Disk.MaxSurfaceDensity = maxSigma
	}
	if cmd.Flags().Changed("t0") {
		cfg.Sim.StartTime = startTime
	}
	if cmd.Flags().Changed("time") {
		cfg.Sim.Duration = duration
	}
	if cmd.Flags().Changed("dt") {
		cfg.Sim.Dt = dt
	}
	if cmd.Flags().Changed("seed") || cfg.Sim.Seed == 0 {
		cfg.Sim.Seed = seed
	}

	return cfg, cfg.Validate()
}

func buildSim(cfg *config.Config, log diag.Logger) (*disk.Disk, *accrete.Stepper, error) {
	d, err := disk.New(cfg.Disk.InnerAU, cfg.Disk.OuterAU, cfg.Disk.Annuli, cfg.Disk.MaxSurfaceDensity)
	if err != nil {
		return nil, nil, err
	}
	params := accrete.Params{
		PebbleSizeCm:         cfg.Physics.PebbleSizeCm,
		PlanetesimalRadiusKm: cfg.Physics.PlanetesimalRadiusKm,
		AlphaTurbulence:      cfg.Physics.AlphaTurbulence,
		PlanetDensity:        cfg.Physics.PlanetDensity,
		PebbleDensity:        cfg.Physics.PebbleDensity,
	}
	rng := rand.New(rand.NewSource(cfg.Sim.Seed))
	return d, accrete.NewStepper(params, log, rng), nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	log := diag.New(logLevel)
	flux.SetLogger(log)

	d, stepper, err := buildSim(cfg, log)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID := storage.NewRunID()

	var snapshots *storage.SnapshotStore
	if snapEvery > 0 {
		runDir := st.RunDir(runID)
		if err := os.MkdirAll(runDir, 0755); err != nil {
			return err
		}
		snapshots, err = storage.OpenSnapshots(filepath.Join(runDir, "embryos.db"))
		if err != nil {
			return err
		}
		defer snapshots.Close()
	}

	obs := []accrete.Metric{
		metrics.NewTotalEmbryoMass(),
		metrics.NewAccretionEfficiency(),
		metrics.NewSpawnCount(),
	}

	steps := int(cfg.Sim.Duration / cfg.Sim.Dt)
	reports := make([]*accrete.StepReport, 0, steps)
	sigma := make([][]float64, 0, steps)

	fmt.Printf("running disk %g-%g AU, %d annuli, %d steps...\n",
		cfg.Disk.InnerAU, cfg.Disk.OuterAU, cfg.Disk.Annuli, steps)
	start := time.Now()

	t := cfg.Sim.StartTime
	for i := 0; i < steps; i++ {
		report, err := stepper.Advance(d, t, cfg.Sim.Dt)
		if err != nil {
			return err
		}
		t += cfg.Sim.Dt

		for _, m := range obs {
			m.Observe(d, report)
		}
		reports = append(reports, report)
		sigma = append(sigma, append([]float64(nil), d.SurfaceDensity...))

		if snapshots != nil && i%snapEvery == 0 {
			if err := snapshots.SaveFrame(i, t, d.Embryos); err != nil {
				return err
			}
		}
	}
	elapsed := time.Since(start)

	meta := storage.RunMetadata{
		ID:                runID,
		Timestamp:         time.Now(),
		Seed:              cfg.Sim.Seed,
		InnerAU:           cfg.Disk.InnerAU,
		OuterAU:           cfg.Disk.OuterAU,
		Annuli:            cfg.Disk.Annuli,
		MaxSurfaceDensity: cfg.Disk.MaxSurfaceDensity,
		StartTime:         cfg.Sim.StartTime,
		Duration:          cfg.Sim.Duration,
		Dt:                cfg.Sim.Dt,
		Steps:             steps,
		Metrics:           make(map[string]float64),
	}
	for _, m := range obs {
		meta.Metrics[m.Name()] = m.Value()
	}
	if err := st.Save(meta, d.Annuli[:d.NumAnnuli()], reports, sigma); err != nil {
		return err
	}

	fmt.Printf("completed %s steps in %v\n", humanize.Comma(int64(steps)), elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("embryos: %s\n", humanize.Comma(int64(len(d.Embryos))))
	fmt.Println("\nmetrics:")
	for name, val := range meta.Metrics {
		fmt.Printf("  %s: %.6g\n", name, val)
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tWHEN\tDISK\tANNULI\tSTEPS\tDT")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%.2g-%.3g AU\t%d\t%s\t%.0f yr\n",
			run.ID,
			humanize.Time(run.Timestamp),
			run.InnerAU,
			run.OuterAU,
			run.Annuli,
			humanize.Comma(int64(run.Steps)),
			run.Dt,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	tb, err := st.LoadTable(runID, tableName+".csv")
	if err != nil {
		return err
	}
	if len(tb.Values) == 0 {
		return fmt.Errorf("no data to plot")
	}

	target := plotTime
	if !cmd.Flags().Changed("time") {
		target = tb.Times[len(tb.Times)-1]
	}
	row := tb.NearestRow(target)

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("t = %.0f yr, %g-%g AU (log-spaced annuli)\n\n", tb.Times[row], tb.Annuli[0], meta.OuterAU)

	var caption string
	switch tableName {
	case "flux":
		caption = "inward pebble flux [M_E/yr] vs orbital distance"
	case "sigma":
		caption = "planetesimal surface density [g/cm^2] vs orbital distance"
	default:
		caption = tableName + " vs orbital distance"
	}
	fmt.Println(asciigraph.Plot(tb.Values[row],
		asciigraph.Height(10),
		asciigraph.Width(78),
		asciigraph.Caption(caption),
	))
	fmt.Println()

	if tableName == "flux" {
		// Per-annulus accretion: how much flux each ring removed.
		profile := tb.Values[row]
		accretion := make([]float64, len(profile))
		for i := 0; i < len(profile)-1; i++ {
			accretion[i] = profile[i+1] - profile[i]
		}
		fmt.Println(asciigraph.Plot(accretion,
			asciigraph.Height(10),
			asciigraph.Width(78),
			asciigraph.Caption("flux consumed per annulus [M_E/yr]"),
		))
		fmt.Println()
	}

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	f, err := os.Open(filepath.Join(st.RunDir(args[0]), tableName+".csv"))
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(os.Stdout, f)
	return err
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	log := diag.NewNoOp() // warnings would fight the TUI for the terminal
	flux.SetLogger(log)

	d, stepper, err := buildSim(cfg, log)
	if err != nil {
		return err
	}

	m := viz.NewModel(d, stepper, cfg.Sim.StartTime, cfg.Sim.Dt, frameRate)
	p := tea.NewProgram(m)
	_, err = p.Run()
	return err
}
