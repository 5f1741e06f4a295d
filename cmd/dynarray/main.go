package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/pavanmanishd/dynarray"
	"github.com/pavanmanishd/dynarray/internal/script"
	"github.com/pavanmanishd/dynarray/internal/workload"
)

var (
	demoCapacity int
	plotCapacity int
	noColor      bool
	verbose      bool
	savePath     string
	ops          int
	pattern      string
	seed         int64
	height       int
	width        int
)

var (
	okColor   = color.New(color.FgGreen)
	failColor = color.New(color.FgRed, color.Bold)
	dimColor  = color.New(color.Faint)
	growColor = color.New(color.FgYellow)
)

// errStepsFailed is returned when a script completes with failing steps.
var errStepsFailed = errors.New("steps failed")

func main() {
	rootCmd := &cobra.Command{
		Use:           "dynarray",
		Short:         "exercise a resizable array",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			color.NoColor = color.NoColor || noColor
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
			slog.SetDefault(slog.New(handler))
		},
	}
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable coloured output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every step")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "replay the insert/remove walkthrough",
		Args:  cobra.NoArgs,
		RunE:  runDemo,
	}
	demoCmd.Flags().IntVar(&demoCapacity, "capacity", dynarray.DefaultCapacity, "initial capacity")
	demoCmd.Flags().StringVar(&savePath, "save", "", "write the walkthrough as a script (yaml) instead of running it")

	runCmd := &cobra.Command{
		Use:   "run [script.yaml]",
		Short: "replay an operation script",
		Args:  cobra.ExactArgs(1),
		RunE:  runScript,
	}

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot capacity over a synthetic workload",
		Args:  cobra.NoArgs,
		RunE:  plotWorkload,
	}
	plotCmd.Flags().IntVar(&ops, "ops", 200, "number of operations")
	plotCmd.Flags().IntVar(&plotCapacity, "capacity", 0, "initial capacity")
	plotCmd.Flags().StringVar(&pattern, "pattern", string(workload.Grow), "workload: grow, shrink, oscillate or churn")
	plotCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed (churn)")
	plotCmd.Flags().IntVar(&height, "height", 10, "graph height")
	plotCmd.Flags().IntVar(&width, "width", 80, "graph width")

	opsCmd := &cobra.Command{
		Use:   "ops",
		Short: "list script operations",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, op := range script.Ops() {
				fmt.Println(op)
			}
		},
	}

	rootCmd.AddCommand(demoCmd, runCmd, plotCmd, opsCmd)

	if err := rootCmd.Execute(); err != nil {
		failColor.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func runDemo(cmd *cobra.Command, args []string) error {
	s := script.Demo(demoCapacity)
	if savePath != "" {
		if err := script.Save(savePath, s); err != nil {
			return err
		}
		slog.Info("Wrote demo script", "path", savePath, "steps", len(s.Steps))
		return nil
	}
	return replay(s)
}

func runScript(cmd *cobra.Command, args []string) error {
	s, err := script.Load(args[0])
	if err != nil {
		return err
	}
	slog.Debug("Loaded script", "path", args[0], "steps", len(s.Steps))
	return replay(s)
}

func replay(s *script.Script) error {
	a, results, err := script.Run(s, printResult)
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.Failed() {
			failed++
		}
	}
	m := a.Metrics()
	fmt.Println()
	fmt.Printf("%d steps, %d failed\n", len(results), failed)
	fmt.Printf("len %d, capacity %d, %d grows, %d shrinks, utilization %.1f%%\n",
		m.Len, m.Cap, m.Grows, m.Shrinks, m.Utilization*100)
	if failed > 0 {
		return fmt.Errorf("%d %w", failed, errStepsFailed)
	}
	return nil
}

func printResult(r script.Result) {
	slog.Debug("Step", "step", r.Step, "op", r.Op, "len", r.Len, "cap", r.Cap, "resized", r.Resized)

	status := okColor.Sprint("ok  ")
	if r.Failed() {
		status = failColor.Sprint("FAIL")
	}
	fmt.Printf("%s %3d %-15s", status, r.Step, r.Op)
	switch {
	case r.Err != nil:
		failColor.Printf(" %v\n", r.Err)
		return
	case r.HasValue:
		fmt.Printf(" -> %d", r.Value)
	case r.Op == script.OpContains || r.Op == script.OpRemoveElement:
		fmt.Printf(" -> %v", r.Found)
	}
	if r.Resized {
		growColor.Printf(" (resized to %d)", r.Cap)
	}
	fmt.Println()
	dimColor.Printf("         %s\n", r.State)
}

func plotWorkload(cmd *cobra.Command, args []string) error {
	p := workload.Pattern(pattern)
	a, samples, err := workload.Run(p, ops, plotCapacity, seed)
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		slog.Info("Nothing to plot", "ops", ops)
		return nil
	}
	slog.Debug("Workload finished", "pattern", p, "ops", ops, "seed", seed)

	opts := []asciigraph.Option{
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("%s: capacity (upper) and len (lower) over %d ops", p, ops)),
	}
	if !color.NoColor {
		opts = append(opts, asciigraph.SeriesColors(asciigraph.Yellow, asciigraph.Green))
	}
	graph := asciigraph.PlotMany(
		[][]float64{workload.Capacities(samples), workload.Lengths(samples)},
		opts...,
	)
	fmt.Println(graph)
	fmt.Println()

	m := a.Metrics()
	fmt.Printf("final len %d, capacity %d\n", m.Len, m.Cap)
	fmt.Printf("resizes: %d grows, %d shrinks\n", m.Grows, m.Shrinks)
	return nil
}
