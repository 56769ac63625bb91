// Package domain implements build script grouping: workload generation, the
// clustering algorithms, evaluation and the workflows driving them.
package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"cigroup.dev/pkg/cigroup/internal/adapter"
	"cigroup.dev/pkg/cigroup/internal/controller"
	m "cigroup.dev/pkg/cigroup/internal/model"
)

var (
	// ErrNoThresholds is returned when a sweep has no thresholds to try.
	ErrNoThresholds = errors.New("at least one threshold is required")
	// ErrNoSeeds is returned when a sweep has no seeds to average over.
	ErrNoSeeds = errors.New("at least one seed is required")
	// ErrInvalidThreshold is returned for a NaN threshold, which no score
	// can be compared against.
	ErrInvalidThreshold = errors.New("threshold must be a number")
	// ErrNoReports is returned by View when the reports directory holds nothing.
	ErrNoReports = errors.New("no reports found")
)

// RunArgs contains the arguments for a single clustering run.
type RunArgs struct {
	Algorithm string
	Metric    string
	Threshold float64
	// Generate.Seed below zero picks a time-derived seed, recorded in the report.
	Generate GenerateArgs
	Workers  int
	Reports  string
}

// SweepArgs contains the arguments for a threshold sweep.
type SweepArgs struct {
	Algorithm  string
	Metric     string
	Thresholds []float64
	Seeds      []int64
	Generate   GenerateArgs
	Threads    int
	Reports    string
}

// ViewArgs contains the arguments for viewing saved reports.
type ViewArgs struct {
	Reports string
}

// Workflow defines the user-facing operations of the tool.
type Workflow interface {
	Run(ctx context.Context, args RunArgs) error
	Sweep(ctx context.Context, args SweepArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.ReportStore
	controller.UI
	Generator
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	reportStore adapter.ReportStore,
	ui controller.UI,
	generator Generator,
) Workflow {
	return &workflow{
		ReportStore: reportStore,
		UI:          ui,
		Generator:   generator,
	}
}

// Run generates a workload, clusters it, shows the evaluation and saves it.
func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	if math.IsNaN(args.Threshold) {
		return ErrInvalidThreshold
	}

	algorithm, err := ResolveAlgorithm(args.Algorithm, AlgorithmOptions{Metric: args.Metric, Workers: args.Workers})
	if err != nil {
		return err
	}

	gen := args.Generate
	if gen.Seed < 0 {
		gen.Seed = randomSeed()
		slog.Info("using random seed", "seed", gen.Seed)
	}

	eval, universeSize, err := w.cluster(ctx, algorithm, gen, args.Threshold)
	if err != nil {
		slog.Error("Failed to cluster workload", "algorithm", args.Algorithm, "error", err)
		return fmt.Errorf("cluster: %w", err)
	}

	slog.Info("clustering finished",
		"algorithm", args.Algorithm, "threshold", args.Threshold,
		"scripts", eval.TotalItems, "groups", eval.TotalGroups)

	report := m.RunReport{
		Algorithm:    args.Algorithm,
		Metric:       metricLabel(args.Algorithm, args.Metric),
		Threshold:    args.Threshold,
		Generate:     gen.Settings(),
		UniverseSize: universeSize,
		Evaluation:   eval,
	}

	if err := w.DisplayRun(ctx, report); err != nil {
		slog.Error("Failed to display run", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	if args.Reports == "" {
		return nil
	}

	if err := w.SaveRun(args.Reports, report); err != nil {
		return fmt.Errorf("save report: %w", err)
	}

	return nil
}

// Sweep runs the pipeline for every seed and threshold and averages the
// metrics over seeds for each threshold.
func (w *workflow) Sweep(ctx context.Context, args SweepArgs) error {
	if len(args.Thresholds) == 0 {
		return ErrNoThresholds
	}

	if len(args.Seeds) == 0 {
		return ErrNoSeeds
	}

	if slices.ContainsFunc(args.Thresholds, math.IsNaN) {
		return ErrInvalidThreshold
	}

	algorithm, err := ResolveAlgorithm(args.Algorithm, AlgorithmOptions{Metric: args.Metric, Workers: 1})
	if err != nil {
		return err
	}

	thresholds := slices.Clone(args.Thresholds)
	slices.Sort(thresholds)
	thresholds = slices.Compact(thresholds)

	results := make([][]m.Evaluation, len(thresholds))
	for i := range results {
		results[i] = make([]m.Evaluation, len(args.Seeds))
	}

	group, groupCtx := errgroup.WithContext(ctx)
	if args.Threads > 0 {
		group.SetLimit(args.Threads)
	}

	for ti, threshold := range thresholds {
		for si, seed := range args.Seeds {
			gen := args.Generate
			gen.Seed = seed

			group.Go(func() error {
				eval, _, err := w.cluster(groupCtx, algorithm, gen, threshold)
				if err != nil {
					return fmt.Errorf("threshold %g seed %d: %w", threshold, seed, err)
				}

				results[ti][si] = eval

				return nil
			})
		}
	}

	if err := group.Wait(); err != nil {
		slog.Error("Failed to run sweep", "error", err)
		return fmt.Errorf("sweep: %w", err)
	}

	report := m.SweepReport{
		Algorithm: args.Algorithm,
		Metric:    metricLabel(args.Algorithm, args.Metric),
		Seeds:     slices.Clone(args.Seeds),
		Generate:  args.Generate.Settings(),
		Points:    make([]m.SweepPoint, 0, len(thresholds)),
	}
	report.Generate.Seed = 0

	for ti, threshold := range thresholds {
		report.Points = append(report.Points, averagePoint(threshold, results[ti]))
	}

	slog.Info("sweep finished", "algorithm", args.Algorithm, "points", len(report.Points), "seeds", len(args.Seeds))

	if err := w.DisplaySweep(ctx, report); err != nil {
		slog.Error("Failed to display sweep", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	if args.Reports == "" {
		return nil
	}

	if err := w.SaveSweep(args.Reports, report); err != nil {
		return fmt.Errorf("save report: %w", err)
	}

	return nil
}

// View displays the saved run and sweep reports, whichever exist.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	shown := 0

	run, err := w.LoadRun(args.Reports)

	switch {
	case err == nil:
		if err := w.DisplayRun(ctx, run); err != nil {
			return fmt.Errorf("display: %w", err)
		}

		shown++
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("load run report: %w", err)
	}

	sweep, err := w.LoadSweep(args.Reports)

	switch {
	case err == nil:
		if err := w.DisplaySweep(ctx, sweep); err != nil {
			return fmt.Errorf("display: %w", err)
		}

		shown++
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("load sweep report: %w", err)
	}

	if shown == 0 {
		return fmt.Errorf("%w in %s", ErrNoReports, args.Reports)
	}

	return nil
}

// cluster runs one generate → group → merge → evaluate pipeline.
func (w *workflow) cluster(ctx context.Context, algorithm Algorithm, gen GenerateArgs, threshold float64) (m.Evaluation, int, error) {
	workload, err := w.Generate(gen)
	if err != nil {
		return m.Evaluation{}, 0, fmt.Errorf("generate: %w", err)
	}

	groups, err := m.Singletons(workload.Universe, workload.Items)
	if err != nil {
		return m.Evaluation{}, 0, err
	}

	merged, err := algorithm(ctx, groups, threshold)
	if err != nil {
		return m.Evaluation{}, 0, err
	}

	return Evaluate(merged), workload.Universe.Len(), nil
}

func averagePoint(threshold float64, evals []m.Evaluation) m.SweepPoint {
	point := m.SweepPoint{Threshold: threshold, Runs: len(evals)}
	if len(evals) == 0 {
		return point
	}

	for _, e := range evals {
		point.AvgGroups += float64(e.TotalGroups)
		point.AvgMembers += e.AvgMembers
		point.AvgCommonPaths += e.AvgCommonPaths
		point.AvgSimilarity += e.AvgSimilarity
	}

	n := float64(len(evals))
	point.AvgGroups /= n
	point.AvgMembers /= n
	point.AvgCommonPaths /= n
	point.AvgSimilarity /= n

	return point
}

// metricLabel names the metric in reports; only hierarchical clustering uses one.
func metricLabel(algorithm, metric string) string {
	if algorithm != AlgorithmHierarchical {
		return ""
	}

	if metric == "" {
		return DefaultMetric
	}

	return metric
}

func randomSeed() int64 {
	return time.Now().UnixNano() & math.MaxInt64
}
