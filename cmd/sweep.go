package cmd

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cigroup.dev/pkg/cigroup/internal/domain"
)

const sweepLongDescription = `Run an algorithm over several thresholds and seeds and report how the
average group size and shared paths change with the threshold.

Every threshold is evaluated on the same generated workloads, one per seed.`

var sweepFlagKeys = map[string]string{
	algorithmFlagName: algorithmConfigKey,
	metricFlagName:    metricConfigKey,
	parallelFlagName:  sweepParallelKey,
	scriptsFlagName:   sweepScriptsKey,
	pathsFlagName:     pathsConfigKey,
	minPathsFlagName:  minPathsConfigKey,
	maxPathsFlagName:  maxPathsConfigKey,
}

// sweepCmd represents the sweep command.
var sweepCmd = newSweepCmd()

func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Compare grouping results across thresholds",
		Long:  sweepLongDescription,
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindFlags(cmd.Flags(), sweepFlagKeys)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			thresholds, err := cmd.Flags().GetFloat64Slice(thresholdsFlagName)
			if err != nil {
				return fmt.Errorf("read thresholds: %w", err)
			}

			seeds, err := sweepSeeds(cmd)
			if err != nil {
				return err
			}

			return workflow.Sweep(cmd.Context(), domain.SweepArgs{
				Algorithm:  viper.GetString(algorithmConfigKey),
				Metric:     viper.GetString(metricConfigKey),
				Thresholds: thresholds,
				Seeds:      seeds,
				Generate:   generateArgs(sweepScriptsKey),
				Threads:    viper.GetInt(sweepParallelKey),
				Reports:    viper.GetString(outputFlagName),
			})
		},
	}

	configureSweepFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(sweepCmd)
}

func configureSweepFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringP(algorithmFlagName, "a", defaultAlgorithm, "grouping algorithm: greedy or hierarchical")
	flags.StringP(metricFlagName, "m", defaultMetric, "hierarchical distance: hamming, complement-dot or jaccard")
	flags.Float64Slice(thresholdsFlagName, nil, "thresholds to evaluate (comma separated)")
	flags.Int64Slice(seedsFlagName, defaultSweepSeeds, "workload seeds averaged per threshold")
	flags.IntP(parallelFlagName, "p", defaultSweepThreads, "number of runs evaluated in parallel")
	configureGenerateFlags(cmd, defaultSweepScripts)
	cobra.CheckErr(cmd.MarkFlagRequired(thresholdsFlagName))
}

// sweepSeeds prefers the --seeds flag, then the sweep.seeds config value.
func sweepSeeds(cmd *cobra.Command) ([]int64, error) {
	if cmd.Flags().Changed(seedsFlagName) || !viper.IsSet(sweepSeedsKey) {
		seeds, err := cmd.Flags().GetInt64Slice(seedsFlagName)
		if err != nil {
			return nil, fmt.Errorf("read seeds: %w", err)
		}

		return seeds, nil
	}

	seeds, err := parseSeeds(viper.Get(sweepSeedsKey))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", sweepSeedsKey, err)
	}

	return seeds, nil
}

// parseSeeds accepts a comma or space separated string (env), a list (config
// file) or a single number.
func parseSeeds(raw any) ([]int64, error) {
	if s, ok := raw.(string); ok {
		fields := strings.FieldsFunc(s, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})

		seeds := make([]int64, 0, len(fields))

		for _, field := range fields {
			seed, err := strconv.ParseInt(field, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("seed %q: %w", field, err)
			}

			seeds = append(seeds, seed)
		}

		return seeds, nil
	}

	rv := reflect.ValueOf(raw)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		seed, err := cast.ToInt64E(raw)
		if err != nil {
			return nil, err
		}

		return []int64{seed}, nil
	}

	seeds := make([]int64, 0, rv.Len())

	for i := range rv.Len() {
		seed, err := cast.ToInt64E(rv.Index(i).Interface())
		if err != nil {
			return nil, fmt.Errorf("seed %d: %w", i, err)
		}

		seeds = append(seeds, seed)
	}

	return seeds, nil
}
