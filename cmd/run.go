package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cigroup.dev/pkg/cigroup/internal/domain"
)

const runLongDescription = `Generate a workload of build scripts and group them.

The greedy algorithm merges each group with its best-scoring partner when
the number of shared paths reaches --threshold. The hierarchical algorithm
repeatedly merges the two closest clusters under --metric while their
distance stays below --threshold.`

var runFlagKeys = map[string]string{
	algorithmFlagName: algorithmConfigKey,
	thresholdFlagName: thresholdConfigKey,
	metricFlagName:    metricConfigKey,
	workersFlagName:   workersConfigKey,
	scriptsFlagName:   scriptsConfigKey,
	pathsFlagName:     pathsConfigKey,
	minPathsFlagName:  minPathsConfigKey,
	maxPathsFlagName:  maxPathsConfigKey,
	seedFlagName:      seedConfigKey,
}

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Group a generated workload of build scripts",
		Long:  runLongDescription,
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindFlags(cmd.Flags(), runFlagKeys)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Run(cmd.Context(), domain.RunArgs{
				Algorithm: viper.GetString(algorithmConfigKey),
				Metric:    viper.GetString(metricConfigKey),
				Threshold: viper.GetFloat64(thresholdConfigKey),
				Generate:  runGenerateArgs(),
				Workers:   viper.GetInt(workersConfigKey),
				Reports:   viper.GetString(outputFlagName),
			})
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringP(algorithmFlagName, "a", defaultAlgorithm, "grouping algorithm: greedy or hierarchical")
	flags.Float64P(thresholdFlagName, "t", defaultThreshold, "minimum shared paths (greedy) or maximum distance (hierarchical)")
	flags.StringP(metricFlagName, "m", defaultMetric, "hierarchical distance: hamming, complement-dot or jaccard")
	flags.IntP(workersFlagName, "w", defaultWorkers, "goroutines for the initial hierarchical distances (0 = unlimited)")
	flags.Int64(seedFlagName, defaultSeed, "workload seed (negative picks one at random)")
	configureGenerateFlags(cmd, defaultScripts)
}

func configureGenerateFlags(cmd *cobra.Command, scripts int) {
	flags := cmd.Flags()
	flags.Int(scriptsFlagName, scripts, "number of build scripts to generate")
	flags.Int(pathsFlagName, defaultPaths, "size of the path pool scripts draw from")
	flags.Int(minPathsFlagName, defaultMinPaths, "minimum paths per script")
	flags.Int(maxPathsFlagName, defaultMaxPaths, "maximum paths per script")
}

func generateArgs(scriptsKey string) domain.GenerateArgs {
	return domain.GenerateArgs{
		Scripts:  viper.GetInt(scriptsKey),
		Paths:    viper.GetInt(pathsConfigKey),
		MinPaths: viper.GetInt(minPathsConfigKey),
		MaxPaths: viper.GetInt(maxPathsConfigKey),
	}
}

func runGenerateArgs() domain.GenerateArgs {
	args := generateArgs(scriptsConfigKey)
	args.Seed = viper.GetInt64(seedConfigKey)

	return args
}
