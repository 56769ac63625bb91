// Package cmd provides the root command and CLI setup for cigroup.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"cigroup.dev/pkg/cigroup/internal/adapter"
	"cigroup.dev/pkg/cigroup/internal/controller"
	"cigroup.dev/pkg/cigroup/internal/domain"
)

var reportStore adapter.ReportStore
var generator domain.Generator
var workflow domain.Workflow
var ui controller.UI

const rootLongDescription = `Cigroup groups build scripts that touch overlapping file paths so they can
share a CI job. Each script is described by the set of paths it touches;
scripts are merged greedily or by hierarchical clustering over the paths
every member of a group has in common.

Workloads are generated from a seed, so runs are reproducible and a sweep
can compare thresholds over the same inputs.`

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	reportStore = adapter.NewReportStore()
	generator = domain.NewGenerator()
	workflow = domain.NewWorkflow(reportStore, ui, generator)
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "cigroup",
		Short:        "Group build scripts by shared file paths",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := bindFlags(cmd.Root().PersistentFlags(), persistentFlagKeys); err != nil {
				return err
			}

			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(verboseFlagName))

			if viper.GetBool(tuiConfigKey) {
				useTUI(cmd.Root())
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

var persistentFlagKeys = map[string]string{
	outputFlagName:  outputFlagName,
	verboseFlagName: verboseFlagName,
	logFileFlagName: logFilenameKey,
	tuiFlagName:     tuiConfigKey,
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringP(outputFlagName, "o", defaultReportsDir, "directory for saved run and sweep reports (empty disables saving)")
	flags.BoolP(verboseFlagName, "v", false, "log at debug level")
	flags.String(logFileFlagName, defaultLogFilename, "log file path")
	flags.Bool(tuiFlagName, false, "always show results in the interactive pager")
}

// useTUI swaps the UI for the interactive pager.
func useTUI(cmd *cobra.Command) {
	ui = controller.NewTUI(cmd)
	workflow = domain.NewWorkflow(reportStore, ui, generator)
}

// bindFlags wires command flags to Viper keys so config/env values feed them.
// Binding happens when the command runs so commands sharing a flag name do
// not steal each other's bindings.
func bindFlags(flags *pflag.FlagSet, keys map[string]string) error {
	for name, key := range keys {
		flag := flags.Lookup(name)
		if flag == nil {
			return fmt.Errorf("flag for config key %q not found", key)
		}

		if err := viper.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// Interrupts cancel the running workflow between merge iterations.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}
