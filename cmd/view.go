package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cigroup.dev/pkg/cigroup/internal/domain"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View previously saved run and sweep reports",
		Long:  "View the last run and sweep reports saved in the reports directory.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.View(cmd.Context(), domain.ViewArgs{Reports: viper.GetString(outputFlagName)})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
