package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	m "cobble.dev/pkg/cobble/internal/model"
)

// reportsCmd represents the reports command.
var reportsCmd = newReportsCmd()

func newReportsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Show recorded compile reports",
		Long:  "Show the compile history recorded by previous compile runs, oldest first.",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			reportsFile := m.Path(viper.GetString(reportsConfigKey))

			reports, err := reportStore.Load(reportsFile)
			if err != nil {
				return err
			}

			return ui.DisplayReports(reports)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(reportsCmd)
}
