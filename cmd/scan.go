package cmd

import (
	"github.com/spf13/cobra"

	"cobble.dev/pkg/cobble/internal/domain"
)

// scanCmd represents the scan command.
var scanCmd = newScanCmd()

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <file>...",
		Short: "Classify COBOL sources and report span counts",
		Long: `Run the lexical classifier over COBOL source files and print how many
keyword, string literal and comment spans each one contains.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			rules, err := newConfiguredRuleSet()
			if err != nil {
				return err
			}

			scanner := domain.NewScanner(fileAdapter, rules)

			summaries, err := scanner.Scan(cobraCmd.Context(), parsePaths(args))
			if err != nil {
				return err
			}

			return ui.DisplayScan(summaries)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
