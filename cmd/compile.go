package cmd

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cobble.dev/pkg/cobble/internal/domain"
	m "cobble.dev/pkg/cobble/internal/model"
)

var compileOutputFlag string

// compileCmd represents the compile command.
var compileCmd = newCompileCmd()

func newCompileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile <file>",
		Short: "Compile a COBOL source file",
		Long: `Compile a COBOL source file to an executable with cobc, without opening
the editor. The outcome is recorded in the reports file.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			source := m.Path(args[0])

			output := compileOutputFlag
			if output == "" {
				output = defaultExecutablePath(source)
			}

			session := domain.NewSession(fileAdapter)
			if err := session.Open(source); err != nil {
				return err
			}

			compiler := domain.NewCompiler(compileRunner)
			result := compiler.Compile(cobraCmd.Context(), session, domain.CompileOptions{
				OutputPath:    m.Path(output),
				ToolchainRoot: viper.GetString(toolchainConfigKey),
			})

			recordReport(source, m.Path(output), result)
			ui.DisplayCompileResult(source, result)

			if !result.Ok() {
				return fmt.Errorf("compile %s: %s", source, result.Status)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&compileOutputFlag, outputFlagName, "o", "", "output executable path (default: source without extension)")

	return cmd
}

func init() {
	rootCmd.AddCommand(compileCmd)
}

// recordReport appends the outcome to the reports file. Config errors
// never produced an invocation, so they are not recorded.
func recordReport(source, output m.Path, result m.CompileResult) {
	if result.Status == m.CompileConfigError {
		return
	}

	reportsFile := m.Path(viper.GetString(reportsConfigKey))
	if reportsFile == "" {
		return
	}

	err := reportStore.Append(reportsFile, m.CompileReport{
		Timestamp:   time.Now(),
		Source:      source,
		Output:      output,
		Status:      result.Status,
		Diagnostics: result.Diagnostics,
	})
	if err != nil {
		// Recording is best effort; the compile outcome still stands.
		fmt.Fprintf(rootCmd.ErrOrStderr(), "warning: could not record report: %v\n", err)
	}
}

func defaultExecutablePath(source m.Path) string {
	base := strings.TrimSuffix(string(source), filepath.Ext(string(source)))
	if runtime.GOOS == "windows" {
		base += ".exe"
	}

	return base
}
