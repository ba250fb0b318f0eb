// Package cmd provides the root command and CLI setup for cobble.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"cobble.dev/pkg/cobble/internal/adapter"
	"cobble.dev/pkg/cobble/internal/controller"
	"cobble.dev/pkg/cobble/internal/domain"
	m "cobble.dev/pkg/cobble/internal/model"
)

var fileAdapter adapter.FileAdapter
var compileRunner adapter.CompileRunner
var reportStore adapter.ReportStore
var ui controller.UI

// toolchainFlag overrides the GnuCOBOL install root for this run.
var toolchainFlag string

// reportsFileFlag is where compile reports are recorded.
var reportsFileFlag string

var verboseFlag bool
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fileAdapter = adapter.NewLocalFileAdapter()
	compileRunner = adapter.NewLocalCompileRunner()
	reportStore = adapter.NewReportStore()
}

const rootLongDescription = `Cobble is a terminal IDE for GnuCOBOL. Run it with a source file to edit
with live keyword, string and comment highlighting, or use the headless
subcommands to compile and inspect COBOL sources from scripts.

The GnuCOBOL toolchain is located via --toolchain, the GNUBASE
environment variable, or the platform default install root.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cobble [file]",
		Short: "Terminal IDE for GnuCOBOL",
		Long:  rootLongDescription,
		Args:  cobra.MaximumNArgs(1),
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, verboseFlag || viper.GetBool(logVerboseKey))
		},
		RunE: func(_ *cobra.Command, args []string) error {
			return launchEditor(args)
		},
	}
}

func launchEditor(args []string) error {
	if !controller.IsTTY(os.Stdout) {
		return fmt.Errorf("the editor needs a terminal; use the compile or scan subcommands in scripts")
	}

	rules, err := newConfiguredRuleSet()
	if err != nil {
		return err
	}

	session := domain.NewSession(fileAdapter)
	if len(args) == 1 {
		if err := session.Open(m.Path(args[0])); err != nil {
			return err
		}
	}

	return controller.RunEditor(controller.EditorDeps{
		Session:     session,
		Engine:      domain.NewEngine(domain.NewClassifier(rules)),
		Compiler:    domain.NewCompiler(compileRunner),
		Reports:     reportStore,
		ReportsFile: m.Path(viper.GetString(reportsConfigKey)),
		Toolchain:   viper.GetString(toolchainConfigKey),
	})
}

// newConfiguredRuleSet builds the classification rules, extended with
// any user-configured keywords.
func newConfiguredRuleSet() (*domain.RuleSet, error) {
	rules, err := domain.NewRuleSet(viper.GetStringSlice(keywordsConfigKey)...)
	if err != nil {
		return nil, fmt.Errorf("invalid %s config: %w", keywordsConfigKey, err)
	}

	return rules, nil
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&toolchainFlag, toolchainFlagName, "t",
			viper.GetString(toolchainConfigKey),
			"GnuCOBOL install root (overrides GNUBASE and platform defaults)",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(toolchainFlagName), toolchainConfigKey)

	cmd.PersistentFlags().StringVar(&reportsFileFlag, reportsFlagName, viper.GetString(reportsConfigKey), "file where compile reports are recorded")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(reportsFlagName), reportsConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "log at debug level")
	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, "", "log file path (default "+defaultLogFilename+")")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
