package commands

import (
	"errors"

	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "0.1.0"

// ErrChecksFailed is returned when a check run produced diagnostics. The
// report has already been written, so callers only need to set the exit code.
var ErrChecksFailed = errors.New("sdd template checks failed")

var rootCmd = &cobra.Command{
	Use:   "sddcheck",
	Short: "Check localized SDD templates for drift",
	Long: "sddcheck verifies that every locale under templates/sdd (and templates/sdd-legacy,\n" +
		"when present) offers the same templates with the same llman-template-version,\n" +
		"and that skill templates carry valid name and description metadata.",
	Version:       Version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runCheckCmd,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&repoRootFlag, "repo-root", ".", "Repository root the template roots are resolved against")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Config file (default: <repo-root>/.sddcheck.yaml if present)")
	rootCmd.PersistentFlags().BoolVar(&noLegacyFlag, "no-legacy", false, "Skip the legacy template root")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")
	rootCmd.Flags().StringVar(&formatFlag, "format", "text", "Output format: text, json or yaml")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(localesCmd)
	rootCmd.AddCommand(watchCmd)
}

var (
	repoRootFlag string
	configFlag   string
	noLegacyFlag bool
	noColorFlag  bool
	formatFlag   string
)
