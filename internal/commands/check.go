package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/straydragon/sddcheck/internal/config"
	"github.com/straydragon/sddcheck/internal/report"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check template versions and skill metadata across locales",
	Long: "Compare every locale against the baseline locale (en if present, else the first\n" +
		"locale alphabetically) and report missing, extra and version-mismatched templates.\n" +
		"Exits 1 when any problem is found.",
	Args: cobra.NoArgs,
	RunE: runCheckCmd,
}

func init() {
	checkCmd.Flags().StringVar(&formatFlag, "format", "text", "Output format: text, json or yaml")
}

func runCheckCmd(cmd *cobra.Command, args []string) error {
	format, err := report.ParseFormat(formatFlag)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	return runCheck(out, cfg, format, useColor(out))
}

// runCheck checks the configured roots and writes the report to w. It returns
// ErrChecksFailed when diagnostics were found.
func runCheck(w io.Writer, cfg *config.Config, format report.Format, color bool) error {
	res, err := cfg.Checker().Run(cfg.PrimaryRoot, cfg.LegacyRoot)
	if err != nil {
		return err
	}
	if err := report.Write(w, res, format, color); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if !res.Passed() {
		return ErrChecksFailed
	}
	return nil
}
