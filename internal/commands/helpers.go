package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/straydragon/sddcheck/internal/config"
	"github.com/straydragon/sddcheck/internal/terminal"
)

// loadConfig resolves the configuration from the persistent flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(repoRootFlag, configFlag)
	if err != nil {
		return nil, err
	}
	if noLegacyFlag {
		cfg.LegacyRoot = ""
	}
	return cfg, nil
}

// useColor reports whether styled output should be written to w.
func useColor(w io.Writer) bool {
	if noColorFlag {
		return false
	}
	f, ok := w.(*os.File)
	return ok && terminal.ColorEnabled(f)
}

func printer(cmd *cobra.Command) *terminal.Printer {
	return terminal.NewPrinter(cmd.OutOrStdout(), useColor(cmd.OutOrStdout()))
}
