package commands

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/straydragon/sddcheck/internal/report"
	"github.com/straydragon/sddcheck/internal/watch"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run the checks whenever a template changes",
	Long:  "Run the checks once, then again after every change below the template roots. Stop with Ctrl-C.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		roots := cfg.Roots()
		if len(roots) == 0 {
			return fmt.Errorf("template root %s not found", cfg.PrimaryRoot)
		}

		w, err := watch.New(roots, watchDebounce)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		p := printer(cmd)
		check := func() {
			// Config is re-read so edits to .sddcheck.yaml apply on the next run.
			current, err := loadConfig()
			if err != nil {
				p.Error(err.Error())
				return
			}
			if err := runCheck(out, current, report.FormatText, useColor(out)); err != nil && !errors.Is(err, ErrChecksFailed) {
				p.Error(err.Error())
			}
		}
		w.OnChange = func() {
			p.Divider()
			check()
		}
		w.OnError = func(err error) {
			p.Warning(fmt.Sprintf("watch: %v", err))
		}

		check()
		p.Info(fmt.Sprintf("Watching %d template root(s). Press Ctrl-C to stop.", len(roots)))

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return w.Run(ctx)
	},
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watch.DefaultDebounce, "Quiet period before re-running the checks")
}
