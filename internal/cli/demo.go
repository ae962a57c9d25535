package cli

import (
	"fmt"
	"time"

	"github.com/plus3/corotick/internal/demo"
	"github.com/spf13/cobra"
)

func newDemoCmd(a *app) *cobra.Command {
	var (
		ticks    int
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the demonstration routine for a fixed number of frames",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("ticks") {
				a.cfg.Demo.Ticks = ticks
			}
			if cmd.Flags().Changed("interval") {
				a.cfg.Demo.Interval = interval
			}
			if a.cfg.Demo.Ticks < 0 {
				return fmt.Errorf("ticks must not be negative, got %d", a.cfg.Demo.Ticks)
			}

			mono := demo.NewMono(cmd.OutOrStdout(), a.logger)
			a.logger.Info("running demo", "ticks", a.cfg.Demo.Ticks, "interval", a.cfg.Demo.Interval)

			ctx := cmd.Context()
			for i := 0; i < a.cfg.Demo.Ticks; i++ {
				mono.MainLoop()
				if a.cfg.Demo.Interval <= 0 {
					continue
				}
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(a.cfg.Demo.Interval):
				}
			}

			a.logger.Info("demo finished", "routine_done", mono.Done())
			return nil
		},
	}

	cmd.Flags().IntVar(&ticks, "ticks", 20, "Number of frames to run")
	cmd.Flags().DurationVar(&interval, "interval", 100*time.Millisecond, "Delay between frames")
	return cmd
}
