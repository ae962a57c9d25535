package cli

import (
	"fmt"
	"time"

	"github.com/plus3/corotick/internal/stress"
	"github.com/spf13/cobra"
)

func newStressCmd(a *app) *cobra.Command {
	var (
		routines       int
		duration       time.Duration
		cancelRate     float64
		gcPauseMetrics bool
	)

	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Tick a large random routine population and report timings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("routines") {
				a.cfg.Stress.Routines = routines
			}
			if cmd.Flags().Changed("duration") {
				a.cfg.Stress.Duration = duration
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			report := stress.Run(cmd.Context(), stress.Options{
				Duration:       a.cfg.Stress.Duration,
				Routines:       a.cfg.Stress.Routines,
				MaxFrames:      a.cfg.Stress.MaxFrames,
				CancelRate:     cancelRate,
				Seed:           a.cfg.Stress.Seed,
				GCPauseMetrics: gcPauseMetrics,
			}, a.logger)

			if err := report.Generate(cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("generate report: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&routines, "routines", 10000, "Number of routines kept alive")
	cmd.Flags().DurationVar(&duration, "duration", 10*time.Second, "Total run time")
	cmd.Flags().Float64Var(&cancelRate, "cancel-rate", 0.1, "Chance per tick of cancelling a random task")
	cmd.Flags().BoolVar(&gcPauseMetrics, "gc-pause-metrics", false, "Include GC pause metrics in the report")
	return cmd
}
