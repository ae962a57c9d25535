// Package cli implements the corotick command line.
package cli

import (
	"log/slog"

	"github.com/plus3/corotick/internal/config"
	"github.com/plus3/corotick/internal/logging"
	"github.com/spf13/cobra"
)

// app carries the state shared by all subcommands once the persistent
// flags are parsed.
type app struct {
	configPath string
	debug      bool
	logLevel   string
	logFormat  string

	cfg    config.Config
	logger *slog.Logger
}

// NewRootCmd creates the root cobra command for the corotick CLI.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "corotick",
		Short: "Frame-driven coroutine scheduler",
		Long:  "corotick drives suspend/resume coroutine tasks from a per-frame update loop.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("log-level") {
				cfg.Log.Level = a.logLevel
			}
			if flags.Changed("log-format") {
				cfg.Log.Format = a.logFormat
			}
			if a.debug {
				cfg.Log.Level = "debug"
			}

			a.cfg = cfg
			a.logger = logging.NewLoggerWithWriter(logging.ParseLevel(cfg.Log.Level), cfg.Log.Format, cmd.ErrOrStderr())
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to a corotick YAML config")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newDemoCmd(a),
		newStressCmd(a),
		newInspectCmd(a),
	)

	return root
}
