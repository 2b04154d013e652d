package cli

import (
	"errors"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/coalprint/internal/logging"
	"github.com/rshade/coalprint/internal/tui"
)

// ErrNotInteractive is returned when the form is launched without a terminal.
var ErrNotInteractive = errors.New(
	"the interactive calculator needs a terminal; use 'coalprint calc' for scripted runs")

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// detectMode picks how output is presented. Tests replace it.
var detectMode = func(noColor, nonInteractive bool) tui.OutputMode { //nolint:gochecknoglobals // Test seam.
	return tui.DetectOutputMode(false, noColor, nonInteractive)
}

// NewRootCmd creates the root Cobra command for the coalprint CLI.
// Run without a subcommand it launches the interactive calculator.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:     "coalprint",
		Short:   "Coal mining carbon footprint calculator",
		Long:    "coalprint: estimate the carbon footprint of a coal mining operation from seven activity inputs",
		Version: ver,
		Example: rootCmdExample,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
				tui.DisableColor()
			}
			result := setupLogging(cmd, cmd == cmd.Root())
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			if detectMode(noColor, false) != tui.OutputModeInteractive {
				return ErrNotInteractive
			}
			return runForm(cmd)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().Bool("no-color", false, "disable colors (NO_COLOR is honored too)")
	cmd.AddCommand(NewCalcCmd(), NewFactorsCmd(), newConfigCmd(), NewVersionCmd(ver))

	return cmd
}

const rootCmdExample = `  # Walk through the seven inputs interactively
  coalprint

  # Calculate without prompting
  coalprint calc --excavation 10 --transportation 20 --equipment 5 \
    --electricity 100 --heat 1000 --air 50 --other 2

  # Same calculation as JSON
  coalprint calc --excavation 10 --transportation 20 --equipment 5 \
    --electricity 100 --heat 1000 --air 50 --other 2 --output json

  # Boxed summary on a color terminal, plain table when piped
  coalprint calc --excavation 10 --transportation 20 --equipment 5 \
    --electricity 100 --heat 1000 --air 50 --other 2 --output auto

  # Show the emission factors
  coalprint factors

  # Write a default configuration file
  coalprint config init`
