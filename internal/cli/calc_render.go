package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rshade/coalprint/internal/config"
	"github.com/rshade/coalprint/internal/footprint"
	"github.com/rshade/coalprint/internal/tui"
)

// RenderCalcOutput routes a result to the renderer for the requested format.
// An empty format falls back to the configured default.
func RenderCalcOutput(ctx context.Context, cmd *cobra.Command, outputFormat string, res footprint.Result) error {
	format := config.GetOutputFormat(outputFormat)
	if !config.IsValidOutputFormat(format) {
		return fmt.Errorf("unsupported output format: %s", format)
	}
	if format == config.OutputAuto {
		noColor, _ := cmd.Flags().GetBool("no-color")
		format = autoFormat(detectMode(noColor, true))
	}

	report := footprint.NewReport(ctx, res)
	w := cmd.OutOrStdout()

	switch format {
	case config.OutputJSON:
		return footprint.RenderJSON(w, report)
	case config.OutputStyled:
		return renderStyledOutput(ctx, w, res)
	default:
		return footprint.RenderTable(w, report)
	}
}

// autoFormat maps a detected output mode to a headless format.
func autoFormat(mode tui.OutputMode) string {
	if mode == tui.OutputModePlain {
		return config.OutputTable
	}
	return config.OutputStyled
}

// renderStyledOutput renders the boxed Lip Gloss summary.
func renderStyledOutput(ctx context.Context, w io.Writer, res footprint.Result) error {
	_, err := fmt.Fprint(w, tui.RenderSummary(ctx, res, tui.TerminalWidth()))
	return err
}
