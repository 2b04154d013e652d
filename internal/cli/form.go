package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/coalprint/internal/tui"
)

// runForm runs the interactive calculator. When the user reaches the summary
// it is printed again after the alternate screen closes so it stays in the
// scrollback.
func runForm(cmd *cobra.Command) error {
	ctx := cmd.Context()

	p := tea.NewProgram(
		tui.NewCalculatorModel(ctx),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("failed to run interactive TUI: %w", err)
	}

	model, ok := final.(*tui.CalculatorModel)
	if !ok {
		return nil
	}
	res, done := model.Result()
	if !done {
		logger.Debug().Ctx(ctx).Msg("form closed before calculating")
		return nil
	}
	return renderStyledOutput(ctx, cmd.OutOrStdout(), res)
}
