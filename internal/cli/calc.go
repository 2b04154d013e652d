package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/coalprint/internal/footprint"
)

// NewCalcCmd creates the headless calculation command. It applies the same
// submit rule as the interactive form: every category is required and must
// be non-negative.
func NewCalcCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate the footprint from flag values",
		Long: `Calculate the carbon footprint without the interactive form.

Every category flag is required. A value that is not a number is counted as 0
and flagged in the output.`,
		Example: `  # Table output
  coalprint calc --excavation 10 --transportation 20 --equipment 5 \
    --electricity 100 --heat 1000 --air 50 --other 2

  # JSON output for scripts
  coalprint calc --excavation 10 --transportation 20 --equipment 5 \
    --electricity 100 --heat 1000 --air 50 --other 2 --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCalc(cmd, outputFormat)
		},
	}

	for _, c := range footprint.Categories() {
		info := c.Info()
		cmd.Flags().String(c.String(), "", fmt.Sprintf("%s (%s)", info.Tooltip, info.Unit))
	}
	cmd.Flags().StringVar(&outputFormat, "output", "",
		"output format: table, json, styled or auto (defaults from configuration)")

	return cmd
}

func runCalc(cmd *cobra.Command, outputFormat string) error {
	ctx := cmd.Context()

	values := make(footprint.Values, footprint.CategoryCount)
	for _, c := range footprint.Categories() {
		v, err := cmd.Flags().GetString(c.String())
		if err != nil {
			return fmt.Errorf("reading --%s: %w", c, err)
		}
		values[c] = v
	}

	res, err := footprint.Submit(ctx, values)
	if err != nil {
		var fieldErrs footprint.FieldErrors
		if errors.As(err, &fieldErrs) {
			printFieldErrors(cmd, fieldErrs)
			logger.Info().Ctx(ctx).Int("invalid_fields", len(fieldErrs)).Msg("calculation blocked")
			return &InputError{Fields: fieldErrs}
		}
		return fmt.Errorf("calculating footprint: %w", err)
	}

	logger.Info().Ctx(ctx).Float64("total_kg", res.TotalKg).Msg("footprint calculated")
	return RenderCalcOutput(ctx, cmd, outputFormat, res)
}

// InputErrorExitCode is the process exit code for rejected calculator input.
const InputErrorExitCode = 2

// InputError reports that calc was given values the form would not accept.
type InputError struct {
	Fields footprint.FieldErrors
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%d field(s) need attention: %s", len(e.Fields), joinCategories(e.Fields))
}

func (e *InputError) Unwrap() error { return e.Fields }

// printFieldErrors lists each failing field with the form's inline message.
func printFieldErrors(cmd *cobra.Command, errs footprint.FieldErrors) {
	w := cmd.ErrOrStderr()
	for _, c := range errs.Categories() {
		fmt.Fprintf(w, "  --%s: %s\n", c, footprint.FieldErrorMessage)
	}
}

func joinCategories(errs footprint.FieldErrors) string {
	cats := errs.Categories()
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.String()
	}
	return strings.Join(names, ", ")
}
