package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/coalprint/internal/footprint"
)

// NewFactorsCmd creates the command that lists the compiled-in emission factors.
func NewFactorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "factors [category...]",
		Short: "List emission factors per category",
		Example: `  # All categories
  coalprint factors

  # Only heat and air
  coalprint factors heat air`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cats := make([]footprint.Category, 0, len(args))
			for _, arg := range args {
				c, err := footprint.ParseCategory(arg)
				if err != nil {
					return fmt.Errorf("factors: %w", err)
				}
				cats = append(cats, c)
			}
			return footprint.RenderFactors(cmd.OutOrStdout(), cats)
		},
	}
}
