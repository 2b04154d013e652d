package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/coalprint/pkg/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(ver string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the coalprint version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "coalprint %s\n", version.Format(ver))
			return err
		},
	}
}
