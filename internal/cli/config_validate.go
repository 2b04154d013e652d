package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/coalprint/internal/config"
)

// NewConfigValidateCmd creates the config validate command.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the configuration file for syntax and allowed values.

A missing file is not an error: the built-in defaults apply.`,
		Example: `  # Validate current configuration
  coalprint config validate

  # Validate and show the effective values
  coalprint config validate --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	path, err := config.FilePath()
	if err != nil {
		return err
	}

	cfg := config.Default()
	if loadErr := cfg.LoadFile(path); loadErr != nil {
		if !errors.Is(loadErr, os.ErrNotExist) {
			return fmt.Errorf("configuration validation failed: %w", loadErr)
		}
		cmd.Printf("No configuration file at %s, using defaults\n", path)
	} else {
		cmd.Printf("Configuration is valid: %s\n", path)
	}

	if verbose {
		printVerboseDetails(cmd, cfg)
	}
	return nil
}

// printVerboseDetails prints the effective configuration values.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Output format: %s\n", cfg.Output.DefaultFormat)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	cmd.Printf("  Logging format: %s\n", cfg.Logging.Format)
	if cfg.Logging.File != "" {
		cmd.Printf("  Log file: %s\n", cfg.Logging.File)
	} else {
		cmd.Println("  Log file: none")
	}
}
