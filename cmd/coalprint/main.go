// Command coalprint estimates the carbon footprint of a coal mining operation.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rshade/coalprint/internal/cli"
	"github.com/rshade/coalprint/pkg/version"
)

func run() error {
	root := cli.NewRootCmd(version.GetVersion())
	root.SilenceUsage = true
	root.SilenceErrors = true
	return root.ExecuteContext(context.Background())
}

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var inputErr *cli.InputError
	if errors.As(err, &inputErr) {
		return cli.InputErrorExitCode
	}
	return 1
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}
