package main

import (
	"os"

	"github.com/quadkit/ctrlkit/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		// Commands report their own errors through the output
		// formatter; only the exit code is left to propagate.
		os.Exit(cli.GetExitCode(err))
	}
}
