// Package main is the entry point for the layoutdiff CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/aleister1102/layoutdiff/internal/cli"
)

// Build-time variables set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, cli.ErrDifferencesFound) {
		fmt.Fprintf(os.Stderr, "layoutdiff: %v\n", err)
	}
	return cli.ExitCodeFromError(err)
}
