// Package main is the entry point for the cformat CLI.
package main

import (
	"context"
	"os"

	"github.com/yaklabco/cformat/internal/cli"
)

// Build-time variables set via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
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

	return cli.Run(context.Background(), os.Args[1:], info, os.Stdout, os.Stderr)
}
