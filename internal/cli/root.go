// Package cli provides cformat's command dispatch: a switch on the first
// argument to a subcommand handler, each with its own flag.FlagSet, in the
// shape of the teacher's cmd/tui/main.go.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/yaklabco/cformat/internal/logging"
)

// ErrWouldReformat is returned by `cformat check` when one or more files are
// not already formatted to the resolved style.
var ErrWouldReformat = errors.New("files would be reformatted")

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// Run dispatches to the named subcommand and returns the process exit code.
func Run(ctx context.Context, args []string, info BuildInfo, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return exitInvalidUsage
	}

	command, rest := args[0], args[1:]

	var err error
	switch command {
	case "format":
		err = runFormat(ctx, rest, stdout, stderr, false)
	case "check":
		err = runFormat(ctx, rest, stdout, stderr, true)
	case "style":
		err = runStyle(ctx, rest, stdout)
	case "init":
		err = runInit(rest, logging.NewInteractive())
	case "version":
		runVersion(info, stdout)
		return exitSuccess
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return exitSuccess
	default:
		fmt.Fprintf(stderr, "unknown command: %s\n\n", command)
		fmt.Fprint(stderr, usage)
		return exitInvalidUsage
	}

	if err == nil {
		return exitSuccess
	}
	if errors.Is(err, ErrWouldReformat) {
		return exitWouldReformat
	}
	if errors.Is(err, errInvalidUsage) {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitInvalidUsage
	}

	logging.Default().Error("command failed", logging.FieldError, err)
	return exitInternalError
}
