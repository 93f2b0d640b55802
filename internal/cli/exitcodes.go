package cli

import (
	"errors"

	"github.com/yaklabco/cformat/pkg/runner"
)

// Exit codes for cformat.
const (
	// ExitSuccess indicates successful execution with no issues.
	ExitSuccess = exitSuccess

	// ExitWouldReformat indicates `check` found files that are not formatted.
	ExitWouldReformat = exitWouldReformat

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = exitInvalidUsage

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = exitConfigError

	// ExitInternalError indicates an internal error.
	ExitInternalError = exitInternalError

	// ExitIOError indicates file I/O errors.
	ExitIOError = exitIOError
)

const (
	exitSuccess       = 0
	exitWouldReformat = 1
	exitInvalidUsage  = 64
	exitConfigError   = 65
	exitInternalError = 70
	exitIOError       = 74
)

// errInvalidUsage marks an error as resulting from bad command-line usage,
// so Run can report ExitInvalidUsage instead of ExitInternalError.
var errInvalidUsage = errors.New("invalid usage")

// ExitCodeFromResult determines the exit code for a formatting run. checkOnly
// treats any would-change file as a failure; otherwise only per-file errors
// (I/O failures, race-detected modifications) affect the exit code.
func ExitCodeFromResult(result *runner.Result, checkOnly bool) int {
	if result == nil {
		return ExitSuccess
	}

	if result.Stats.FilesErrored > 0 {
		return ExitIOError
	}

	if checkOnly && result.Stats.FilesChanged > 0 {
		return ExitWouldReformat
	}

	return ExitSuccess
}
