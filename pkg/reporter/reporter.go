// Package reporter formats a runner.Result for a CLI's chosen output format:
// per-file text status, unified diffs, JSON, or an aggregate summary.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/cformat/pkg/runner"
)

// Reporter formats and writes a run's results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of files that needed reformatting and any write errors.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	switch format {
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatDiff:
		return NewDiffReporter(opts), nil
	case FormatSummary:
		return NewSummaryReporter(opts), nil
	case FormatText:
		return NewTextReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
