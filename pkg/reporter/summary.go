package reporter

import (
	"context"
	"fmt"
	"io"

	"github.com/yaklabco/cformat/internal/ui/pretty"
	"github.com/yaklabco/cformat/pkg/runner"
)

// SummaryReporter formats results as an aggregate statistics block.
type SummaryReporter struct {
	opts   Options
	styles *pretty.Styles
	out    io.Writer
}

// NewSummaryReporter creates a new summary reporter.
func NewSummaryReporter(opts Options) *SummaryReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &SummaryReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		out:    opts.Writer,
	}
}

// Report implements Reporter.
func (r *SummaryReporter) Report(_ context.Context, result *runner.Result) (int, error) {
	if result == nil {
		fmt.Fprintln(r.out, r.styles.Success.Render("No files to format."))
		return 0, nil
	}

	fmt.Fprint(r.out, r.styles.FormatSummary(result.Stats))

	return result.Stats.FilesChanged, nil
}
