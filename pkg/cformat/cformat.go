// Package cformat is the Driver of spec.md §4.4: it ties the Token Source,
// the unwrapped-line parser, the annotator, and the layout engine together
// over a whole file, producing the whitespace edits that reformat it.
package cformat

import (
	"context"
	"fmt"

	"github.com/yaklabco/cformat/internal/logging"
	"github.com/yaklabco/cformat/pkg/annotate"
	"github.com/yaklabco/cformat/pkg/edit"
	"github.com/yaklabco/cformat/pkg/lexer"
	"github.com/yaklabco/cformat/pkg/layout"
	"github.com/yaklabco/cformat/pkg/style"
	"github.com/yaklabco/cformat/pkg/token"
	"github.com/yaklabco/cformat/pkg/uline"
)

// Range is a half-open byte range, used to restrict formatting to a subset
// of a file's lines (e.g. the lines touched by a diff). A nil/empty Range
// slice in a Result request means "format the whole file."
type Range struct {
	Start, End int
}

// overlaps reports whether r and [start, end) share any byte.
func (r Range) overlaps(start, end int) bool {
	return r.Start < end && start < r.End
}

// Result is the outcome of formatting one file.
type Result struct {
	// Edits is every whitespace edit the layout engine produced, validated
	// and sorted by byte offset (then length) by edit.Prepare.
	Edits []edit.Edit

	// Formatted is content with Edits applied.
	Formatted []byte

	// Changed is true if Formatted differs from the original content.
	Changed bool
}

// Formatter runs the annotator and layout engine over a file's unwrapped
// lines. A Formatter is not safe for concurrent use — pkg/runner gives each
// worker goroutine its own Formatter (and therefore its own per-line memo
// tables), consistent with spec.md §5's single-threaded-per-call model.
type Formatter struct {
	Style *style.Style
}

// New returns a Formatter using st. A nil st is replaced with style.LLVM().
func New(st *style.Style) *Formatter {
	if st == nil {
		st = style.LLVM()
	}
	return &Formatter{Style: st}
}

// FormatFile reformats content, restricting changes to lines overlapping
// ranges (nil or empty ranges means the whole file). fileID is stamped onto
// every edit, so pkg/runner can aggregate edits from many files without
// losing track of which file each belongs to.
func (f *Formatter) FormatFile(ctx context.Context, fileID string, content []byte, ranges []Range) (*Result, error) {
	logger := logging.FromContext(ctx)

	ts := token.NewSource(lexer.New(content), content)
	lines := uline.New(ts).Parse()

	builder := edit.NewBuilder(fileID)
	for _, line := range lines {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("format %s: %w", fileID, ctx.Err())
		default:
		}

		if len(ranges) > 0 && !lineInRanges(line, ranges) {
			continue
		}

		anns := annotate.Annotate(content, line, f.Style)
		layout.Format(line, anns, f.Style, builder)
	}

	edits, err := edit.Prepare(builder.Edits(), len(content))
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", fileID, err)
	}

	formatted := edit.Apply(content, edits)
	changed := string(formatted) != string(content)

	logger.Debug("formatted file",
		logging.FieldPath, fileID,
		logging.FieldEdits, len(edits),
		logging.FieldFilesChanged, changed,
	)

	return &Result{Edits: edits, Formatted: formatted, Changed: changed}, nil
}

// lineInRanges reports whether line's span overlaps any of ranges.
func lineInRanges(line uline.Line, ranges []Range) bool {
	start, end := line.Span()
	for _, r := range ranges {
		if r.overlaps(start, end) {
			return true
		}
	}
	return false
}
