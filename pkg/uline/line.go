// Package uline implements the unwrapped-line parser named as an external
// collaborator in spec.md §1/§6. It groups a Token Source's stream into
// Line values — a non-empty token sequence plus a brace-nesting Level —
// the unit the annotator and layout engine each operate on one at a time.
//
// This is a pragmatic brace/semicolon/paren-depth grouping, not a full
// C-family grammar: spec.md treats the unwrapped-line parser as out of
// scope for the formatter core, so the bar here is "produces a plausible
// Line stream to drive the core," not full language coverage.
package uline

import "github.com/yaklabco/cformat/pkg/token"

// Line is an unwrapped line: a non-empty ordered token sequence plus the
// nesting level it sits at (0 at top scope, ≥1 inside blocks).
type Line struct {
	Tokens []token.Token
	Level  int

	// StructuralError signals that brace nesting in this Line (or the
	// Lines around it) could not be resolved cleanly. When set, the layout
	// engine's first-token placement preserves the token's original source
	// column instead of recomputing an indent (spec.md §7).
	StructuralError bool
}

// Span returns the byte range covered by Line's first and last tokens, used
// by the driver's source-range filter (spec.md §4.4).
func (l Line) Span() (start, end int) {
	if len(l.Tokens) == 0 {
		return 0, 0
	}
	first := l.Tokens[0]
	last := l.Tokens[len(l.Tokens)-1]
	return first.Offset, last.End()
}
