// Package layout implements the Layout Engine of spec.md §4.3: it places
// one annotated unwrapped line, choosing line breaks by a memoized,
// alpha-cutoff-pruned penalty search, and appends the resulting whitespace
// edits to an edit.Builder.
package layout

import (
	"github.com/yaklabco/cformat/pkg/annotate"
	"github.com/yaklabco/cformat/pkg/edit"
	"github.com/yaklabco/cformat/pkg/style"
	"github.com/yaklabco/cformat/pkg/token"
	"github.com/yaklabco/cformat/pkg/uline"
)

// penaltyIndentLevel is the per-depth-level cost of choosing to break, per
// spec.md §4.3.
const penaltyIndentLevel = 5

// Engine lays out a single unwrapped Line.
type Engine struct {
	toks []token.Token
	anns []annotate.Annotation
	line uline.Line
	st   *style.Style
	memo map[string]memoEntry
}

type memoEntry struct {
	result int
	stopAt int
	valid  bool // true if result is finite
}

// Format lays out line, whose tokens have already been Annotate-d into
// anns, and appends its whitespace edits to out. It is a no-op on an empty
// line (spec.md §7's "empty logical line: skipped").
func Format(line uline.Line, anns []annotate.Annotation, st *style.Style, out *edit.Builder) {
	if len(line.Tokens) == 0 {
		return
	}
	e := &Engine{
		toks: line.Tokens,
		anns: anns,
		line: line,
		st:   st,
		memo: make(map[string]memoEntry),
	}
	e.run(out)
}

func (e *Engine) run(out *edit.Builder) {
	s0 := e.placeFirstToken(out)

	if ok, _ := e.simulateNoBreak(s0, nil); ok {
		e.simulateNoBreak(s0, out)
		return
	}
	e.search(s0, out)
}

// placeFirstToken computes the leading indent for line's first token,
// emits its whitespace edit, initializes the search state, and advances
// past token 0 with moveToNext.
func (e *Engine) placeFirstToken(out *edit.Builder) state {
	tok0 := e.toks[0]
	indent := e.firstTokenIndent(tok0)

	newlines := tok0.NewlinesBefore
	if max := e.st.MaxEmptyLinesToKeep + 1; newlines > max {
		newlines = max
	}
	if newlines < 1 && tok0.Offset != 0 {
		newlines = 1
	}
	out.Replace(tok0.WhitespaceStart, tok0.WhitespaceLength, newlines, indent)

	s := state{
		Column:        indent,
		Consumed:      0,
		Indent:        []int{indent + 4},
		LastSpace:     []int{indent},
		FirstLessLess: []int{0},
	}
	return e.moveToNext(s, 0)
}

func (e *Engine) firstTokenIndent(tok0 token.Token) int {
	if e.line.StructuralError || tok0.WhitespaceLength == 0 {
		// tok0.Column is a 1-based spelling column; the indent this
		// function returns is a 0-based space count.
		if tok0.Column <= 0 {
			return 0
		}
		return tok0.Column - 1
	}
	indent := 2 * e.line.Level
	if isAccessModifier(tok0.Kind) {
		if adjusted := indent + e.st.AccessModifierOffset; adjusted >= 0 {
			indent = adjusted
		}
	}
	return indent
}

func isAccessModifier(k token.Kind) bool {
	return k == token.KindPublic || k == token.KindProtected || k == token.KindPrivate
}

// simulateNoBreak places every token from s onward with no breaks,
// optionally emitting real edits. It reports whether the whole line fits:
// no MustBreakBefore fires (a CtorInitializerColon is exempt — it is
// "splittable only if needed", not a hard requirement) and the column
// never exceeds ColumnLimit.
func (e *Engine) simulateNoBreak(s state, out *edit.Builder) (bool, state) {
	for s.Consumed < len(e.toks) {
		i := s.Consumed
		ann := e.anns[i]
		if ann.MustBreakBefore && ann.Role != annotate.RoleCtorInitializerColon {
			return false, s
		}
		s = e.place(s, false, i, out)
		if e.st.ColumnLimit > 0 && s.Column > e.st.ColumnLimit {
			return false, s
		}
	}
	return true, s
}

// search chooses a newline decision for each remaining token by comparing
// penalty(state, false) to penalty(state, true), committing the cheaper
// and breaking ties toward no break (spec.md §4.3's Search).
func (e *Engine) search(s state, out *edit.Builder) {
	for s.Consumed < len(e.toks) {
		noBreak := e.penalty(s, false, inf)
		withBreak := e.penalty(s, true, min(inf, noBreak))

		// Both branches hitting infinity, or only the no-break branch
		// doing so, signals input that cannot be laid out inside the
		// budget (spec.md §7). Prefer newline=true whenever the no-break
		// branch is infinite; otherwise ties favor no break.
		newline := noBreak >= inf || withBreak < noBreak
		s = e.place(s, newline, s.Consumed, out)
	}
}

// place commits (or, with out == nil, simulates) the decision to break or
// not break before token i, then advances with moveToNext.
func (e *Engine) place(s state, newline bool, i int, out *edit.Builder) state {
	s = s.clone()
	tok := e.toks[i]
	ann := e.anns[i]
	prevTok := e.toks[i-1]
	prevAnn := e.anns[i-1]
	depth := s.depth()

	if newline {
		col := s.Indent[depth]
		switch {
		case tok.Kind == token.KindStringLiteral && prevTok.Kind == token.KindStringLiteral:
			col = s.Column - prevTok.Length
		case tok.Kind == token.KindLessLess && s.FirstLessLess[depth] != 0:
			col = s.FirstLessLess[depth]
		case depth > 0 && (prevTok.Kind == token.KindEqual || tok.Kind == token.KindArrow || tok.Kind == token.KindDot):
			col = s.Indent[depth] + 4
		}
		s.Column = col
		s.LastSpace[depth] = s.Indent[depth]
		if tok.Kind == token.KindColon && ann.Role != annotate.RoleConditionalExprColon {
			s.Indent[depth] += 2
		}
		if out != nil {
			out.Replace(tok.WhitespaceStart, tok.WhitespaceLength, 1, s.Column)
		}
	} else {
		spaces := 0
		if ann.SpaceBefore {
			spaces = 1
		}
		if ann.Role == annotate.RoleLineComment {
			spaces = 2
		}
		if out != nil {
			out.Replace(tok.WhitespaceStart, tok.WhitespaceLength, 0, spaces)
		}
		if prevTok.Kind == token.KindLParen || prevAnn.Role == annotate.RoleTemplateOpener {
			s.Indent[depth] = s.Column
		}
		s.Column += spaces
		if spaces > 0 && depth > 0 {
			s.LastSpace[depth] = s.Column
		}
	}

	return e.moveToNext(s, i)
}

// moveToNext advances the column past token i's spelling and pushes/pops
// the nesting stacks for bracket-like tokens.
func (e *Engine) moveToNext(s state, i int) state {
	tok := e.toks[i]
	ann := e.anns[i]
	depth := s.depth()

	if tok.Kind == token.KindLessLess && s.FirstLessLess[depth] == 0 {
		s.FirstLessLess[depth] = s.Column
	}
	s.Column += tok.Length

	switch {
	case tok.Kind == token.KindLParen || tok.Kind == token.KindLSquare || ann.Role == annotate.RoleTemplateOpener:
		s.Indent = append(s.Indent, 4+s.LastSpace[depth])
		s.LastSpace = append(s.LastSpace, s.LastSpace[depth])
		s.FirstLessLess = append(s.FirstLessLess, 0)
	case tok.Kind == token.KindRParen || tok.Kind == token.KindRSquare || ann.Role == annotate.RoleTemplateCloser:
		if len(s.Indent) > 1 {
			s.Indent = s.Indent[:len(s.Indent)-1]
			s.LastSpace = s.LastSpace[:len(s.LastSpace)-1]
			s.FirstLessLess = s.FirstLessLess[:len(s.FirstLessLess)-1]
		}
	}

	s.Consumed++
	return s
}

// splitPenalty is the penalty for breaking after token i, per spec.md
// §4.3's splitPenalty(i) table.
func (e *Engine) splitPenalty(i int) int {
	left := e.toks[i]
	switch left.Kind {
	case token.KindSemi, token.KindComma:
		return 0
	case token.KindEqual, token.KindLParen, token.KindPipePipe, token.KindAmpAmp:
		return 2
	}
	if i+1 < len(e.toks) {
		switch e.toks[i+1].Kind {
		case token.KindArrow, token.KindDot:
			return 200
		}
	}
	return 3
}
