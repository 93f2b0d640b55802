// Package annotate implements the Annotator of spec.md §4.2: given one
// unwrapped Line, it assigns each token a syntactic Role and the three
// whitespace booleans (SpaceBefore, CanBreakBefore, MustBreakBefore) the
// layout engine treats as ground truth. It never fails; speculative
// bracket/template disambiguation recovers by rewinding instead of erroring,
// matching spec.md §7's "the core does not raise."
package annotate

import (
	"github.com/yaklabco/cformat/pkg/style"
	"github.com/yaklabco/cformat/pkg/token"
	"github.com/yaklabco/cformat/pkg/uline"
)

// Role classifies a token's syntactic function beyond its lexical Kind, as
// assigned by Phase A/B of §4.2. RoleUnknown is the zero value: most tokens
// (identifiers, literals, keywords used plainly) keep it.
type Role int

const (
	RoleUnknown Role = iota
	RoleTemplateOpener
	RoleTemplateCloser
	RoleBinaryOperator
	RoleUnaryOperator
	RoleOverloadedOperator
	RolePointerOrReference
	RoleConditionalExprColon
	RoleCtorInitializerColon
	RoleLineComment
	RoleBlockComment
)

// Annotation is the per-token output of the Annotator: the assigned Role
// plus the three whitespace flags the layout engine consumes.
type Annotation struct {
	Role Role

	// SpaceBefore, CanBreakBefore, and MustBreakBefore are meaningless for
	// index 0 of a line — the layout engine's first-token placement handles
	// the leading token separately (spec.md §4.3).
	SpaceBefore     bool
	CanBreakBefore  bool
	MustBreakBefore bool
}

// Annotate runs all three phases over line and returns one Annotation per
// token in line.Tokens, in order. content is the source buffer the tokens
// were lexed from, needed by Phase B's comment-prefix inspection.
func Annotate(content []byte, line uline.Line, st *style.Style) []Annotation {
	toks := line.Tokens
	a := &annotator{
		toks:    toks,
		content: content,
		roles:   make([]Role, len(toks)),
	}
	a.runPhaseA()
	a.runPhaseB()

	anns := make([]Annotation, len(toks))
	for i := range toks {
		anns[i].Role = a.roles[i]
	}
	for i := 1; i < len(toks); i++ {
		left, right := toks[i-1], toks[i]
		leftRole := a.roles[i-1]

		anns[i].CanBreakBefore = canBreakBefore(left, right, leftRole)
		anns[i].SpaceBefore = spaceBefore(i, toks, a.roles, st)
		anns[i].MustBreakBefore = mustBreakBefore(left, right, leftRole)
		if anns[i].MustBreakBefore {
			anns[i].CanBreakBefore = true
		}
	}
	return anns
}

// annotator carries Phase A/B's mutable working state: the token slice being
// walked, the source buffer (for comment classification), and the role
// assigned to each token so far.
type annotator struct {
	toks    []token.Token
	content []byte
	roles   []Role
}

func isOneOf(k token.Kind, kinds ...token.Kind) bool {
	for _, want := range kinds {
		if k == want {
			return true
		}
	}
	return false
}
