package annotate

import "github.com/yaklabco/cformat/pkg/token"

// runPhaseA is the bracket/template/ternary pass of spec.md §4.2 Phase A: a
// recursive-descent walk that resolves '(' '[' nesting, speculatively
// disambiguates '<' as a template angle or a binary less-than, and finds
// each '?'s matching ':'.
func (a *annotator) runPhaseA() {
	i := 0
	for i < len(a.toks) {
		i = a.stepA(i)
	}
}

// stepA dispatches on the token at i and returns the index to resume from.
func (a *annotator) stepA(i int) int {
	tok := a.toks[i]
	switch tok.Kind {
	case token.KindLParen:
		return a.consumeUntil(i, token.KindRParen, a.markCtorInitializerColon)
	case token.KindLSquare:
		return a.consumeUntil(i, token.KindRSquare, nil)
	case token.KindLess:
		if closeIdx, ok := a.tryAngle(i); ok {
			return closeIdx + 1
		}
		a.roles[i] = RoleBinaryOperator
		return i + 1
	case token.KindGreater:
		a.roles[i] = RoleBinaryOperator
		return i + 1
	case token.KindOperator:
		if i+1 < len(a.toks) && a.toks[i+1].Kind != token.KindLParen {
			a.roles[i+1] = RoleOverloadedOperator
		}
		return i + 1
	case token.KindQuestion:
		return a.consumeTernary(i)
	default:
		return i + 1
	}
}

// consumeUntil walks from the token after open until it finds closeKind at
// the same nesting level, recursively dispatching stepA on everything in
// between so nested brackets, angles, and ternaries resolve correctly. It
// returns the index one past the close token (or len(a.toks) if unbalanced).
func (a *annotator) consumeUntil(open int, closeKind token.Kind, onClose func(closeIdx int)) int {
	i := open + 1
	for i < len(a.toks) {
		if a.toks[i].Kind == closeKind {
			if onClose != nil {
				onClose(i)
			}
			return i + 1
		}
		i = a.stepA(i)
	}
	return i
}

func (a *annotator) markCtorInitializerColon(closeIdx int) {
	if closeIdx+1 < len(a.toks) && a.toks[closeIdx+1].Kind == token.KindColon {
		a.roles[closeIdx+1] = RoleCtorInitializerColon
	}
}

// tryAngle speculatively parses the angle group opened by '<' at index open.
// On success it marks both open and the matching '>' TemplateOpener/Closer
// and returns the close index. On failure — a token is seen that makes an
// angle interpretation impossible — it marks any '<' it opened along the way
// as BinaryOperator and returns false, letting the caller reinterpret from
// where the speculation started.
func (a *annotator) tryAngle(open int) (closeIdx int, ok bool) {
	i := open + 1
	for i < len(a.toks) {
		switch a.toks[i].Kind {
		case token.KindRParen, token.KindRSquare,
			token.KindAmpAmp, token.KindPipePipe, token.KindQuestion, token.KindColon:
			return 0, false
		case token.KindGreater:
			a.roles[open] = RoleTemplateOpener
			a.roles[i] = RoleTemplateCloser
			return i, true
		case token.KindLess:
			if nestedClose, nestedOK := a.tryAngle(i); nestedOK {
				i = nestedClose + 1
				continue
			}
			a.roles[i] = RoleBinaryOperator
			i++
		case token.KindLParen:
			i = a.consumeUntil(i, token.KindRParen, a.markCtorInitializerColon)
		case token.KindLSquare:
			i = a.consumeUntil(i, token.KindRSquare, nil)
		default:
			i++
		}
	}
	return 0, false
}

// consumeTernary walks from the '?' at index q to its matching ':', marking
// that colon ConditionalExprColon. Nested brackets, angles, and ternaries
// inside the true-branch are resolved recursively along the way.
func (a *annotator) consumeTernary(q int) int {
	i := q + 1
	for i < len(a.toks) {
		switch a.toks[i].Kind {
		case token.KindColon:
			a.roles[i] = RoleConditionalExprColon
			return i + 1
		case token.KindLParen:
			i = a.consumeUntil(i, token.KindRParen, a.markCtorInitializerColon)
		case token.KindLSquare:
			i = a.consumeUntil(i, token.KindRSquare, nil)
		case token.KindLess:
			if closeIdx, ok := a.tryAngle(i); ok {
				i = closeIdx + 1
			} else {
				a.roles[i] = RoleBinaryOperator
				i++
			}
		case token.KindQuestion:
			i = a.consumeTernary(i)
		default:
			i++
		}
	}
	return i
}
