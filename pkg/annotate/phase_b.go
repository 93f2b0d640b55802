package annotate

import "github.com/yaklabco/cformat/pkg/token"

// runPhaseB is the role-refinement pass of spec.md §4.2 Phase B: a second
// left-to-right walk that resolves the operator-role ambiguities Phase A
// left untouched ('*', '&', unary vs. binary '+'/'-', comment kind) and
// tracks whether an assignment operator has been seen yet on this line.
func (a *annotator) runPhaseB() {
	assignmentSeen := false

	for i, tok := range a.toks {
		switch tok.Kind {
		case token.KindStar, token.KindAmp:
			a.roles[i] = a.classifyStarAmp(i, assignmentSeen)
		case token.KindPlusPlus, token.KindMinusMinus, token.KindExclaim:
			a.roles[i] = RoleUnaryOperator
		case token.KindPlus, token.KindMinus:
			a.roles[i] = a.classifyPlusMinus(i)
		case token.KindEqualEqual, token.KindExclaimEqual, token.KindSlash,
			token.KindAmpAmp, token.KindPipe, token.KindPipePipe, token.KindPercent,
			token.KindEqual:
			a.roles[i] = RoleBinaryOperator
		case token.KindComment:
			a.roles[i] = classifyComment(tok, a.content)
		}

		switch tok.Kind {
		case token.KindEqual, token.KindPlusEqual, token.KindMinusEqual,
			token.KindStarEqual, token.KindSlashEqual:
			assignmentSeen = true
		}
	}
}

// classifyStarAmp resolves '*'/'&' at index i into UnaryOperator,
// BinaryOperator, or PointerOrReference per spec.md §4.2 Phase B.
func (a *annotator) classifyStarAmp(i int, assignmentSeen bool) Role {
	if i == 0 {
		return RoleUnaryOperator
	}
	prevTok := a.toks[i-1]
	prevRole := a.roles[i-1]
	if isOneOf(prevTok.Kind, token.KindLParen, token.KindComma) || prevRole == RoleBinaryOperator {
		return RoleUnaryOperator
	}

	neighbourLiteral := prevTok.IsLiteral()
	if !neighbourLiteral && i+1 < len(a.toks) {
		neighbourLiteral = a.toks[i+1].IsLiteral()
	}
	if neighbourLiteral {
		return RoleBinaryOperator
	}
	if assignmentSeen {
		return RoleBinaryOperator
	}
	return RolePointerOrReference
}

// classifyPlusMinus resolves '+'/'-' at index i per spec.md §4.2 Phase B.
func (a *annotator) classifyPlusMinus(i int) Role {
	if i == 0 {
		return RoleUnaryOperator
	}
	prevTok := a.toks[i-1]
	prevRole := a.roles[i-1]
	if isOneOf(prevTok.Kind, token.KindEqual, token.KindLParen, token.KindComma, token.KindLSquare) ||
		prevRole == RoleBinaryOperator {
		return RoleUnaryOperator
	}
	return RoleBinaryOperator
}

// classifyComment distinguishes line vs. block comments by inspecting the
// raw character data, per spec.md §4.2 Phase B.
func classifyComment(tok token.Token, content []byte) Role {
	text := tok.Text(content)
	if len(text) >= 2 && text[0] == '/' && text[1] == '/' {
		return RoleLineComment
	}
	return RoleBlockComment
}
