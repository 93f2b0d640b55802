package annotate

import (
	"github.com/yaklabco/cformat/pkg/style"
	"github.com/yaklabco/cformat/pkg/token"
)

// canBreakBefore implements spec.md §4.2 Phase C's CanBreakBefore(i) rule.
func canBreakBefore(left, right token.Token, leftRole Role) bool {
	if right.Kind == token.KindRParen || right.Kind == token.KindLBrace ||
		right.Kind == token.KindComment || right.Kind == token.KindGreater {
		return false
	}
	if leftRole == RoleBinaryOperator || right.Kind == token.KindLessLess ||
		right.Kind == token.KindArrow || right.Kind == token.KindDot {
		return true
	}
	if right.Kind == token.KindColon {
		return true
	}
	if isOneOf(left.Kind, token.KindComma, token.KindSemi, token.KindEqual,
		token.KindAmpAmp, token.KindPipePipe, token.KindLBrace) {
		return true
	}
	if left.Kind == token.KindLParen && right.Kind != token.KindRParen {
		return true
	}
	return false
}

// spaceBefore implements spec.md §4.2 Phase C's SpaceBefore(i) ordered rule
// list, falling through to pairwiseSpace for anything the ordered rules
// don't settle.
func spaceBefore(i int, toks []token.Token, roles []Role, st *style.Style) bool {
	left, right := toks[i-1], toks[i]
	leftRole, rightRole := roles[i-1], roles[i]

	if rightRole == RoleCtorInitializerColon {
		return true
	}
	if leftRole == RoleUnaryOperator {
		return false
	}
	if rightRole == RoleUnaryOperator {
		return !isOneOf(left.Kind, token.KindLParen, token.KindLSquare)
	}
	if right.Kind == token.KindColon {
		startsWithCase := toks[0].Kind == token.KindCase
		if startsWithCase || i == len(toks)-1 {
			return false
		}
		return true
	}
	if left.Kind == token.KindGreater && right.Kind == token.KindGreater {
		if leftRole == RoleTemplateCloser && rightRole == RoleTemplateCloser {
			return st.SplitTemplateClosingGreater
		}
		return false
	}
	if leftRole == RoleBinaryOperator || rightRole == RoleBinaryOperator {
		return true
	}
	if leftRole == RoleTemplateCloser && right.Kind == token.KindLParen {
		return false
	}
	if right.Kind == token.KindLess && toks[0].Kind == token.KindHash {
		return true
	}
	return pairwiseSpace(left, right, st)
}

// pairwiseSpace is the fallback pairwise table of spec.md §4.2 Phase C,
// evaluated in order with the first match winning and default true.
func pairwiseSpace(left, right token.Token, st *style.Style) bool {
	if isOneOf(right.Kind, token.KindRParen, token.KindSemi, token.KindComma) {
		return false
	}
	if left.Kind == token.KindTemplate && right.Kind == token.KindLess {
		return true
	}
	if left.Kind == token.KindArrow || right.Kind == token.KindArrow {
		return false
	}
	if isOneOf(left.Kind, token.KindExclaim, token.KindTilde) {
		return false
	}
	if left.Kind == token.KindLess || right.Kind == token.KindGreater || right.Kind == token.KindLess {
		return false
	}
	if isOneOf(right.Kind, token.KindAmp, token.KindStar) {
		if left.IsLiteral() {
			return true
		}
		if !isOneOf(left.Kind, token.KindStar, token.KindAmp) {
			return !st.PointerAndReferenceBindToType
		}
	}
	if isOneOf(left.Kind, token.KindAmp, token.KindStar) {
		if right.IsLiteral() {
			return true
		}
		return st.PointerAndReferenceBindToType
	}
	if right.Kind == token.KindStar && left.Kind == token.KindLParen {
		return false
	}
	if isOneOf(left.Kind, token.KindLSquare) || isOneOf(right.Kind, token.KindLSquare, token.KindRSquare) {
		return false
	}
	if left.Kind == token.KindColonColon {
		return false
	}
	if right.Kind == token.KindColonColon && isOneOf(left.Kind, token.KindIdentifier, token.KindGreater) {
		return false
	}
	if left.Kind == token.KindDot || right.Kind == token.KindDot {
		return false
	}
	if left.Kind == token.KindColon || right.Kind == token.KindColon {
		return true
	}
	if left.Kind == token.KindIdentifier && isOneOf(right.Kind, token.KindPlusPlus, token.KindMinusMinus) {
		return false
	}
	if right.Kind == token.KindIdentifier && isOneOf(left.Kind, token.KindPlusPlus, token.KindMinusMinus) {
		return false
	}
	if left.Kind == token.KindLParen {
		return false
	}
	if left.Kind == token.KindHash {
		return false
	}
	if right.Kind == token.KindLParen && left.Kind == token.KindIdentifier {
		return false
	}
	return true
}

// mustBreakBefore implements spec.md §4.2 Phase C's MustBreakBefore(i) rule.
func mustBreakBefore(left, right token.Token, leftRole Role) bool {
	if leftRole == RoleLineComment {
		return true
	}
	if left.Kind == token.KindStringLiteral && right.Kind == token.KindStringLiteral {
		return true
	}
	return false
}
