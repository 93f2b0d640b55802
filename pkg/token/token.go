// Package token defines the token vocabulary shared by the lexer, the Token
// Source adapter, the annotator, and the layout engine.
package token

//go:generate stringer -type=Kind -trimprefix=Kind

// Kind classifies a token. It is a single tagged enumeration covering
// punctuators, operators, keywords consulted by name, identifiers, literals,
// comments, raw-identifier, and EOF — no token-metadata object graph.
type Kind uint16

const (
	// KindUnknown is the raw lexer's label for a run of whitespace. The Token
	// Source adapter folds runs of this kind into the whitespace attributes
	// of the following token; it never reaches the annotator.
	KindUnknown Kind = iota
	KindEOF

	KindRawIdentifier // unresolved identifier, before keyword-table lookup
	KindIdentifier

	KindNumericLiteral
	KindStringLiteral
	KindCharLiteral

	// KindComment covers both line and block comments. The raw lexer does not
	// distinguish them; the annotator's Phase B inspects the character data
	// to assign the LineComment/BlockComment role.
	KindComment

	// Keywords consulted by name in the annotator or the unwrapped-line parser.
	KindIf
	KindElse
	KindFor
	KindWhile
	KindDo
	KindSwitch
	KindCase
	KindDefault
	KindReturn
	KindStruct
	KindUnion
	KindEnum
	KindClass
	KindNamespace
	KindTemplate
	KindTypename
	KindOperator
	KindPublic
	KindProtected
	KindPrivate
	KindConst
	KindStatic
	KindVirtual
	KindOverride
	KindNew
	KindDelete
	KindNullptr
	KindTrue
	KindFalse
	KindSizeof

	// Punctuators and operators.
	KindLParen       // (
	KindRParen       // )
	KindLSquare      // [
	KindRSquare      // ]
	KindLBrace       // {
	KindRBrace       // }
	KindLess         // <
	KindGreater      // >
	KindGreaterGreater // >> — only ever produced by the raw lexer; the Token
	// Source adapter always splits it into two KindGreater tokens.
	KindComma      // ,
	KindSemi       // ;
	KindColon      // :
	KindColonColon // ::
	KindQuestion   // ?
	KindDot        // .
	KindArrow      // ->
	KindHash       // #
	KindExclaim    // !
	KindTilde      // ~
	KindAmp        // &
	KindAmpAmp     // &&
	KindPipe       // |
	KindPipePipe   // ||
	KindStar       // *
	KindPlus       // +
	KindMinus      // -
	KindSlash      // /
	KindPercent    // %
	KindEqual      // =
	KindPlusEqual  // +=
	KindMinusEqual // -=
	KindStarEqual  // *=
	KindSlashEqual // /=
	KindEqualEqual // ==
	KindExclaimEqual // !=
	KindPlusPlus     // ++
	KindMinusMinus   // --
	KindLessLess     // <<

	// KindOther covers punctuators and operators the annotator's rule tables
	// never name by kind (<=, >=, ^, compound bitwise assignments, ...). They
	// still occupy a token slot and get the annotator's default role and
	// whitespace flags.
	KindOther
)

// IsLiteral returns true for numeric, string, and character literals.
func (k Kind) IsLiteral() bool {
	switch k {
	case KindNumericLiteral, KindStringLiteral, KindCharLiteral:
		return true
	default:
		return false
	}
}

// keywords maps spellings to their keyword Kind. Populated once; looked up by
// the Token Source adapter when it sees a KindRawIdentifier.
var keywords = map[string]Kind{
	"if":        KindIf,
	"else":      KindElse,
	"for":       KindFor,
	"while":     KindWhile,
	"do":        KindDo,
	"switch":    KindSwitch,
	"case":      KindCase,
	"default":   KindDefault,
	"return":    KindReturn,
	"struct":    KindStruct,
	"union":     KindUnion,
	"enum":      KindEnum,
	"class":     KindClass,
	"namespace": KindNamespace,
	"template":  KindTemplate,
	"typename":  KindTypename,
	"operator":  KindOperator,
	"public":    KindPublic,
	"protected": KindProtected,
	"private":   KindPrivate,
	"const":     KindConst,
	"static":    KindStatic,
	"virtual":   KindVirtual,
	"override":  KindOverride,
	"new":       KindNew,
	"delete":    KindDelete,
	"nullptr":   KindNullptr,
	"true":      KindTrue,
	"false":     KindFalse,
	"sizeof":    KindSizeof,
}

// LookupKeyword resolves an identifier spelling against the keyword table.
// Returns the keyword Kind and true, or KindIdentifier and false.
func LookupKeyword(spelling []byte) (Kind, bool) {
	k, ok := keywords[string(spelling)]
	if !ok {
		return KindIdentifier, false
	}
	return k, true
}

// RawToken is what a RawLexer hands to the Token Source adapter: no
// whitespace accounting beyond a newline count on KindUnknown runs, and no
// keyword resolution yet.
type RawToken struct {
	Kind Kind

	// Offset is the byte offset of the token's first byte.
	Offset int

	// Length is the token's byte length.
	Length int

	// Column is the 1-based spelling column of Offset, used only as the
	// structural-error fallback for first-token indent.
	Column int

	// Newlines counts newline characters within this token; only meaningful
	// when Kind == KindUnknown.
	Newlines int
}

// RawLexer produces a stream of RawToken in KeepWhitespace mode: runs of
// whitespace are returned as KindUnknown tokens rather than silently
// skipped, and the stream is terminated by a KindEOF token.
type RawLexer interface {
	Next() RawToken
}

// Token is what the Token Source adapter hands to the annotator: a resolved
// Kind (keywords retagged, >> split) plus the three whitespace attributes
// collapsed from preceding KindUnknown runs.
type Token struct {
	Kind Kind

	// Offset is the byte offset of the token's first byte.
	Offset int

	// Length is the token's byte length.
	Length int

	// Column is the 1-based spelling column of Offset.
	Column int

	// NewlinesBefore is the number of newlines in the whitespace gap
	// preceding this token (comments are tokens of their own, not part of
	// the gap).
	NewlinesBefore int

	// WhitespaceStart is the byte offset where the preceding whitespace gap
	// begins (the replacement range for the whitespace edit before this
	// token starts here).
	WhitespaceStart int

	// WhitespaceLength is the byte length of the preceding whitespace gap.
	WhitespaceLength int
}

// End returns the byte offset one past the token's last byte.
func (t Token) End() int {
	return t.Offset + t.Length
}

// Text returns the token's source text from content.
func (t Token) Text(content []byte) []byte {
	if t.Offset < 0 || t.End() > len(content) || t.Offset > t.End() {
		return nil
	}
	return content[t.Offset:t.End()]
}

// IsLiteral returns true for numeric, string, and character literal tokens.
func (t Token) IsLiteral() bool {
	return t.Kind.IsLiteral()
}
