package token

// Source is the Token Source adapter of §4.1: it wraps a RawLexer, folds
// runs of whitespace into the whitespace attributes of the following token,
// resolves raw identifiers against the keyword table, and splits a >> token
// into two > tokens so the annotator can treat nested template closers
// symmetrically.
type Source struct {
	lexer   RawLexer
	content []byte

	// stashed holds the second > produced by splitting >>, or nil when no
	// split is pending.
	stashed *Token
}

// NewSource wraps lexer in a Token Source adapter over content. content must
// be the exact buffer lexer is scanning; it is only used to resolve raw
// identifier spellings against the keyword table.
func NewSource(lexer RawLexer, content []byte) *Source {
	return &Source{lexer: lexer, content: content}
}

// Next returns the next resolved Token.
func (s *Source) Next() Token {
	if s.stashed != nil {
		tok := *s.stashed
		s.stashed = nil
		return tok
	}

	var newlines, wsLen int
	raw := s.lexer.Next()
	wsStart := raw.Offset

	for raw.Kind == KindUnknown {
		newlines += raw.Newlines
		wsLen += raw.Length
		raw = s.lexer.Next()
	}

	kind := raw.Kind
	if kind == KindRawIdentifier {
		if kw, ok := LookupKeyword(s.content[raw.Offset : raw.Offset+raw.Length]); ok {
			kind = kw
		} else {
			kind = KindIdentifier
		}
	}

	tok := Token{
		Kind:             kind,
		Offset:           raw.Offset,
		Length:           raw.Length,
		Column:           raw.Column,
		NewlinesBefore:   newlines,
		WhitespaceStart:  wsStart,
		WhitespaceLength: wsLen,
	}

	if raw.Kind == KindGreaterGreater {
		tok.Kind = KindGreater
		tok.Length = 1
		s.stashed = &Token{
			Kind:             KindGreater,
			Offset:           raw.Offset + 1,
			Length:           1,
			Column:           raw.Column + 1,
			WhitespaceStart:  raw.Offset + 1,
			WhitespaceLength: 0,
		}
	}

	return tok
}
