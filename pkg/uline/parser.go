package uline

import "github.com/yaklabco/cformat/pkg/token"

// TokenSource is the pull interface the Parser consumes; *token.Source
// satisfies it.
type TokenSource interface {
	Next() token.Token
}

// Parser groups a token stream into Lines, tracking brace-nesting Level and
// a parenthesis/bracket depth so semicolons and braces inside argument lists
// or array subscripts don't split a line.
type Parser struct {
	src TokenSource
}

// New returns a Parser reading from src.
func New(src TokenSource) *Parser {
	return &Parser{src: src}
}

// Parse drains src and returns every Line it produced, in source order.
func (p *Parser) Parse() []Line {
	var lines []Line
	var cur []token.Token
	level := 0
	depth := 0
	structuralError := false

	flush := func(lineLevel int) {
		if len(cur) == 0 {
			return
		}
		lines = append(lines, Line{Tokens: cur, Level: lineLevel, StructuralError: structuralError})
		cur = nil
	}

	for {
		tok := p.src.Next()
		if tok.Kind == token.KindEOF {
			flush(level)
			return lines
		}

		switch tok.Kind {
		case token.KindLParen, token.KindLSquare:
			cur = append(cur, tok)
			depth++
			continue
		case token.KindRParen, token.KindRSquare:
			cur = append(cur, tok)
			if depth > 0 {
				depth--
			}
			continue
		}

		if depth > 0 {
			cur = append(cur, tok)
			continue
		}

		switch tok.Kind {
		case token.KindLBrace:
			cur = append(cur, tok)
			flush(level)
			level++
		case token.KindRBrace:
			flush(level)
			level--
			if level < 0 {
				level = 0
				structuralError = true
			}
			lines = append(lines, Line{Tokens: []token.Token{tok}, Level: level, StructuralError: structuralError})
		case token.KindSemi:
			cur = append(cur, tok)
			flush(level)
		default:
			cur = append(cur, tok)
		}
	}
}
