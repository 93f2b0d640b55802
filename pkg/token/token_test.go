package token_test

import (
	"testing"

	"github.com/yaklabco/cformat/pkg/token"
)

func TestToken_Text(t *testing.T) {
	t.Parallel()

	content := []byte("int a = 1;")

	tests := []struct {
		name     string
		tok      token.Token
		expected string
	}{
		{name: "identifier", tok: token.Token{Offset: 4, Length: 1}, expected: "a"},
		{name: "keyword", tok: token.Token{Offset: 0, Length: 3}, expected: "int"},
		{name: "empty", tok: token.Token{Offset: 4, Length: 0}, expected: ""},
		{name: "out of range", tok: token.Token{Offset: 100, Length: 1}, expected: ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := string(tc.tok.Text(content))
			if got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestLookupKeyword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		spelling string
		want     token.Kind
		isKw     bool
	}{
		{"if", token.KindIf, true},
		{"template", token.KindTemplate, true},
		{"operator", token.KindOperator, true},
		{"public", token.KindPublic, true},
		{"foo", token.KindIdentifier, false},
		{"", token.KindIdentifier, false},
	}

	for _, tc := range tests {
		got, ok := token.LookupKeyword([]byte(tc.spelling))
		if got != tc.want || ok != tc.isKw {
			t.Errorf("LookupKeyword(%q) = (%v, %v), want (%v, %v)", tc.spelling, got, ok, tc.want, tc.isKw)
		}
	}
}

func TestKind_IsLiteral(t *testing.T) {
	t.Parallel()

	literalKinds := []token.Kind{token.KindNumericLiteral, token.KindStringLiteral, token.KindCharLiteral}
	for _, k := range literalKinds {
		if !k.IsLiteral() {
			t.Errorf("expected %v to be a literal kind", k)
		}
	}

	if token.KindIdentifier.IsLiteral() {
		t.Error("identifier should not be a literal kind")
	}
}
