package token

import (
	"gdtoolkit/internal/source"
)

// Token is a single lexical token. Tokens are values and never mutated after
// the lexer produces them.
type Token struct {
	Kind Kind
	Text string
	Line int // 1-based
	Col  int // 1-based
	Span source.Span
}

// Borrow returns a synthetic token of kind k positioned at t.
// The triggering token keeps its own identity.
func (t Token) Borrow(k Kind, text string) Token {
	return Token{Kind: k, Text: text, Line: t.Line, Col: t.Col, Span: t.Span.At()}
}

// IsSynthetic reports whether the token is a block marker.
func (t Token) IsSynthetic() bool {
	return t.Kind == Indent || t.Kind == Dedent
}

// IsLiteral reports whether the token is a number, string, boolean or null literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case Number, String, KwTrue, KwFalse, KwNull:
		return true
	default:
		return false
	}
}
