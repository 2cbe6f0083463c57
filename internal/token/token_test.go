package token

import (
	"testing"
)

func TestLookupKeyword(t *testing.T) {
	cases := map[string]Kind{
		"func":       KwFunc,
		"class_name": KwClassName,
		"onready":    KwOnready,
		"elif":       KwElif,
		"null":       KwNull,
	}
	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme)
		if !ok || got != want {
			t.Fatalf("LookupKeyword(%q) = %v, %v; want %v", lexeme, got, ok, want)
		}
	}

	for _, s := range []string{"self", "Func", "print", "yield", "match"} {
		if k, ok := LookupKeyword(s); ok {
			t.Errorf("LookupKeyword(%q) = %v, want not a keyword", s, k)
		}
	}
}

func TestKind_Groups(t *testing.T) {
	for _, k := range []Kind{LParen, LBracket, LBrace} {
		if !k.IsOpenGroup() || k.IsCloseGroup() {
			t.Errorf("%v should be an open group", k)
		}
	}
	for _, k := range []Kind{RParen, RBracket, RBrace} {
		if !k.IsCloseGroup() || k.IsOpenGroup() {
			t.Errorf("%v should be a close group", k)
		}
	}
	if Comma.IsOpenGroup() || Comma.IsCloseGroup() {
		t.Errorf("comma is not a group token")
	}
}

func TestKind_StringCoversAll(t *testing.T) {
	for k := Kind(0); k < kindCount; k++ {
		if k.String() == "" {
			t.Errorf("kind %d has no name", k)
		}
	}
	if !KwNull.IsKeyword() || Name.IsKeyword() {
		t.Errorf("IsKeyword range is wrong")
	}
}

func TestToken_Borrow(t *testing.T) {
	nl := Token{Kind: Newline, Text: "\n\t", Line: 3, Col: 9}
	ind := nl.Borrow(Indent, "")
	if ind.Kind != Indent || ind.Line != 3 || ind.Col != 9 || ind.Text != "" {
		t.Errorf("Borrow = %+v", ind)
	}
	if !ind.IsSynthetic() || nl.IsSynthetic() {
		t.Errorf("IsSynthetic misreports")
	}
}
