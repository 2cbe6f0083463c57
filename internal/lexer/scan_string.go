package lexer

import (
	"gdtoolkit/internal/diag"
	"gdtoolkit/internal/token"
)

// scanString scans '...', "..." and their triple-quoted forms. Escapes are
// skipped, not validated. Only triple-quoted strings may span lines.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump()
	triple := lx.cursor.Peek() == quote && lx.cursor.PeekAt(1) == quote
	if triple {
		lx.cursor.Bump()
		lx.cursor.Bump()
	}

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == '\\':
			lx.cursor.Bump()
			lx.cursor.Bump()
			continue
		case b == quote && !triple:
			lx.cursor.Bump()
			return lx.make(token.String, lx.cursor.SpanFrom(start))
		case b == quote && lx.cursor.PeekAt(1) == quote && lx.cursor.PeekAt(2) == quote:
			lx.cursor.Bump()
			lx.cursor.Bump()
			lx.cursor.Bump()
			return lx.make(token.String, lx.cursor.SpanFrom(start))
		case b == '\n' && !triple:
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedString, sp, "newline in string literal")
			return lx.make(token.Invalid, sp)
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return lx.make(token.Invalid, sp)
}
