package lexer

import (
	"gdtoolkit/internal/diag"
	"gdtoolkit/internal/token"
)

// scanNumber accepts decimal integers and floats (with exponent), hex (0x)
// and binary (0b) integers. Underscores are digit separators.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	if lx.cursor.Peek() == '0' {
		switch lx.cursor.PeekAt(1) {
		case 'x', 'X':
			lx.cursor.Bump()
			lx.cursor.Bump()
			return lx.finishRadix(start, isHex)
		case 'b', 'B':
			lx.cursor.Bump()
			lx.cursor.Bump()
			return lx.finishRadix(start, func(b byte) bool { return b == '0' || b == '1' })
		}
	}

	lx.digits(isDec)
	if lx.cursor.Peek() == '.' && isDec(lx.cursor.PeekAt(1)) {
		lx.cursor.Bump()
		lx.digits(isDec)
	} else if lx.cursor.Peek() == '.' && !isIdentStartByte(lx.cursor.PeekAt(1)) && lx.cursor.PeekAt(1) != '.' {
		// "1." is a float
		lx.cursor.Bump()
	}
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		mark := lx.cursor.Mark()
		lx.cursor.Bump()
		if s := lx.cursor.Peek(); s == '+' || s == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			lx.cursor.Reset(mark)
		} else {
			lx.digits(isDec)
		}
	}
	return lx.make(token.Number, lx.cursor.SpanFrom(start))
}

func (lx *Lexer) finishRadix(start Mark, ok func(byte) bool) token.Token {
	if !ok(lx.cursor.Peek()) {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexBadNumber, sp, "expected digits after radix prefix")
		return lx.make(token.Invalid, sp)
	}
	lx.digits(ok)
	return lx.make(token.Number, lx.cursor.SpanFrom(start))
}

func (lx *Lexer) digits(ok func(byte) bool) {
	for {
		b := lx.cursor.Peek()
		if !ok(b) && b != '_' {
			return
		}
		lx.cursor.Bump()
	}
}
