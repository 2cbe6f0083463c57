package indent

import "gdtoolkit/internal/token"

// windowSize covers the longest lambda header: func name ( ) : Newline.
const windowSize = 6

// window is a fixed ring of the most recent input tokens.
type window struct {
	buf  [windowSize]token.Token
	next int
	n    int
}

func (w *window) push(t token.Token) {
	w.buf[w.next] = t
	w.next = (w.next + 1) % windowSize
	if w.n < windowSize {
		w.n++
	}
}

// back returns the i-th most recent token; back(1) is the last one pushed.
func (w *window) back(i int) (token.Token, bool) {
	if i < 1 || i > w.n {
		return token.Token{}, false
	}
	return w.buf[(w.next-i+windowSize)%windowSize], true
}

func (w *window) backIs(i int, k token.Kind) bool {
	t, ok := w.back(i)
	return ok && t.Kind == k
}

// afterLambdaHeader reports whether the last token (a newline) directly
// follows `func ( ) :` or `func name ( ) :`.
func (w *window) afterLambdaHeader() bool {
	if !w.backIs(1, token.Newline) || !w.backIs(2, token.Colon) ||
		!w.backIs(3, token.RParen) || !w.backIs(4, token.LParen) {
		return false
	}
	return w.backIs(5, token.KwFunc) || (w.backIs(5, token.Name) && w.backIs(6, token.KwFunc))
}
