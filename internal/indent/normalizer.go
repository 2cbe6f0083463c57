package indent

import (
	"fmt"
	"strings"

	"gdtoolkit/internal/diag"
	"gdtoolkit/internal/source"
	"gdtoolkit/internal/token"
)

// TabWidth is the indentation width of one tab character.
const TabWidth = 4

// Source is the tokenizer side of the pipeline.
type Source interface {
	Next() token.Token
}

type Options struct {
	// Reporter receives structural errors as diagnostics in addition to the
	// error returned from Next. May be nil.
	Reporter diag.Reporter
}

// Normalizer inserts block markers into a token stream. Each input token
// yields zero or more output tokens, always in input order, before the next
// input token is read.
type Normalizer struct {
	src  Source
	opts Options

	stack   []int       // open indentation levels, stack[0] == 0
	depth   int         // group nesting
	lambdas map[int]int // group depth -> lambda levels still open there
	recent  window

	out  []token.Token
	head int
	err  error
	eof  *token.Token
}

// New returns a Normalizer reading from src.
func New(src Source, opts Options) *Normalizer {
	return &Normalizer{
		src:     src,
		opts:    opts,
		stack:   []int{0},
		lambdas: make(map[int]int),
	}
}

// Next returns the next normalized token. After a structural error every
// call returns that error; after EOF every call returns EOF.
func (n *Normalizer) Next() (token.Token, error) {
	for n.head >= len(n.out) {
		if n.err != nil {
			return token.Token{}, n.err
		}
		if n.eof != nil {
			return *n.eof, nil
		}
		n.out = n.out[:0]
		n.head = 0
		n.step(n.src.Next())
	}
	tok := n.out[n.head]
	n.head++
	return tok, nil
}

// Normalize runs a fresh Normalizer over tokens and collects the output,
// which always ends with EOF. On error the tokens produced so far are
// returned with it.
func Normalize(tokens []token.Token) ([]token.Token, error) {
	n := New(&sliceSource{toks: tokens}, Options{})
	out := make([]token.Token, 0, len(tokens)+8)
	for {
		tok, err := n.Next()
		if err != nil {
			return out, err
		}
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out, nil
		}
	}
}

// Width measures the indentation carried by a newline token: spaces and
// tabs after its last line break.
func Width(newlineText string) int {
	if i := strings.LastIndexByte(newlineText, '\n'); i >= 0 {
		newlineText = newlineText[i+1:]
	}
	return strings.Count(newlineText, " ") + strings.Count(newlineText, "\t")*TabWidth
}

func (n *Normalizer) step(tok token.Token) {
	n.recent.push(tok)
	switch {
	case tok.Kind == token.Newline:
		n.handleNewline(tok)
	case tok.Kind.IsOpenGroup():
		n.depth++
		n.emit(tok)
	case tok.Kind.IsCloseGroup():
		for n.lambdas[n.depth] > 0 {
			n.closeLambda(tok)
		}
		if n.depth > 0 {
			delete(n.lambdas, n.depth)
			n.depth--
		}
		n.emit(tok)
	case tok.Kind == token.Comma:
		if n.lambdas[n.depth] > 0 {
			n.closeLambda(tok)
		}
		n.emit(tok)
	case tok.Kind == token.EOF:
		n.finish(tok)
	default:
		n.emit(tok)
	}
}

func (n *Normalizer) handleNewline(tok token.Token) {
	indent := Width(tok.Text)
	n.emit(tok)

	if n.depth > 0 {
		switch {
		case n.recent.afterLambdaHeader() && indent > n.top():
			n.stack = append(n.stack, indent)
			n.lambdas[n.depth]++
			n.emit(tok.Borrow(token.Indent, ""))
		case n.lambdas[n.depth] > 0 && indent <= n.top():
			for n.lambdas[n.depth] > 0 && indent < n.top() {
				n.pop()
				n.lambdas[n.depth]--
				n.emit(tok.Borrow(token.Dedent, ""))
			}
			// Once the lambda levels are exhausted the remaining levels
			// belong to the enclosing statement, where indentation inside
			// the group does not matter.
			if indent > n.top() {
				n.fail(tok, indent)
			}
		}
		return
	}

	if indent > n.top() {
		n.stack = append(n.stack, indent)
		n.emit(tok.Borrow(token.Indent, ""))
		return
	}
	for indent < n.top() {
		n.pop()
		n.emit(tok.Borrow(token.Dedent, ""))
		n.emit(tok)
	}
	if indent != n.top() {
		n.fail(tok, indent)
	}
}

// closeLambda closes one lambda level at the current depth from a comma or
// close token, which is not a newline: emit a filler newline first.
func (n *Normalizer) closeLambda(at token.Token) {
	n.pop()
	n.lambdas[n.depth]--
	n.emit(at.Borrow(token.Newline, ""))
	n.emit(at.Borrow(token.Dedent, ""))
}

func (n *Normalizer) finish(eof token.Token) {
	for len(n.stack) > 1 {
		n.pop()
		n.emit(eof.Borrow(token.Dedent, ""))
	}
	if len(n.stack) != 1 || n.stack[0] != 0 {
		n.err = fmt.Errorf("%w: stack %v at end of stream", ErrInternalInvariant, n.stack)
		return
	}
	n.emit(eof)
	n.eof = &eof
}

// fail records a dedent to an unknown level. nl is the newline run that
// carries the indentation of the offending line.
func (n *Normalizer) fail(nl token.Token, indent int) {
	lastBreak := strings.LastIndexByte(nl.Text, '\n')
	at := nl.Span.End
	err := &StructuralError{
		Line:     nl.Line + strings.Count(nl.Text, "\n"),
		Col:      len(nl.Text) - lastBreak,
		Span:     source.Span{File: nl.Span.File, Start: at, End: at},
		Indent:   indent,
		Expected: n.top(),
	}
	if n.opts.Reporter != nil {
		diag.ReportError(n.opts.Reporter, diag.IndUnexpectedDedent, err.Span, err.Message()).Emit()
	}
	n.err = err
}

func (n *Normalizer) top() int {
	return n.stack[len(n.stack)-1]
}

func (n *Normalizer) pop() {
	if len(n.stack) == 1 {
		// the base level is never removed
		n.err = fmt.Errorf("%w: pop of base level", ErrInternalInvariant)
		return
	}
	n.stack = n.stack[:len(n.stack)-1]
}

func (n *Normalizer) emit(tok token.Token) {
	n.out = append(n.out, tok)
}

type sliceSource struct {
	toks []token.Token
	pos  int
}

func (s *sliceSource) Next() token.Token {
	if s.pos >= len(s.toks) {
		return token.Token{Kind: token.EOF}
	}
	tok := s.toks[s.pos]
	s.pos++
	return tok
}
