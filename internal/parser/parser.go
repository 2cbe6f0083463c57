package parser

import (
	"context"
	"errors"
	"strconv"

	"gdtoolkit/internal/diag"
	"gdtoolkit/internal/indent"
	"gdtoolkit/internal/source"
	"gdtoolkit/internal/syntax"
	"gdtoolkit/internal/token"
	"gdtoolkit/internal/trace"
)

// TokenStream is the normalized token source, usually an *indent.Normalizer.
type TokenStream interface {
	Next() (token.Token, error)
}

type Options struct {
	// MaxDiagnostics bounds the result bag; 0 means unbounded.
	MaxDiagnostics int
}

type Result struct {
	Tree *syntax.Tree // nil when the file has errors
	Bag  *diag.Bag
}

// Parser holds the state for one file. Parsing stops at the first error.
type Parser struct {
	file *source.File
	toks TokenStream
	bag  *diag.Bag

	look   []token.Token
	last   token.Token
	groups int // open brackets whose newlines are insignificant
	inline int // statements inlined after a lambda header
}

// bailout unwinds the parser after the first reported error.
type bailout struct{}

// ParseFile builds the syntax tree of file from its normalized token stream.
func ParseFile(ctx context.Context, file *source.File, toks TokenStream, opts Options) Result {
	_, span := trace.StartFile(ctx, "parse", file.Path)
	p := &Parser{
		file: file,
		toks: toks,
		bag:  diag.NewBag(opts.MaxDiagnostics),
	}
	tree := p.parse()
	span.WithExtra("errors", strconv.Itoa(p.bag.Len())).End("")
	return Result{Tree: tree, Bag: p.bag}
}

func (p *Parser) parse() (tree *syntax.Tree) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
			tree = nil
		}
	}()
	return p.parseStart()
}

// fill makes sure at least n tokens are buffered.
func (p *Parser) fill(n int) {
	for len(p.look) < n {
		tok, err := p.toks.Next()
		if err != nil {
			p.streamError(err)
		}
		p.look = append(p.look, tok)
	}
}

// peekAt returns the i-th upcoming token (0 is the next one). Inside
// brackets newlines are skipped.
func (p *Parser) peekAt(i int) token.Token {
	for {
		p.fill(i + 1)
		if p.groups == 0 {
			return p.look[i]
		}
		dropped := false
		for j := 0; j <= i; j++ {
			if p.look[j].Kind == token.Newline {
				p.look = append(p.look[:j], p.look[j+1:]...)
				dropped = true
				break
			}
		}
		if !dropped {
			return p.look[i]
		}
	}
}

func (p *Parser) peek() token.Token {
	return p.peekAt(0)
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) advance() token.Token {
	tok := p.peek()
	p.look = p.look[1:]
	if tok.Kind != token.EOF {
		p.last = tok
	}
	return tok
}

func (p *Parser) eat(k token.Kind) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	return token.Token{}, false
}

func (p *Parser) expect(k token.Kind, code diag.Code, msg string) token.Token {
	if p.at(k) {
		return p.advance()
	}
	p.fail(code, msg)
	return token.Token{}
}

func (p *Parser) leaf(tok token.Token) syntax.Leaf {
	return syntax.Leaf{Token: tok}
}

// fail reports a syntax error at the next token and stops parsing.
func (p *Parser) fail(code diag.Code, msg string) {
	tok := p.peek()
	sp := tok.Span
	if tok.Kind == token.EOF && p.last.Kind != token.Invalid {
		sp = source.Span{File: p.last.Span.File, Start: p.last.Span.End, End: p.last.Span.End}
	}
	msg += ", got " + describe(tok)
	diag.ReportError(diag.BagReporter{Bag: p.bag}, code, sp, msg).Emit()
	panic(bailout{})
}

func (p *Parser) streamError(err error) {
	var se *indent.StructuralError
	switch {
	case errors.As(err, &se):
		diag.ReportError(diag.BagReporter{Bag: p.bag}, diag.IndUnexpectedDedent, se.Span, se.Message()).Emit()
	default:
		diag.ReportError(diag.BagReporter{Bag: p.bag}, diag.IndInternal, p.last.Span, err.Error()).Emit()
	}
	panic(bailout{})
}

func describe(tok token.Token) string {
	switch tok.Kind {
	case token.EOF:
		return "end of file"
	case token.Newline:
		return "newline"
	case token.Indent:
		return "indented block"
	case token.Dedent:
		return "end of block"
	default:
		return strconv.Quote(tok.Text)
	}
}
