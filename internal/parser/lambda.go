package parser

import (
	"gdtoolkit/internal/diag"
	"gdtoolkit/internal/syntax"
	"gdtoolkit/internal/token"
)

// parseLambda parses `func [name] ( args ) [-> Type] :` and its body.
//
// A body given as a block arrives as Newline Indent ... Dedent, even inside
// brackets; the block ends at the Dedent, which the normalizer places before
// the comma or close bracket that ends it. Any other body is a single
// statement on the header line.
func (p *Parser) parseLambda() syntax.Node {
	kw := p.advance()
	header := syntax.At(kw, "lambda_header")
	if name, ok := p.eat(token.Name); ok {
		header.Children = append(header.Children, p.leaf(name))
	}
	header.Children = append(header.Children, p.parseFuncArgs())
	if _, ok := p.eat(token.Arrow); ok {
		header.Children = append(header.Children, p.parseTypeHint())
	}
	p.expect(token.Colon, diag.SynExpectColon, "expected ':' after lambda header")

	t := syntax.At(kw, "lambda", header)

	groups, inline := p.groups, p.inline
	p.groups, p.inline = 0, 0
	block := p.peekAt(0).Kind == token.Newline && p.peekAt(1).Kind == token.Indent
	if block {
		t.Children = append(t.Children, p.parseBody(p.parseFuncStmt)...)
		p.groups, p.inline = groups, inline
		return t
	}

	p.groups, p.inline = groups, inline+1
	t.Children = append(t.Children, p.parseFuncStmt())
	p.inline = inline
	return t
}
