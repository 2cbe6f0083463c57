package parser

import (
	"gdtoolkit/internal/diag"
	"gdtoolkit/internal/syntax"
	"gdtoolkit/internal/token"
)

// level is one rung of the binary operator ladder, loosest first.
type level struct {
	rule string
	ops  func(tok token.Token) bool
}

func kinds(ks ...token.Kind) func(token.Token) bool {
	return func(tok token.Token) bool {
		for _, k := range ks {
			if tok.Kind == k {
				return true
			}
		}
		return false
	}
}

func isComparison(tok token.Token) bool {
	switch tok.Kind {
	case token.EqEq, token.BangEq, token.Lt, token.LtEq, token.Gt, token.GtEq, token.KwIn:
		return true
	case token.Name:
		return tok.Text == "is"
	default:
		return false
	}
}

var (
	levelOr   = level{"or_test", kinds(token.KwOr, token.OrOr)}
	levelAnd  = level{"and_test", kinds(token.KwAnd, token.AndAnd)}
	binLevels = []level{
		{"comparison", isComparison},
		{"bitw_or", kinds(token.Pipe)},
		{"bitw_xor", kinds(token.Caret)},
		{"bitw_and", kinds(token.Amp)},
		{"shift_expr", kinds(token.Shl, token.Shr)},
		{"arith_expr", kinds(token.Plus, token.Minus)},
		{"mdr_expr", kinds(token.Star, token.Slash, token.Percent)},
	}
)

func canStartExpr(k token.Kind) bool {
	switch k {
	case token.Name, token.Number, token.String, token.KwTrue, token.KwFalse, token.KwNull,
		token.LParen, token.LBracket, token.LBrace, token.Minus, token.Plus, token.Tilde,
		token.Bang, token.KwNot, token.Dollar, token.KwFunc:
		return true
	default:
		return false
	}
}

// parseExpr parses a full expression including the ternary form
// `a if cond else b`.
func (p *Parser) parseExpr() syntax.Node {
	if !canStartExpr(p.peek().Kind) {
		p.fail(diag.SynExpectExpression, "expected expression")
	}
	value := p.parseOr()
	if !p.at(token.KwIf) {
		return value
	}
	p.advance()
	cond := p.parseOr()
	p.expect(token.KwElse, diag.SynUnexpectedToken, "expected 'else' in conditional expression")
	return syntax.New("test_expr", value, cond, p.parseExpr())
}

func (p *Parser) parseOr() syntax.Node {
	return p.parseChain(levelOr, p.parseAnd)
}

func (p *Parser) parseAnd() syntax.Node {
	return p.parseChain(levelAnd, p.parseNot)
}

func (p *Parser) parseNot() syntax.Node {
	if p.at(token.KwNot) || p.at(token.Bang) {
		op := p.advance()
		return syntax.New("not_test", p.leaf(op), p.parseNot())
	}
	return p.parseBinary(0)
}

func (p *Parser) parseBinary(i int) syntax.Node {
	if i == len(binLevels) {
		return p.parseNeg()
	}
	return p.parseChain(binLevels[i], func() syntax.Node { return p.parseBinary(i + 1) })
}

// parseChain keeps same-precedence chains flat: operands and operator leaves
// alternate in the children.
func (p *Parser) parseChain(lv level, next func() syntax.Node) syntax.Node {
	first := next()
	if !lv.ops(p.peek()) {
		return first
	}
	t := syntax.New(lv.rule, first)
	for lv.ops(p.peek()) {
		op := p.advance()
		t.Children = append(t.Children, p.leaf(op), next())
	}
	return t
}

func (p *Parser) parseNeg() syntax.Node {
	if p.at(token.Minus) || p.at(token.Plus) {
		op := p.advance()
		return syntax.New("neg_expr", p.leaf(op), p.parseNeg())
	}
	if p.at(token.Tilde) {
		op := p.advance()
		return syntax.New("bitw_not", p.leaf(op), p.parseNeg())
	}
	return p.parseCast()
}

// expr as Type
func (p *Parser) parseCast() syntax.Node {
	value := p.parsePostfix()
	for p.at(token.Name) && p.peek().Text == "as" {
		p.advance()
		value = syntax.New("type_cast", value, p.parseTypeHint())
	}
	return value
}

func (p *Parser) parsePostfix() syntax.Node {
	value := p.parseAtom()
	for {
		switch p.peek().Kind {
		case token.Dot:
			p.advance()
			name := p.leaf(p.expect(token.Name, diag.SynExpectIdentifier, "expected attribute name"))
			if p.at(token.LParen) {
				p.advance()
				t := syntax.New("getattr_call", value, name)
				t.Children = append(t.Children, p.parseExprList(token.RParen)...)
				value = t
				continue
			}
			value = syntax.New("getattr", value, name)
		case token.LParen:
			p.advance()
			t := syntax.New("call", value)
			t.Children = append(t.Children, p.parseExprList(token.RParen)...)
			value = t
		case token.LBracket:
			p.advance()
			p.groups++
			index := p.parseExpr()
			p.closeGroup(token.RBracket)
			value = syntax.New("subscr_expr", value, index)
		default:
			return value
		}
	}
}

func (p *Parser) parseAtom() syntax.Node {
	tok := p.peek()
	switch tok.Kind {
	case token.Name, token.Number, token.String, token.KwTrue, token.KwFalse, token.KwNull:
		return p.leaf(p.advance())
	case token.LParen:
		p.advance()
		p.groups++
		inner := p.parseExpr()
		p.closeGroup(token.RParen)
		return syntax.At(tok, "par_expr", inner)
	case token.LBracket:
		p.advance()
		return syntax.At(tok, "array", p.parseExprList(token.RBracket)...)
	case token.LBrace:
		return p.parseDict()
	case token.Dollar:
		return p.parseNodePath()
	case token.KwFunc:
		return p.parseLambda()
	default:
		p.fail(diag.SynExpectExpression, "expected expression")
		return nil
	}
}

// parseExprList parses comma separated expressions up to the close bracket.
// The open bracket has been consumed. A trailing comma is allowed.
func (p *Parser) parseExprList(closeKind token.Kind) []syntax.Node {
	p.groups++
	var out []syntax.Node
	for !p.at(closeKind) {
		out = append(out, p.parseExpr())
		if _, ok := p.eat(token.Comma); !ok {
			break
		}
	}
	p.closeGroup(closeKind)
	return out
}

// { key: value, name = value, ... }
func (p *Parser) parseDict() syntax.Node {
	open := p.advance()
	p.groups++
	t := syntax.At(open, "dict")
	for !p.at(token.RBrace) {
		key := p.parseExpr()
		switch {
		case p.at(token.Colon):
			p.advance()
			t.Children = append(t.Children, syntax.New("kv_pair", key, p.parseExpr()))
		case p.at(token.Assign):
			if l, ok := key.(syntax.Leaf); !ok || l.Kind != token.Name {
				p.fail(diag.SynUnexpectedToken, "expected ':' after dictionary key")
			}
			p.advance()
			t.Children = append(t.Children, syntax.New("eq_kv_pair", key, p.parseExpr()))
		default:
			p.fail(diag.SynExpectColon, "expected ':' after dictionary key")
		}
		if _, ok := p.eat(token.Comma); !ok {
			break
		}
	}
	p.closeGroup(token.RBrace)
	return t
}

// $Name/Child or $"path"
func (p *Parser) parseNodePath() syntax.Node {
	dollar := p.advance()
	if str, ok := p.eat(token.String); ok {
		return syntax.At(dollar, "get_node", p.leaf(str))
	}
	t := syntax.At(dollar, "get_node", p.leaf(p.expect(token.Name, diag.SynExpectIdentifier, "expected node path")))
	for p.at(token.Slash) {
		t.Children = append(t.Children, p.leaf(p.advance()))
		t.Children = append(t.Children, p.leaf(p.expect(token.Name, diag.SynExpectIdentifier, "expected node name after '/'")))
	}
	return t
}
