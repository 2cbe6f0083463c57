package parser

import (
	"gdtoolkit/internal/diag"
	"gdtoolkit/internal/syntax"
	"gdtoolkit/internal/token"
)

// parseBody parses what follows the ':' of a compound statement: either an
// indented block or a single statement on the same line.
func (p *Parser) parseBody(stmt func() *syntax.Tree) []syntax.Node {
	if !p.at(token.Newline) {
		return []syntax.Node{stmt()}
	}
	p.advance()
	p.expect(token.Indent, diag.SynExpectBlock, "expected an indented block")

	var out []syntax.Node
	for {
		p.skipNewlines()
		if _, ok := p.eat(token.Dedent); ok {
			return out
		}
		if p.at(token.EOF) {
			p.fail(diag.SynUnexpectedToken, "expected end of block")
		}
		out = append(out, stmt())
	}
}

func (p *Parser) skipNewlines() {
	for p.at(token.Newline) {
		p.advance()
	}
}

// endStmt consumes the terminator of a simple statement. The end of a block
// or of the file also terminates a statement, as does anything following a
// statement inlined into a lambda.
func (p *Parser) endStmt() {
	if p.inline > 0 || p.groups > 0 {
		return
	}
	switch p.peek().Kind {
	case token.Newline:
		p.advance()
	case token.Dedent, token.EOF:
	default:
		p.fail(diag.SynExpectNewline, "expected end of statement")
	}
}

// closeGroup consumes the closing bracket of the innermost group.
func (p *Parser) closeGroup(k token.Kind) token.Token {
	tok := p.expect(k, diag.SynUnclosedGroup, "expected '"+k.String()+"'")
	p.groups--
	return tok
}

// parseFuncStmt parses one statement of a function body.
func (p *Parser) parseFuncStmt() *syntax.Tree {
	tok := p.peek()
	switch tok.Kind {
	case token.KwPass:
		p.advance()
		p.endStmt()
		return syntax.At(tok, "pass_stmt")
	case token.KwVar:
		p.advance()
		t := syntax.At(tok, "func_var_stmt", p.parseVarDecl())
		p.endStmt()
		return t
	case token.KwConst:
		return p.parseConst()
	case token.KwReturn:
		p.advance()
		t := syntax.At(tok, "return_stmt")
		if canStartExpr(p.peek().Kind) {
			t.Children = append(t.Children, p.parseExpr())
		}
		p.endStmt()
		return t
	case token.KwBreak:
		p.advance()
		p.endStmt()
		return syntax.At(tok, "break_stmt")
	case token.KwContinue:
		p.advance()
		p.endStmt()
		return syntax.At(tok, "continue_stmt")
	case token.KwIf:
		return p.parseIf()
	case token.KwWhile:
		p.advance()
		cond := p.parseExpr()
		p.expect(token.Colon, diag.SynExpectColon, "expected ':' after while condition")
		t := syntax.At(tok, "while_stmt", cond)
		t.Children = append(t.Children, p.parseBody(p.parseFuncStmt)...)
		return t
	case token.KwFor:
		p.advance()
		name := p.expect(token.Name, diag.SynExpectIdentifier, "expected loop variable")
		p.expect(token.KwIn, diag.SynUnexpectedToken, "expected 'in'")
		iter := p.parseExpr()
		p.expect(token.Colon, diag.SynExpectColon, "expected ':' after for header")
		t := syntax.At(tok, "for_stmt", p.leaf(name), iter)
		t.Children = append(t.Children, p.parseBody(p.parseFuncStmt)...)
		return t
	default:
		t := syntax.New("expr_stmt", p.parseExprOrAssignment())
		p.endStmt()
		return t
	}
}

// if cond: body (elif cond: body)* [else: body]
func (p *Parser) parseIf() *syntax.Tree {
	stmt := &syntax.Tree{Rule: "if_stmt"}
	branch := func(rule string, withCond bool) {
		kw := p.advance()
		b := syntax.At(kw, rule)
		if withCond {
			b.Children = append(b.Children, p.parseExpr())
		}
		p.expect(token.Colon, diag.SynExpectColon, "expected ':' after "+kw.Text)
		b.Children = append(b.Children, p.parseBody(p.parseFuncStmt)...)
		stmt.Children = append(stmt.Children, b)
	}

	stmt.Line, stmt.Col = p.peek().Line, p.peek().Col
	branch("if_branch", true)
	for {
		if p.inline == 0 {
			p.skipNewlines()
		}
		switch p.peek().Kind {
		case token.KwElif:
			branch("elif_branch", true)
		case token.KwElse:
			branch("else_branch", false)
			return stmt
		default:
			return stmt
		}
	}
}

func (p *Parser) parseExprOrAssignment() syntax.Node {
	lhs := p.parseExpr()
	if !isAssignOp(p.peek().Kind) {
		return lhs
	}
	op := p.advance()
	return syntax.New("assnmnt_expr", lhs, p.leaf(op), p.parseExpr())
}

func isAssignOp(k token.Kind) bool {
	switch k {
	case token.Assign, token.PlusAssign, token.MinusAssign, token.StarAssign,
		token.SlashAssign, token.PercentAssign:
		return true
	default:
		return false
	}
}
