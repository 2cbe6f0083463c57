package parser

import (
	"gdtoolkit/internal/diag"
	"gdtoolkit/internal/syntax"
	"gdtoolkit/internal/token"
)

func (p *Parser) parseStart() *syntax.Tree {
	root := &syntax.Tree{Rule: "start", Line: 1, Col: 1}
	for {
		p.skipNewlines()
		if p.at(token.EOF) {
			return root
		}
		root.Children = append(root.Children, p.parseClassStmt())
	}
}

// parseClassStmt parses one statement allowed directly in a class body.
func (p *Parser) parseClassStmt() *syntax.Tree {
	tok := p.peek()
	switch tok.Kind {
	case token.KwTool:
		p.advance()
		p.endStmt()
		return syntax.At(tok, "tool_stmt")
	case token.KwSignal:
		return p.parseSignal()
	case token.KwExtends:
		t := p.parseExtends()
		p.endStmt()
		return t
	case token.KwClassName:
		return p.parseClassName()
	case token.KwVar:
		p.advance()
		t := syntax.At(tok, "class_var_stmt", p.parseVarDecl())
		p.endStmt()
		return t
	case token.KwConst:
		return p.parseConst()
	case token.KwExport:
		return p.parseExport()
	case token.KwOnready:
		p.advance()
		p.expect(token.KwVar, diag.SynUnexpectedToken, "expected 'var' after 'onready'")
		t := syntax.At(tok, "onready_stmt", p.parseVarDecl())
		p.endStmt()
		return t
	case token.KwEnum:
		t := p.parseEnum()
		p.endStmt()
		return t
	case token.KwStatic, token.KwFunc:
		return p.parseFuncDef()
	case token.KwClass:
		return p.parseClassDef()
	case token.KwPass:
		p.advance()
		p.endStmt()
		return syntax.At(tok, "pass_stmt")
	default:
		p.fail(diag.SynUnexpectedTopLevel, "expected class-level statement")
		return nil
	}
}

// signal name [ ( arg, ... ) ]
func (p *Parser) parseSignal() *syntax.Tree {
	kw := p.advance()
	name := p.expect(token.Name, diag.SynExpectIdentifier, "expected signal name")
	t := syntax.At(kw, "signal_stmt", p.leaf(name))
	if open, ok := p.eat(token.LParen); ok {
		args := syntax.At(open, "signal_args")
		p.groups++
		for !p.at(token.RParen) {
			arg := p.expect(token.Name, diag.SynExpectIdentifier, "expected signal argument name")
			args.Children = append(args.Children, p.leaf(arg))
			if _, ok := p.eat(token.Comma); !ok {
				break
			}
		}
		p.closeGroup(token.RParen)
		t.Children = append(t.Children, args)
	}
	p.endStmt()
	return t
}

// extends "res://path.gd" | extends Name(.Name)*
func (p *Parser) parseExtends() *syntax.Tree {
	kw := p.advance()
	if str, ok := p.eat(token.String); ok {
		return syntax.At(kw, "extends_stmt", p.leaf(str))
	}
	first := p.expect(token.Name, diag.SynExpectIdentifier, "expected class to extend")
	t := syntax.At(kw, "extends_stmt", p.leaf(first))
	for p.at(token.Dot) {
		p.advance()
		name := p.expect(token.Name, diag.SynExpectIdentifier, "expected name after '.'")
		t.Children = append(t.Children, p.leaf(name))
	}
	return t
}

// class_name Name [, "icon"]
func (p *Parser) parseClassName() *syntax.Tree {
	kw := p.advance()
	name := p.expect(token.Name, diag.SynExpectIdentifier, "expected class name")
	t := syntax.At(kw, "classname_stmt", p.leaf(name))
	if _, ok := p.eat(token.Comma); ok {
		icon := p.expect(token.String, diag.SynUnexpectedToken, "expected icon path")
		t.Children = append(t.Children, p.leaf(icon))
	}
	p.endStmt()
	return t
}

// parseVarDecl parses what follows 'var': one of var_empty, var_assigned,
// var_typed, var_typed_assgnd or var_inf.
func (p *Parser) parseVarDecl() *syntax.Tree {
	name := p.leaf(p.expect(token.Name, diag.SynExpectIdentifier, "expected variable name"))
	switch {
	case p.at(token.ColonAssign):
		p.advance()
		return syntax.New("var_inf", name, p.parseExpr())
	case p.at(token.Colon):
		p.advance()
		typ := p.parseTypeHint()
		if _, ok := p.eat(token.Assign); ok {
			return syntax.New("var_typed_assgnd", name, typ, p.parseExpr())
		}
		return syntax.New("var_typed", name, typ)
	case p.at(token.Assign):
		p.advance()
		return syntax.New("var_assigned", name, p.parseExpr())
	default:
		return syntax.New("var_empty", name)
	}
}

// const Name [: Type] = expr | const Name := expr
//
// The assignment operator is kept as a leaf so that both forms render back.
func (p *Parser) parseConst() *syntax.Tree {
	kw := p.advance()
	name := p.expect(token.Name, diag.SynExpectIdentifier, "expected constant name")
	t := syntax.At(kw, "const_stmt", p.leaf(name))
	if _, ok := p.eat(token.Colon); ok {
		t.Children = append(t.Children, p.parseTypeHint())
	}
	var op token.Token
	if p.at(token.ColonAssign) && len(t.Children) == 1 {
		op = p.advance()
	} else {
		op = p.expect(token.Assign, diag.SynUnexpectedToken, "expected '=' in constant definition")
	}
	t.Children = append(t.Children, p.leaf(op), p.parseExpr())
	p.endStmt()
	return t
}

// export [ ( hint, ... ) ] var decl
func (p *Parser) parseExport() *syntax.Tree {
	kw := p.advance()
	t := syntax.At(kw, "export_stmt")
	if open, ok := p.eat(token.LParen); ok {
		args := syntax.At(open, "export_args")
		args.Children = p.parseExprList(token.RParen)
		t.Children = append(t.Children, args)
	}
	p.expect(token.KwVar, diag.SynUnexpectedToken, "expected 'var' after export")
	t.Children = append(t.Children, p.parseVarDecl())
	p.endStmt()
	return t
}

// enum [Name] { A, B = expr, ... }
func (p *Parser) parseEnum() *syntax.Tree {
	kw := p.advance()
	t := syntax.At(kw, "enum_def")
	if name, ok := p.eat(token.Name); ok {
		t.Children = append(t.Children, p.leaf(name))
	}
	p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' after enum")
	p.groups++
	for !p.at(token.RBrace) {
		name := p.leaf(p.expect(token.Name, diag.SynExpectIdentifier, "expected enum element name"))
		el := syntax.New("enum_element", name)
		if _, ok := p.eat(token.Assign); ok {
			el.Children = append(el.Children, p.parseExpr())
		}
		t.Children = append(t.Children, el)
		if _, ok := p.eat(token.Comma); !ok {
			break
		}
	}
	p.closeGroup(token.RBrace)
	return t
}

// [static] func name ( args ) [-> Type] : body
func (p *Parser) parseFuncDef() *syntax.Tree {
	start := p.peek()
	header := syntax.At(start, "func_header")
	if st, ok := p.eat(token.KwStatic); ok {
		header.Children = append(header.Children, p.leaf(st))
	}
	p.expect(token.KwFunc, diag.SynUnexpectedToken, "expected 'func'")
	name := p.expect(token.Name, diag.SynExpectIdentifier, "expected function name")
	header.Children = append(header.Children, p.leaf(name), p.parseFuncArgs())
	if _, ok := p.eat(token.Arrow); ok {
		header.Children = append(header.Children, p.parseTypeHint())
	}
	p.expect(token.Colon, diag.SynExpectColon, "expected ':' after function header")

	t := syntax.At(start, "func_def", header)
	t.Children = append(t.Children, p.parseBody(p.parseFuncStmt)...)
	return t
}

// class Name [extends X] : body
func (p *Parser) parseClassDef() *syntax.Tree {
	kw := p.advance()
	name := p.expect(token.Name, diag.SynExpectIdentifier, "expected class name")
	t := syntax.At(kw, "class_def", p.leaf(name))
	if p.at(token.KwExtends) {
		t.Children = append(t.Children, p.parseExtends())
	}
	p.expect(token.Colon, diag.SynExpectColon, "expected ':' after class name")
	t.Children = append(t.Children, p.parseBody(p.parseClassStmt)...)
	return t
}

// ( [arg [, arg]* [,]] )
func (p *Parser) parseFuncArgs() *syntax.Tree {
	open := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '('")
	t := syntax.At(open, "func_args")
	p.groups++
	for !p.at(token.RParen) {
		t.Children = append(t.Children, p.parseFuncArg())
		if _, ok := p.eat(token.Comma); !ok {
			break
		}
	}
	p.closeGroup(token.RParen)
	return t
}

// name [: Type] [= default] | name := default
func (p *Parser) parseFuncArg() *syntax.Tree {
	name := p.leaf(p.expect(token.Name, diag.SynExpectIdentifier, "expected argument name"))
	if _, ok := p.eat(token.ColonAssign); ok {
		return syntax.New("func_arg_inf", name, p.parseExpr())
	}
	t := syntax.New("func_arg", name)
	if _, ok := p.eat(token.Colon); ok {
		t.Children = append(t.Children, p.parseTypeHint())
	}
	if _, ok := p.eat(token.Assign); ok {
		t.Children = append(t.Children, p.parseExpr())
	}
	return t
}

// Name(.Name)* [ '[' Type ']' ]
func (p *Parser) parseTypeHint() *syntax.Tree {
	first := p.expect(token.Name, diag.SynExpectIdentifier, "expected type name")
	t := syntax.New("type_hint", p.leaf(first))
	for p.at(token.Dot) {
		p.advance()
		name := p.expect(token.Name, diag.SynExpectIdentifier, "expected type name after '.'")
		t.Children = append(t.Children, p.leaf(name))
	}
	if _, ok := p.eat(token.LBracket); ok {
		p.groups++
		t.Children = append(t.Children, p.parseTypeHint())
		p.closeGroup(token.RBracket)
	}
	return t
}
