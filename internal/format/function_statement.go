package format

import (
	"gdtoolkit/internal/syntax"
)

// FormatFuncStatement renders one statement of a function body and returns
// the last input line it covered.
func FormatFuncStatement(stmt *syntax.Tree, ctx *Context) (FormattedLines, int) {
	switch stmt.Rule {
	case "if_stmt":
		return ctx.formatIf(stmt)
	case "while_stmt":
		return ctx.formatBranch("while ", 0, stmt)
	case "for_stmt":
		return ctx.formatBranch("for "+ctx.flatOr(stmt.Children[0])+" in ", 1, stmt)
	case "pass_stmt", "func_var_stmt", "const_stmt", "expr_stmt", "return_stmt",
		"break_stmt", "continue_stmt":
		return ctx.formatSimple(stmt), stmt.EndLine()
	default:
		ctx.fail(unsupported(stmt))
		return nil, stmt.EndLine()
	}
}

func (c *Context) formatSimple(stmt *syntax.Tree) FormattedLines {
	prefix, value, ok := c.simpleStatement(stmt)
	if !ok {
		c.fail(unsupported(stmt))
		return nil
	}
	if value == nil {
		return FormattedLines{c.line(prefix, stmt.Line)}
	}
	return c.expr(prefix, value, "", c.IndentString, stmt.Line)
}

// simpleStatement splits a single-line statement into its fixed text and the
// trailing expression, if any.
func (c *Context) simpleStatement(stmt *syntax.Tree) (string, syntax.Node, bool) {
	switch stmt.Rule {
	case "pass_stmt":
		return "pass", nil, true
	case "break_stmt":
		return "break", nil, true
	case "continue_stmt":
		return "continue", nil, true
	case "return_stmt":
		if len(stmt.Children) == 0 {
			return "return", nil, true
		}
		return "return ", stmt.Children[0], true
	case "func_var_stmt", "class_var_stmt":
		prefix, value := c.varDecl(stmt.Child(0))
		return "var " + prefix, value, true
	case "onready_stmt":
		prefix, value := c.varDecl(stmt.Child(0))
		return "onready var " + prefix, value, true
	case "export_stmt":
		head := "export"
		decl := stmt.Child(0)
		if decl.Rule == "export_args" {
			head += c.flatOr(decl)
			decl = stmt.Child(1)
		}
		prefix, value := c.varDecl(decl)
		return head + " var " + prefix, value, true
	case "const_stmt":
		return c.constStatement(stmt)
	case "expr_stmt":
		x := stmt.Children[0]
		if a, ok := x.(*syntax.Tree); ok && a.Rule == "assnmnt_expr" {
			op := a.Children[1].(syntax.Leaf)
			return c.flatOr(a.Children[0]) + " " + op.Text + " ", a.Children[2], true
		}
		return "", x, true
	default:
		return "", nil, false
	}
}

// varDecl renders the part of a variable declaration after 'var'.
func (c *Context) varDecl(decl *syntax.Tree) (string, syntax.Node) {
	name := c.flatOr(decl.Children[0])
	switch decl.Rule {
	case "var_assigned":
		return name + " = ", decl.Children[1]
	case "var_inf":
		return name + " := ", decl.Children[1]
	case "var_typed":
		return name + ": " + c.typeHint(decl.Child(0)), nil
	case "var_typed_assgnd":
		return name + ": " + c.typeHint(decl.Child(0)) + " = ", decl.Children[2]
	default:
		return name, nil
	}
}

func (c *Context) constStatement(stmt *syntax.Tree) (string, syntax.Node, bool) {
	prefix := "const " + c.flatOr(stmt.Children[0])
	rest := stmt.Children[1:]
	if th, ok := rest[0].(*syntax.Tree); ok {
		prefix += ": " + c.typeHint(th)
		rest = rest[1:]
	}
	op := rest[0].(syntax.Leaf)
	return prefix + " " + op.Text + " ", rest[1], true
}

func (c *Context) formatIf(stmt *syntax.Tree) (FormattedLines, int) {
	var out FormattedLines
	last := stmt.Line
	for i, n := range stmt.Children {
		branch := n.(*syntax.Tree)
		if i > 0 {
			out = append(out, c.reconstructGap(last, branch.Line, true)...)
		}
		var lines FormattedLines
		switch branch.Rule {
		case "if_branch":
			lines, last = c.formatBranch("if ", 0, branch)
		case "elif_branch":
			lines, last = c.formatBranch("elif ", 0, branch)
		default:
			lines, last = c.formatBranch("else", -1, branch)
		}
		out = append(out, lines...)
	}
	return out, last
}

// formatBranch renders `prefix expr:` followed by the indented body made of
// the children after the expression at exprAt. A negative exprAt means the
// header has no expression.
func (c *Context) formatBranch(prefix string, exprAt int, stmt *syntax.Tree) (FormattedLines, int) {
	var header FormattedLines
	last := stmt.Line
	var body []syntax.Node
	if exprAt >= 0 {
		cond := stmt.Children[exprAt]
		header = c.expr(prefix, cond, ":", c.IndentString, stmt.Line)
		last = cond.EndLine()
		body = stmt.Children[exprAt+1:]
	} else {
		header = FormattedLines{c.line(prefix+":", stmt.Line)}
		body = stmt.Children
	}
	lines, end := FormatBlock(body, FormatFuncStatement, c.CreateChildContext(last))
	return append(header, lines...), end
}
