package format

import (
	"strings"

	"gdtoolkit/internal/syntax"
)

// FormatClassStatement renders one statement of a class body.
func FormatClassStatement(stmt *syntax.Tree, ctx *Context) (FormattedLines, int) {
	switch stmt.Rule {
	case "tool_stmt":
		return FormattedLines{ctx.line("tool", stmt.Line)}, stmt.Line
	case "signal_stmt":
		prefix := "signal " + ctx.flatOr(stmt.Children[0])
		if args := stmt.Child(0); args != nil {
			return ctx.expr(prefix, args, "", ctx.IndentString, stmt.Line), stmt.EndLine()
		}
		return FormattedLines{ctx.line(prefix, stmt.Line)}, stmt.Line
	case "extends_stmt":
		return FormattedLines{ctx.line(ctx.extends(stmt), stmt.Line)}, stmt.Line
	case "classname_stmt":
		text := "class_name " + ctx.flatOr(stmt.Children[0])
		if len(stmt.Children) > 1 {
			text += ", " + ctx.flatOr(stmt.Children[1])
		}
		return FormattedLines{ctx.line(text, stmt.Line)}, stmt.Line
	case "class_var_stmt", "onready_stmt", "export_stmt", "const_stmt", "pass_stmt":
		return ctx.formatSimple(stmt), stmt.EndLine()
	case "enum_def":
		return ctx.expr("", stmt, "", ctx.IndentString, stmt.Line), stmt.EndLine()
	case "func_def":
		return ctx.formatFuncDef(stmt)
	case "class_def":
		return ctx.formatClassDef(stmt)
	default:
		ctx.fail(unsupported(stmt))
		return nil, stmt.EndLine()
	}
}

func (c *Context) extends(stmt *syntax.Tree) string {
	names := make([]string, 0, len(stmt.Children))
	for _, n := range stmt.Children {
		names = append(names, c.flatOr(n))
	}
	return "extends " + strings.Join(names, ".")
}

func (c *Context) formatFuncDef(stmt *syntax.Tree) (FormattedLines, int) {
	header := stmt.Child(0)
	var prefix strings.Builder
	var args syntax.Node
	suffix := ":"
	for _, n := range header.Children {
		switch {
		case isRule(n, "func_args"):
			args = n
		case isRule(n, "type_hint"):
			suffix = " -> " + c.typeHint(n.(*syntax.Tree)) + ":"
		default:
			if l := n.(syntax.Leaf); l.Text == "static" {
				prefix.WriteString("static ")
			} else {
				prefix.WriteString("func " + l.Text)
			}
		}
	}
	lines := c.expr(prefix.String(), args, suffix, c.IndentString, stmt.Line)
	body, end := FormatBlock(stmt.Children[1:], FormatFuncStatement, c.CreateChildContext(header.EndLine()))
	return append(lines, body...), end
}

func (c *Context) formatClassDef(stmt *syntax.Tree) (FormattedLines, int) {
	text := "class " + c.flatOr(stmt.Children[0])
	body := stmt.Children[1:]
	last := stmt.Line
	if len(body) > 0 && isRule(body[0], "extends_stmt") {
		ext := body[0].(*syntax.Tree)
		text += " " + c.extends(ext)
		last = ext.EndLine()
		body = body[1:]
	}
	lines := FormattedLines{c.line(text+":", stmt.Line)}
	inner, end := FormatBlock(body, FormatClassStatement, c.createClassContext(last))
	return append(lines, inner...), end
}
