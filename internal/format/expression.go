package format

import (
	"fmt"
	"strings"

	"gdtoolkit/internal/syntax"
	"gdtoolkit/internal/token"
)

// part is a piece of an expression's single-line form: literal text or a
// child node.
type part struct {
	text string
	node syntax.Node
}

func txt(s string) part { return part{text: s} }

func child(n syntax.Node) part { return part{node: n} }

// elem is one element of a bracketed group. node is nil when prefix is the
// whole element.
type elem struct {
	prefix string
	node   syntax.Node
	line   int
}

// group is the exploded form of a bracketed construct.
type group struct {
	open  []part
	elems []elem
	close string
}

// frag is an expression rendered over one or more lines. The first line
// continues the line under construction; the others carry their indentation.
type frag struct {
	lines FormattedLines
	// pending is set when the last line ends the body of a block lambda.
	pending bool
}

func textFrag(s string, sourceLine int) frag {
	return frag{lines: FormattedLines{{SourceLine: sourceLine, Text: s}}}
}

// attaches reports whether text may follow the last statement of a block
// lambda on the same line, which closes the lambda.
func attaches(text string) bool {
	if text == "" {
		return true
	}
	switch text[0] {
	case ',', ')', ']', '}':
		return true
	default:
		return false
	}
}

func (f *frag) add(g frag, indent string) {
	if len(g.lines) == 0 {
		return
	}
	if len(f.lines) == 0 {
		f.lines = append(f.lines, g.lines...)
		f.pending = g.pending
		return
	}
	head := g.lines[0]
	if f.pending && !attaches(head.Text) {
		f.lines = append(f.lines, Line{SourceLine: head.SourceLine, Text: indent + strings.TrimLeft(head.Text, " ")})
	} else {
		f.lines[len(f.lines)-1].Text += head.Text
	}
	f.lines = append(f.lines, g.lines[1:]...)
	f.pending = g.pending
}

// expr renders prefix, n and suffix starting a line at indent. The single
// line form is used when it fits; otherwise the outermost group on the right
// is exploded one element per line.
func (c *Context) expr(prefix string, n syntax.Node, suffix, indent string, sourceLine int) FormattedLines {
	opts := c.opts()
	if s, ok := c.flat(n); ok {
		text := indent + prefix + s + suffix
		if opts.width(text) <= opts.LineLength {
			return FormattedLines{{SourceLine: sourceLine, Text: text}}
		}
	}
	f := c.frag(n, indent, true)
	if len(f.lines) == 0 {
		return FormattedLines{{SourceLine: sourceLine, Text: indent + prefix + suffix}}
	}
	lines := make(FormattedLines, len(f.lines))
	copy(lines, f.lines)
	lines[0] = Line{SourceLine: sourceLine, Text: indent + prefix + lines[0].Text}
	lines[len(lines)-1].Text += suffix
	return lines
}

// flat renders n on a single line. It fails for block lambdas, which need a
// body of their own.
func (c *Context) flat(n syntax.Node) (string, bool) {
	t, ok := n.(*syntax.Tree)
	if !ok {
		if l, isLeaf := n.(syntax.Leaf); isLeaf {
			return l.Text, true
		}
		return "", false
	}
	if t.Rule == "lambda" {
		return c.flatLambda(t)
	}
	var sb strings.Builder
	for _, p := range c.parts(t) {
		if p.node == nil {
			sb.WriteString(p.text)
			continue
		}
		s, ok := c.flat(p.node)
		if !ok {
			return "", false
		}
		sb.WriteString(s)
	}
	return sb.String(), true
}

// flatOr renders n on one line, recording an error when that is impossible.
func (c *Context) flatOr(n syntax.Node) string {
	s, ok := c.flat(n)
	if !ok {
		line, _ := n.Pos()
		c.fail(fmt.Errorf("format: expression at line %d cannot be rendered on one line", line))
	}
	return s
}

func (c *Context) frag(n syntax.Node, indent string, force bool) frag {
	line, _ := n.Pos()
	t, isTree := n.(*syntax.Tree)
	if !isTree || !force || t.Rule == "lambda" {
		if s, ok := c.flat(n); ok {
			return textFrag(s, line)
		}
	}
	if !isTree {
		return frag{}
	}
	if t.Rule == "lambda" {
		return c.lambdaFrag(t, indent)
	}
	if g, ok := c.groupOf(t); ok && len(g.elems) > 0 {
		return c.explode(g, indent)
	}
	return c.concat(c.parts(t), indent, force)
}

// concat joins parts, forcing only the last child node to break.
func (c *Context) concat(parts []part, indent string, force bool) frag {
	last := -1
	for i, p := range parts {
		if p.node != nil {
			last = i
		}
	}
	var f frag
	for i, p := range parts {
		if p.node == nil {
			if p.text != "" {
				f.add(textFrag(p.text, 0), indent)
			}
			continue
		}
		f.add(c.frag(p.node, indent, force && i == last), indent)
	}
	return f
}

func (c *Context) explode(g group, indent string) frag {
	f := c.concat(g.open, indent, false)
	inner := indent + c.opts().indentUnit()
	for i, e := range g.elems {
		sep := ","
		if i == len(g.elems)-1 {
			sep = ""
		}
		if e.node == nil {
			f.lines = append(f.lines, Line{SourceLine: e.line, Text: inner + e.prefix + sep})
			continue
		}
		f.lines = append(f.lines, c.expr(e.prefix, e.node, sep, inner, e.line)...)
	}
	f.lines = append(f.lines, Line{Text: indent + g.close})
	f.pending = false
	return f
}

// groupOf describes the bracketed constructs that can be exploded.
func (c *Context) groupOf(t *syntax.Tree) (group, bool) {
	switch t.Rule {
	case "call":
		return group{open: []part{child(t.Children[0]), txt("(")}, elems: c.elems(t.Children[1:]), close: ")"}, true
	case "getattr_call":
		name := t.Children[1].(syntax.Leaf)
		return group{open: []part{child(t.Children[0]), txt("." + name.Text + "(")}, elems: c.elems(t.Children[2:]), close: ")"}, true
	case "array":
		return group{open: []part{txt("[")}, elems: c.elems(t.Children), close: "]"}, true
	case "dict":
		return group{open: []part{txt("{")}, elems: c.elems(t.Children), close: "}"}, true
	case "par_expr":
		return group{open: []part{txt("(")}, elems: c.elems(t.Children), close: ")"}, true
	case "func_args", "signal_args", "export_args":
		return group{open: []part{txt("(")}, elems: c.elems(t.Children), close: ")"}, true
	case "enum_def":
		head, elements := "enum {", t.Children
		if len(elements) == 0 {
			return group{open: []part{txt(head)}, close: "}"}, true
		}
		if name, ok := t.Children[0].(syntax.Leaf); ok {
			head, elements = "enum "+name.Text+" {", t.Children[1:]
		}
		return group{open: []part{txt(head)}, elems: c.elems(elements), close: "}"}, true
	default:
		return group{}, false
	}
}

func (c *Context) elems(nodes []syntax.Node) []elem {
	out := make([]elem, 0, len(nodes))
	for _, n := range nodes {
		line, _ := n.Pos()
		e := elem{node: n, line: line}
		if t, ok := n.(*syntax.Tree); ok {
			switch t.Rule {
			case "kv_pair":
				e.prefix, e.node = c.flatOr(t.Children[0])+": ", t.Children[1]
			case "eq_kv_pair":
				e.prefix, e.node = c.flatOr(t.Children[0])+" = ", t.Children[1]
			case "func_arg":
				e.prefix, e.node = c.funcArg(t)
			case "func_arg_inf":
				e.prefix, e.node = c.flatOr(t.Children[0])+" := ", t.Children[1]
			case "enum_element":
				e.prefix, e.node = c.flatOr(t.Children[0]), nil
				if len(t.Children) > 1 {
					e.prefix, e.node = e.prefix+" = ", t.Children[1]
				}
			}
		}
		out = append(out, e)
	}
	return out
}

// funcArg splits `name: Type = default` into the text before the default
// and the default itself.
func (c *Context) funcArg(t *syntax.Tree) (string, syntax.Node) {
	var sb strings.Builder
	var def syntax.Node
	for i, n := range t.Children {
		switch {
		case i == 0:
			sb.WriteString(c.flatOr(n))
		case isRule(n, "type_hint"):
			sb.WriteString(": " + c.typeHint(n.(*syntax.Tree)))
		default:
			def = n
		}
	}
	if def != nil {
		sb.WriteString(" = ")
	}
	return sb.String(), def
}

func isRule(n syntax.Node, rule string) bool {
	t, ok := n.(*syntax.Tree)
	return ok && t.Rule == rule
}

func (c *Context) typeHint(t *syntax.Tree) string {
	var names []string
	nested := ""
	for _, n := range t.Children {
		if sub, ok := n.(*syntax.Tree); ok {
			nested = "[" + c.typeHint(sub) + "]"
			continue
		}
		names = append(names, n.(syntax.Leaf).Text)
	}
	return strings.Join(names, ".") + nested
}

// parts returns the single-line form of every expression rule.
func (c *Context) parts(t *syntax.Tree) []part {
	if g, ok := c.groupOf(t); ok {
		out := append([]part(nil), g.open...)
		for i, e := range g.elems {
			if i > 0 {
				out = append(out, txt(", "))
			}
			out = append(out, txt(e.prefix))
			if e.node != nil {
				out = append(out, child(e.node))
			}
		}
		return append(out, txt(g.close))
	}

	switch t.Rule {
	case "test_expr":
		return []part{child(t.Children[0]), txt(" if "), child(t.Children[1]), txt(" else "), child(t.Children[2])}
	case "or_test", "and_test", "comparison", "bitw_or", "bitw_xor", "bitw_and",
		"shift_expr", "arith_expr", "mdr_expr", "assnmnt_expr":
		out := make([]part, 0, 2*len(t.Children))
		for i, n := range t.Children {
			if i > 0 {
				out = append(out, txt(" "))
			}
			out = append(out, child(n))
		}
		return out
	case "not_test":
		if op := t.Children[0].(syntax.Leaf); op.Kind == token.KwNot {
			return []part{txt("not "), child(t.Children[1])}
		}
		return []part{txt("!"), child(t.Children[1])}
	case "neg_expr", "bitw_not":
		return []part{child(t.Children[0]), child(t.Children[1])}
	case "type_cast":
		return []part{child(t.Children[0]), txt(" as " + c.typeHint(t.Children[1].(*syntax.Tree)))}
	case "type_hint":
		return []part{txt(c.typeHint(t))}
	case "getattr":
		return []part{child(t.Children[0]), txt("." + t.Children[1].(syntax.Leaf).Text)}
	case "subscr_expr":
		return []part{child(t.Children[0]), txt("["), child(t.Children[1]), txt("]")}
	case "get_node":
		return []part{txt("$" + syntax.Text(t))}
	default:
		c.fail(unsupported(t))
		return nil
	}
}

// isBlockLambda reports whether a lambda renders with an indented body.
// Lambdas with parameters are always single-line.
func isBlockLambda(t *syntax.Tree) bool {
	header := t.Child(0)
	body := t.Children[1:]
	if len(body) > 1 {
		return true
	}
	if args := header.Child(0); args != nil && len(args.Children) > 0 {
		return false
	}
	line, _ := body[0].Pos()
	return line > header.EndLine()
}

func (c *Context) lambdaHeader(t *syntax.Tree) string {
	var sb strings.Builder
	sb.WriteString("func")
	for _, n := range t.Child(0).Children {
		switch {
		case isRule(n, "func_args"):
			sb.WriteString(c.flatOr(n))
		case isRule(n, "type_hint"):
			sb.WriteString(" -> " + c.typeHint(n.(*syntax.Tree)))
		default:
			sb.WriteString(" " + c.flatOr(n))
		}
	}
	sb.WriteString(":")
	return sb.String()
}

func (c *Context) flatLambda(t *syntax.Tree) (string, bool) {
	if isBlockLambda(t) {
		return "", false
	}
	stmt, ok := t.Children[1].(*syntax.Tree)
	if !ok {
		return "", false
	}
	body, ok := c.flatStatement(stmt)
	if !ok {
		return "", false
	}
	return c.lambdaHeader(t) + " " + body, true
}

func (c *Context) lambdaFrag(t *syntax.Tree, indent string) frag {
	if !isBlockLambda(t) {
		c.fail(fmt.Errorf("format: lambda body at line %d cannot be rendered inline", t.Line))
		return textFrag(c.lambdaHeader(t), t.Line)
	}
	header := t.Child(0)
	ctx := c.lambdaContext(indent+c.opts().indentUnit(), header.EndLine())
	body, _ := FormatBlock(t.Children[1:], FormatFuncStatement, ctx)
	lines := append(FormattedLines{{SourceLine: t.Line, Text: c.lambdaHeader(t)}}, body...)
	return frag{lines: lines, pending: true}
}

// flatStatement renders a simple statement on one line, for lambda bodies
// written after the header.
func (c *Context) flatStatement(stmt *syntax.Tree) (string, bool) {
	prefix, value, ok := c.simpleStatement(stmt)
	if !ok {
		return "", false
	}
	if value == nil {
		return prefix, true
	}
	s, ok := c.flat(value)
	return prefix + s, ok
}
