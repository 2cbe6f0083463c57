package lint

import (
	"fmt"
	"slices"
	"strings"

	"gdtoolkit/internal/syntax"
	"gdtoolkit/internal/token"
)

func (l *linter) privateMethodCall() []Problem {
	var out []Problem
	for _, call := range l.tree.FindData("getattr_call") {
		if obj, ok := call.Children[0].(syntax.Leaf); ok && obj.Kind == token.Name && obj.Text == "self" {
			continue
		}
		name := call.Children[1].(syntax.Leaf)
		if !strings.HasPrefix(name.Text, "_") {
			continue
		}
		out = append(out, Problem{
			Name:        "private-method-call",
			Description: fmt.Sprintf("Private method %q has been called", name.Text),
			Line:        name.Line,
			Column:      name.Col,
		})
	}
	return out
}

func (l *linter) classDefinitionsOrder() []Problem {
	out := l.checkOrder("global scope", l.tree.Children)
	for _, class := range l.tree.FindData("class_def") {
		name := class.Children[0].(syntax.Leaf)
		out = append(out, l.checkOrder("class "+name.Text, class.Children)...)
	}
	return out
}

// checkOrder reports statements whose section comes before the section of
// an earlier statement. Sections missing from the configured order are not
// checked.
func (l *linter) checkOrder(scope string, stmts []syntax.Node) []Problem {
	order := l.cfg.ClassDefinitionsOrder
	if len(order) == 0 {
		return nil
	}
	var out []Problem
	current := 0
	for _, n := range stmts {
		stmt, ok := n.(*syntax.Tree)
		if !ok {
			continue
		}
		rank := slices.Index(order, section(stmt))
		if rank < 0 {
			continue
		}
		if rank >= current {
			current = rank
			continue
		}
		out = append(out, Problem{
			Name:        "class-definitions-order",
			Description: "Definition out of order in " + scope,
			Line:        stmt.Line,
			Column:      stmt.Col,
		})
	}
	return out
}

func section(stmt *syntax.Tree) string {
	switch stmt.Rule {
	case "tool_stmt":
		return "tools"
	case "signal_stmt":
		return "signals"
	case "extends_stmt":
		return "extends"
	case "classname_stmt":
		return "classnames"
	case "const_stmt":
		return "consts"
	case "export_stmt":
		return "exports"
	case "enum_def":
		return "enums"
	case "class_var_stmt":
		if private(stmt.Child(0)) {
			return "prvvars"
		}
		return "pubvars"
	case "onready_stmt":
		if private(stmt.Child(0)) {
			return "onreadyprvvars"
		}
		return "onreadypubvars"
	default:
		return "others"
	}
}

func private(decl *syntax.Tree) bool {
	if decl == nil {
		return false
	}
	name, ok := decl.FirstLeaf(token.Name)
	return ok && strings.HasPrefix(name.Text, "_")
}
