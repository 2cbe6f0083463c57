package lint

import (
	"gdtoolkit/internal/syntax"
	"gdtoolkit/internal/token"
)

var blockStatements = map[string]bool{
	"tool_stmt": true, "signal_stmt": true, "extends_stmt": true, "classname_stmt": true,
	"class_var_stmt": true, "const_stmt": true, "export_stmt": true, "onready_stmt": true,
	"enum_def": true, "func_def": true, "class_def": true, "pass_stmt": true,
	"func_var_stmt": true, "expr_stmt": true, "return_stmt": true, "break_stmt": true,
	"continue_stmt": true, "if_stmt": true, "while_stmt": true, "for_stmt": true,
}

// unnecessaryPass reports pass statements sharing their block with other
// statements.
func (l *linter) unnecessaryPass() []Problem {
	var out []Problem
	l.tree.Walk(func(n syntax.Node) bool {
		t, ok := n.(*syntax.Tree)
		if !ok {
			return false
		}
		var stmts, passes []*syntax.Tree
		for _, c := range t.Trees() {
			if blockStatements[c.Rule] {
				stmts = append(stmts, c)
				if c.Rule == "pass_stmt" {
					passes = append(passes, c)
				}
			}
		}
		if len(stmts) > 1 {
			for _, p := range passes {
				out = append(out, Problem{
					Name:        "unnecessary-pass",
					Description: `"pass" statement not necessary`,
					Line:        p.Line,
					Column:      p.Col,
				})
			}
		}
		return true
	})
	return out
}

// expressionNotAssigned reports expression statements with no effect: any
// expression except calls, assignments and strings standing as
// documentation.
func (l *linter) expressionNotAssigned() []Problem {
	var out []Problem
	for _, stmt := range l.tree.FindData("expr_stmt") {
		switch x := stmt.Children[0].(type) {
		case syntax.Leaf:
			if x.Kind == token.String {
				continue
			}
		case *syntax.Tree:
			switch x.Rule {
			case "call", "getattr_call", "assnmnt_expr":
				continue
			}
		}
		out = append(out, Problem{
			Name:        "expression-not-assigned",
			Description: "Expression is not assigned, and hence it can be removed",
			Line:        stmt.Line,
			Column:      stmt.Col,
		})
	}
	return out
}

// comparisonWithItself reports comparisons whose operands are the same
// text, such as `a == a`.
func (l *linter) comparisonWithItself() []Problem {
	var out []Problem
	for _, cmp := range l.tree.FindData("comparison") {
		for i := 0; i+2 < len(cmp.Children); i += 2 {
			left, right := cmp.Children[i], cmp.Children[i+2]
			if !syntax.Equal(left, right) {
				continue
			}
			line, col := left.Pos()
			out = append(out, Problem{
				Name:        "comparison-with-itself",
				Description: "Redundant comparison",
				Line:        line,
				Column:      col,
			})
		}
	}
	return out
}
