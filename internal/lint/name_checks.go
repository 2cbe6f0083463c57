package lint

import (
	"fmt"
	"regexp"

	"golang.org/x/text/unicode/norm"

	"gdtoolkit/internal/config"
	"gdtoolkit/internal/syntax"
	"gdtoolkit/internal/token"
)

// nameCheck matches the names found by collect against a configured pattern.
type nameCheck struct {
	name    string
	label   string
	pattern func(config.Lint) string
	collect func(*syntax.Tree) []syntax.Leaf
}

var nameChecks = []nameCheck{
	{"function-name", "Function", func(c config.Lint) string { return c.FunctionName }, funcNames},
	{"class-name", "Class", func(c config.Lint) string { return c.ClassName }, firstNames("classname_stmt")},
	{"sub-class-name", "Sub-class", func(c config.Lint) string { return c.SubClassName }, firstNames("class_def")},
	{"signal-name", "Signal", func(c config.Lint) string { return c.SignalName }, firstNames("signal_stmt")},
	{"class-variable-name", "Class-variable", func(c config.Lint) string { return c.ClassVariableName }, classVarNames},
	{"function-variable-name", "Function-variable", func(c config.Lint) string { return c.FunctionVariableName }, declNames("func_var_stmt")},
	{"function-argument-name", "Function-argument", func(c config.Lint) string { return c.FunctionArgumentName }, argNames},
	{"loop-variable-name", "Loop-variable", func(c config.Lint) string { return c.LoopVariableName }, firstNames("for_stmt")},
	{"enum-name", "Enum", func(c config.Lint) string { return c.EnumName }, firstNames("enum_def")},
	{"enum-element-name", "Enum-element", func(c config.Lint) string { return c.EnumElementName }, firstNames("enum_element")},
	{"constant-name", "Constant", func(c config.Lint) string { return c.ConstantName }, firstNames("const_stmt")},
}

func (l *linter) names() []Problem {
	var out []Problem
	for _, c := range nameChecks {
		if l.cfg.Disabled(c.name) {
			continue
		}
		re, err := regexp.Compile(`^(?:` + c.pattern(l.cfg) + `)$`)
		if err != nil {
			continue
		}
		for _, name := range c.collect(l.tree) {
			if re.MatchString(norm.NFC.String(name.Text)) {
				continue
			}
			out = append(out, Problem{
				Name:        c.name,
				Description: fmt.Sprintf("%s name %q is not valid", c.label, name.Text),
				Line:        name.Line,
				Column:      name.Col,
			})
		}
	}
	return out
}

// firstNames returns the first Name leaf of every node with the rule.
func firstNames(rule string) func(*syntax.Tree) []syntax.Leaf {
	return func(tree *syntax.Tree) []syntax.Leaf {
		var out []syntax.Leaf
		for _, t := range tree.FindData(rule) {
			if name, ok := t.FirstLeaf(token.Name); ok {
				out = append(out, name)
			}
		}
		return out
	}
}

// declNames returns the declared names of the variable statements with rule.
func declNames(rules ...string) func(*syntax.Tree) []syntax.Leaf {
	return func(tree *syntax.Tree) []syntax.Leaf {
		var out []syntax.Leaf
		tree.Walk(func(n syntax.Node) bool {
			t, ok := n.(*syntax.Tree)
			if !ok {
				return true
			}
			for _, r := range rules {
				if t.Rule != r {
					continue
				}
				decl := t.Child(0)
				if decl.Rule == "export_args" {
					decl = t.Child(1)
				}
				if name, ok := decl.FirstLeaf(token.Name); ok {
					out = append(out, name)
				}
			}
			return true
		})
		return out
	}
}

var classVarNames = declNames("class_var_stmt", "export_stmt", "onready_stmt")

func funcNames(tree *syntax.Tree) []syntax.Leaf {
	var out []syntax.Leaf
	for _, h := range tree.FindData("func_header") {
		if name, ok := h.FirstLeaf(token.Name); ok {
			out = append(out, name)
		}
	}
	return out
}

func argNames(tree *syntax.Tree) []syntax.Leaf {
	var out []syntax.Leaf
	for _, args := range tree.FindData("func_args") {
		for _, arg := range args.Trees() {
			if name, ok := arg.FirstLeaf(token.Name); ok {
				out = append(out, name)
			}
		}
	}
	return out
}
