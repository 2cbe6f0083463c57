// Package lint implements gdlint's style checks over a parsed GDScript file.
package lint

import (
	"cmp"
	"slices"

	"gdtoolkit/internal/config"
	"gdtoolkit/internal/source"
	"gdtoolkit/internal/syntax"
)

// Problem is one finding. Line and Column are 1-based.
type Problem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Line        int    `json:"line"`
	Column      int    `json:"column"`
}

type check struct {
	name string
	run  func(*linter) []Problem
}

type linter struct {
	tree *syntax.Tree
	file *source.File
	cfg  config.Lint
}

var checks = []check{
	{"private-method-call", (*linter).privateMethodCall},
	{"class-definitions-order", (*linter).classDefinitionsOrder},
	{"unnecessary-pass", (*linter).unnecessaryPass},
	{"expression-not-assigned", (*linter).expressionNotAssigned},
	{"comparison-with-itself", (*linter).comparisonWithItself},
	{"max-line-length", (*linter).maxLineLength},
	{"max-file-lines", (*linter).maxFileLines},
	{"trailing-whitespace", (*linter).trailingWhitespace},
	{"mixed-tabs-and-spaces", (*linter).mixedTabsAndSpaces},
}

// Checks returns the names of every check, name checks included.
func Checks() []string {
	out := make([]string, 0, len(checks)+len(nameChecks))
	for _, c := range checks {
		out = append(out, c.name)
	}
	for _, c := range nameChecks {
		out = append(out, c.name)
	}
	slices.Sort(out)
	return out
}

// Lint runs every enabled check and returns the problems ordered by
// position.
func Lint(tree *syntax.Tree, file *source.File, cfg config.Lint) []Problem {
	l := &linter{tree: tree, file: file, cfg: cfg}
	var out []Problem
	for _, c := range checks {
		if cfg.Disabled(c.name) {
			continue
		}
		out = append(out, c.run(l)...)
	}
	out = append(out, l.names()...)
	slices.SortStableFunc(out, func(a, b Problem) int {
		return cmp.Or(
			cmp.Compare(a.Line, b.Line),
			cmp.Compare(a.Column, b.Column),
			cmp.Compare(a.Name, b.Name),
		)
	})
	return out
}
