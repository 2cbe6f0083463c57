package lint_test

import (
	"context"
	"reflect"
	"slices"
	"testing"

	"gdtoolkit/internal/config"
	"gdtoolkit/internal/indent"
	"gdtoolkit/internal/lexer"
	"gdtoolkit/internal/lint"
	"gdtoolkit/internal/parser"
	"gdtoolkit/internal/source"
)

func lintSource(t *testing.T, src string, cfg config.Lint) []lint.Problem {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.gd", []byte(src)))
	lx := lexer.New(file, lexer.Options{})
	res := parser.ParseFile(context.Background(), file, indent.New(lx, indent.Options{}), parser.Options{})
	if res.Tree == nil {
		t.Fatalf("parse failed for %q", src)
	}
	return lint.Lint(res.Tree, file, cfg)
}

func only(problems []lint.Problem, names ...string) []lint.Problem {
	var out []lint.Problem
	for _, p := range problems {
		if slices.Contains(names, p.Name) {
			out = append(out, p)
		}
	}
	return out
}

func check(t *testing.T, got, want []lint.Problem) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("problems mismatch\n got: %+v\nwant: %+v", got, want)
	}
}

func TestPrivateMethodCall(t *testing.T) {
	got := lintSource(t, "func f():\n\tobj._hidden()\n\tself._ok()\n\tobj.visible()\n", config.DefaultLint())
	check(t, got, []lint.Problem{
		{Name: "private-method-call", Description: `Private method "_hidden" has been called`, Line: 2, Column: 6},
	})
}

func TestClassDefinitionsOrder(t *testing.T) {
	src := "var a\nsignal s\nclass Inner:\n\tfunc f():\n\t\tpass\n\tconst X = 1\nonready var _b\nonready var c\n"
	got := only(lintSource(t, src, config.DefaultLint()), "class-definitions-order")
	check(t, got, []lint.Problem{
		{Name: "class-definitions-order", Description: "Definition out of order in global scope", Line: 2, Column: 1},
		{Name: "class-definitions-order", Description: "Definition out of order in class Inner", Line: 6, Column: 2},
		{Name: "class-definitions-order", Description: "Definition out of order in global scope", Line: 7, Column: 1},
		{Name: "class-definitions-order", Description: "Definition out of order in global scope", Line: 8, Column: 1},
	})
}

func TestClassDefinitionsOrder_UnlistedSectionsAreIgnored(t *testing.T) {
	cfg := config.DefaultLint()
	cfg.ClassDefinitionsOrder = []string{"consts", "pubvars"}
	got := only(lintSource(t, "var a\nsignal s\nconst B = 1\n", cfg), "class-definitions-order")
	check(t, got, []lint.Problem{
		{Name: "class-definitions-order", Description: "Definition out of order in global scope", Line: 3, Column: 1},
	})
}

func TestNameChecks(t *testing.T) {
	src := "class_name player\nsignal Hit\nconst lower = 1\nenum colors {red}\nvar BadVar\n" +
		"func BadFunc(Arg):\n\tvar X = 1\n\tfor I in []:\n\t\tpass\nclass inner:\n\tpass\n" +
		"func _on_Timer_timeout(_unused):\n\tpass\n"
	names := []string{
		"class-name", "sub-class-name", "signal-name", "constant-name", "enum-name",
		"enum-element-name", "class-variable-name", "function-name", "function-argument-name",
		"function-variable-name", "loop-variable-name",
	}
	got := only(lintSource(t, src, config.DefaultLint()), names...)
	check(t, got, []lint.Problem{
		{Name: "class-name", Description: `Class name "player" is not valid`, Line: 1, Column: 12},
		{Name: "signal-name", Description: `Signal name "Hit" is not valid`, Line: 2, Column: 8},
		{Name: "constant-name", Description: `Constant name "lower" is not valid`, Line: 3, Column: 7},
		{Name: "enum-name", Description: `Enum name "colors" is not valid`, Line: 4, Column: 6},
		{Name: "enum-element-name", Description: `Enum-element name "red" is not valid`, Line: 4, Column: 14},
		{Name: "class-variable-name", Description: `Class-variable name "BadVar" is not valid`, Line: 5, Column: 5},
		{Name: "function-name", Description: `Function name "BadFunc" is not valid`, Line: 6, Column: 6},
		{Name: "function-argument-name", Description: `Function-argument name "Arg" is not valid`, Line: 6, Column: 14},
		{Name: "function-variable-name", Description: `Function-variable name "X" is not valid`, Line: 7, Column: 6},
		{Name: "loop-variable-name", Description: `Loop-variable name "I" is not valid`, Line: 8, Column: 6},
		{Name: "sub-class-name", Description: `Sub-class name "inner" is not valid`, Line: 10, Column: 7},
	})
}

func TestBasicChecks(t *testing.T) {
	src := "func f():\n\tpass\n\tx\n\ta == a\n\t\"doc\"\n\tg()\n\nfunc g():\n\tpass\n"
	got := only(lintSource(t, src, config.DefaultLint()), "unnecessary-pass", "expression-not-assigned", "comparison-with-itself")
	check(t, got, []lint.Problem{
		{Name: "unnecessary-pass", Description: `"pass" statement not necessary`, Line: 2, Column: 2},
		{Name: "expression-not-assigned", Description: "Expression is not assigned, and hence it can be removed", Line: 3, Column: 2},
		{Name: "comparison-with-itself", Description: "Redundant comparison", Line: 4, Column: 2},
		{Name: "expression-not-assigned", Description: "Expression is not assigned, and hence it can be removed", Line: 4, Column: 2},
	})
}

func TestFormatChecks(t *testing.T) {
	cfg := config.DefaultLint()
	cfg.MaxLineLength = 10
	cfg.MaxFileLines = 2
	got := only(lintSource(t, "func f():\n \tvar a = 1  \n \tpass\n", cfg),
		"max-line-length", "max-file-lines", "trailing-whitespace", "mixed-tabs-and-spaces")
	check(t, got, []lint.Problem{
		{Name: "max-line-length", Description: "Max allowed line length (10) exceeded", Line: 2, Column: 1},
		{Name: "mixed-tabs-and-spaces", Description: "Mixed tabs and spaces", Line: 2, Column: 1},
		{Name: "trailing-whitespace", Description: "Trailing whitespace(s)", Line: 2, Column: 12},
		{Name: "max-file-lines", Description: "Max allowed file lines num (2) exceeded", Line: 3, Column: 1},
		{Name: "mixed-tabs-and-spaces", Description: "Mixed tabs and spaces", Line: 3, Column: 1},
	})
}

func TestDisable(t *testing.T) {
	cfg := config.DefaultLint()
	cfg.Disable = []string{"private-method-call", "function-name"}
	if got := lintSource(t, "func F():\n\tobj._hidden()\n", cfg); len(got) != 0 {
		t.Errorf("disabled checks reported %+v", got)
	}
}

func TestChecksListsEveryRule(t *testing.T) {
	names := lint.Checks()
	for _, want := range []string{"private-method-call", "class-definitions-order", "constant-name", "max-line-length"} {
		if !slices.Contains(names, want) {
			t.Errorf("Checks() lacks %q", want)
		}
	}
	if !slices.IsSorted(names) {
		t.Error("Checks() is not sorted")
	}
}
