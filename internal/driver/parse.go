package driver

import (
	"context"
	"errors"

	"gdtoolkit/internal/diag"
	"gdtoolkit/internal/indent"
	"gdtoolkit/internal/lexer"
	"gdtoolkit/internal/parser"
	"gdtoolkit/internal/source"
	"gdtoolkit/internal/syntax"
)

// ErrParse marks a file that the formatter or the linter refused because
// it did not parse; its diagnostics are in the result bag.
var ErrParse = errors.New("parse errors present")

type ParseResult struct {
	FileSet  *source.FileSet
	File     *source.File
	Tree     *syntax.Tree // nil when Bag has errors
	Comments []lexer.Comment
	Bag      *diag.Bag
}

// Parse loads and parses the file at path.
func Parse(ctx context.Context, path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	res := parseFile(ctx, fs.Get(fileID), maxDiagnostics)
	res.FileSet = fs
	return res, nil
}

// parseFile runs lexer, normalizer and parser over one file. Lexer
// diagnostics come first in the bag, followed by the parser's.
func parseFile(ctx context.Context, file *source.File, maxDiagnostics int) *ParseResult {
	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	res := parser.ParseFile(ctx, file, indent.New(lx, indent.Options{}), parser.Options{MaxDiagnostics: maxDiagnostics})
	bag.Merge(res.Bag)

	tree := res.Tree
	if bag.HasErrors() {
		tree = nil
	}
	return &ParseResult{
		File:     file,
		Tree:     tree,
		Comments: lx.Comments(),
		Bag:      bag,
	}
}
