package fuzztests

import (
	"context"
	"testing"
	"time"

	"gdtoolkit/internal/format"
	"gdtoolkit/internal/indent"
	"gdtoolkit/internal/lexer"
	"gdtoolkit/internal/parser"
	"gdtoolkit/internal/source"
)

// parseTimeout is the maximum time allowed for a single input.
const parseTimeout = 5 * time.Second

func FuzzParserBuildsTree(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.gd", clampInput(input)))
		lx := lexer.New(file, lexer.Options{})
		res := parser.ParseFile(context.Background(), file, indent.New(lx, indent.Options{}), parser.Options{MaxDiagnostics: 128})
		if res.Tree == nil && !res.Bag.HasErrors() {
			t.Fatalf("parse failed without diagnostics")
		}
	})
}

// FuzzParserNoHang guards error recovery against endless loops.
func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)
	f.Add([]byte("func f():\n\tif a:\n\t\tif b:\n\t\t\tif c:\n"))
	f.Add([]byte("((((((((((((((((((((\n"))
	f.Add([]byte("var x = [1, 2,\n\n\n"))

	f.Fuzz(func(t *testing.T, input []byte) {
		ctx, cancel := context.WithTimeout(context.Background(), parseTimeout)
		defer cancel()

		done := make(chan struct{})
		go func() {
			defer close(done)
			fs := source.NewFileSet()
			file := fs.Get(fs.AddVirtual("fuzz.gd", clampInput(input)))
			lx := lexer.New(file, lexer.Options{})
			_ = parser.ParseFile(ctx, file, indent.New(lx, indent.Options{}), parser.Options{MaxDiagnostics: 128})
		}()

		select {
		case <-done:
		case <-ctx.Done():
			t.Fatalf("parser did not finish within %s (input length %d)", parseTimeout, len(input))
		}
	})
}

// FuzzFormatter runs the formatter over every input that parses.
func FuzzFormatter(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.gd", clampInput(input)))
		lx := lexer.New(file, lexer.Options{})
		res := parser.ParseFile(context.Background(), file, indent.New(lx, indent.Options{}), parser.Options{})
		if res.Tree == nil {
			return
		}
		out, err := format.FormatFile(file, res.Tree, lx.Comments(), format.Options{})
		if err != nil {
			return
		}
		if len(out) > 0 && out[len(out)-1] != '\n' {
			t.Fatalf("formatted output lacks a final newline: %q", out)
		}
	})
}
