package fuzztests

import (
	"testing"

	"gdtoolkit/internal/diag"
	"gdtoolkit/internal/indent"
	"gdtoolkit/internal/lexer"
	"gdtoolkit/internal/source"
	"gdtoolkit/internal/token"
)

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(_ *testing.T, input []byte) {
		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.gd", clampInput(input)))

		bag := diag.NewBag(64)
		lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
		for {
			if tok := lx.Next(); tok.Kind == token.EOF {
				break
			}
		}
	})
}

func FuzzIndentNormalizer(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.gd", clampInput(input)))

		lx := lexer.New(file, lexer.Options{})
		n := indent.New(lx, indent.Options{})
		// every token consumes input, so the stream is bounded by its length
		limit := 4*len(input) + 16
		for i := 0; ; i++ {
			if i > limit {
				t.Fatalf("normalizer produced more than %d tokens", limit)
			}
			tok, err := n.Next()
			if err != nil || tok.Kind == token.EOF {
				return
			}
		}
	})
}
