package driver

import (
	"gdtoolkit/internal/diag"
	"gdtoolkit/internal/indent"
	"gdtoolkit/internal/lexer"
	"gdtoolkit/internal/source"
	"gdtoolkit/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize lexes the file at path. With raw the flat lexer stream is
// returned; otherwise the stream is passed through the indentation
// normalizer, which stops at the first structural error.
func Tokenize(path string, raw bool, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})

	var tokens []token.Token
	if raw {
		for {
			tok := lx.Next()
			tokens = append(tokens, tok)
			if tok.Kind == token.EOF {
				break
			}
		}
	} else {
		norm := indent.New(lx, indent.Options{Reporter: reporter})
		for {
			tok, err := norm.Next()
			if err != nil {
				break
			}
			tokens = append(tokens, tok)
			if tok.Kind == token.EOF {
				break
			}
		}
	}

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}, nil
}
