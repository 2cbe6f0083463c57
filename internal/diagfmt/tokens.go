package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"gdtoolkit/internal/source"
	"gdtoolkit/internal/token"
)

type TokenOutput struct {
	Kind string      `json:"kind"`
	Text string      `json:"text,omitempty"`
	Line int         `json:"line"`
	Col  int         `json:"col"`
	Span source.Span `json:"span"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	for i, tok := range tokens {
		text := ""
		if tok.Text != "" {
			text = fmt.Sprintf(" %q", tok.Text)
		}
		if _, err := fmt.Fprintf(w, "%3d: %-12s%s at %d:%d\n", i+1, tok.Kind, text, tok.Line, tok.Col); err != nil {
			return err
		}
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, TokenOutput{
			Kind: tok.Kind.String(),
			Text: tok.Text,
			Line: tok.Line,
			Col:  tok.Col,
			Span: tok.Span,
		})
		if tok.Kind == token.EOF {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
