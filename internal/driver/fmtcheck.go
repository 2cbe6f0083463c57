package driver

import (
	"context"
	"errors"
	"fmt"

	"gdtoolkit/internal/diag"
	"gdtoolkit/internal/source"
	"gdtoolkit/internal/syntax"
)

// ErrUnstable marks formatter output rejected by the re-parse check.
var ErrUnstable = errors.New("formatted output rejected")

// verifyFormatted parses formatted again and compares it to the original
// parse: the output must parse, produce the same tree shape and keep every
// comment.
func verifyFormatted(ctx context.Context, orig *ParseResult, formatted []byte) error {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(orig.File.Path, formatted))
	again := parseFile(ctx, file, 1)
	switch {
	case again.Tree == nil:
		reason := "output does not parse"
		if items := again.Bag.Items(); len(items) > 0 {
			start, _ := fs.Resolve(items[0].Primary)
			reason = fmt.Sprintf("%s: %d:%d: %s", reason, start.Line, start.Col, items[0].Message)
		}
		return fmt.Errorf("%w: %s", ErrUnstable, reason)
	case !syntax.Equal(orig.Tree, again.Tree):
		return fmt.Errorf("%w: output changes the syntax tree", ErrUnstable)
	case len(again.Comments) != len(orig.Comments):
		return fmt.Errorf("%w: output has %d comments, source has %d", ErrUnstable, len(again.Comments), len(orig.Comments))
	}
	return nil
}

func unstableDiagnostic(file *source.File, err error) diag.Diagnostic {
	return diag.New(diag.SevError, diag.IOFormatUnstable, source.Span{File: file.ID}, err.Error())
}
