package format

import (
	"strings"

	"gdtoolkit/internal/lexer"
	"gdtoolkit/internal/source"
	"gdtoolkit/internal/syntax"
)

// FormatFile renders tree, parsed from file, in canonical layout. comments
// is the lexer's comment list for the same file. The result always ends
// with a newline unless it is empty.
func FormatFile(file *source.File, tree *syntax.Tree, comments []lexer.Comment, opts Options) ([]byte, error) {
	ctx := NewContext(file, comments, opts)
	lines, _ := FormatBlock(tree.Children, FormatClassStatement, ctx)
	if err := ctx.shared.err; err != nil {
		return nil, err
	}
	lines = ctx.placeComments(lines)

	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(strings.TrimRight(l.Text, " \t"))
		sb.WriteByte('\n')
	}
	return []byte(sb.String()), nil
}
