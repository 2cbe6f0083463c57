package format

import (
	"fmt"

	"fortio.org/safecast"

	"gdtoolkit/internal/syntax"
)

// StatementFormatter renders one statement and returns the last input line
// it covered.
type StatementFormatter func(stmt *syntax.Tree, ctx *Context) (FormattedLines, int)

// FormatBlock renders a sequence of statements sharing ctx's indentation.
// Blank lines between statements survive up to ctx.MaxBlankLines; blank
// lines at the start and at the end of the block are dropped. Standalone
// comments between statements are re-indented to the block level, and
// comments following the last statement stay in the block while they are
// indented at least as deep as its statements.
func FormatBlock(stmts []syntax.Node, format StatementFormatter, ctx *Context) (FormattedLines, int) {
	var out FormattedLines
	last := ctx.PreviouslyProcessedLine
	blockCol := 0
	for _, n := range stmts {
		stmt, ok := n.(*syntax.Tree)
		if !ok {
			continue
		}
		if blockCol == 0 {
			blockCol = stmt.Col
		}
		out = append(out, ctx.reconstructGap(last, stmt.Line, len(out) == 0)...)
		lines, end := format(stmt, ctx)
		out = append(out, lines...)
		last = max(end, stmt.Line)
	}
	tail, end := ctx.reconstructTail(last, blockCol)
	return append(out, tail...), end
}

// reconstructGap renders the input lines strictly between from and to.
func (c *Context) reconstructGap(from, to int, atStart bool) FormattedLines {
	var out FormattedLines
	blanks := 0
	for l := from + 1; l < to; l++ {
		if cm, ok := c.shared.standalone[l]; ok && !c.shared.emitted[l] {
			out = c.flushBlanks(out, blanks, atStart && len(out) == 0)
			blanks = 0
			c.shared.emitted[l] = true
			out = append(out, c.line(cm.Text, l))
			continue
		}
		if c.shared.file.IsBlankLine(lineNo(l)) {
			blanks++
		}
	}
	return c.flushBlanks(out, blanks, atStart && len(out) == 0)
}

// reconstructTail absorbs the comments that follow the last statement of a
// block and are indented at least to blockCol. Trailing blank lines are not
// kept. At the top level every remaining comment belongs to the block.
func (c *Context) reconstructTail(from, blockCol int) (FormattedLines, int) {
	if c.inLambda {
		return nil, from
	}
	var out FormattedLines
	last := from
	blanks := 0
	total := c.shared.file.LineCount()
	for l := from + 1; l <= total; l++ {
		cm, ok := c.shared.standalone[l]
		switch {
		case ok && !c.shared.emitted[l] && (c.IndentString == "" || cm.Col >= blockCol):
			out = c.flushBlanks(out, blanks, false)
			blanks = 0
			c.shared.emitted[l] = true
			out = append(out, c.line(cm.Text, l))
			last = l
		case !ok && c.shared.file.IsBlankLine(lineNo(l)):
			blanks++
		default:
			return out, last
		}
	}
	return out, last
}

func (c *Context) flushBlanks(out FormattedLines, n int, atStart bool) FormattedLines {
	if atStart {
		return out
	}
	for range min(n, c.MaxBlankLines) {
		out = append(out, Line{})
	}
	return out
}

func lineNo(l int) uint32 {
	n, err := safecast.Conv[uint32](l)
	if err != nil {
		return 0
	}
	return n
}

func unsupported(t *syntax.Tree) error {
	return fmt.Errorf("format: unsupported rule %q at line %d", t.Rule, t.Line)
}
