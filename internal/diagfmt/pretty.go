package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"fortio.org/safecast"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"gdtoolkit/internal/diag"
	"gdtoolkit/internal/source"
)

// palette holds the colour functions for one rendering; all of them are
// plain when colour is off.
type palette struct {
	err, warn, info, code, caret, dim func(a ...any) string
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) func(a ...any) string {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c.SprintFunc()
	}
	return palette{
		err:   mk(color.FgRed, color.Bold),
		warn:  mk(color.FgYellow, color.Bold),
		info:  mk(color.FgCyan),
		code:  mk(color.Bold),
		caret: mk(color.FgGreen, color.Bold),
		dim:   mk(color.Faint),
	}
}

func (p palette) severity(s diag.Severity) string {
	switch s {
	case diag.SevError:
		return p.err(s.String())
	case diag.SevWarning:
		return p.warn(s.String())
	default:
		return p.info(s.String())
	}
}

// Pretty prints diagnostics for humans, in bag order:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//	   4 | source line
//	     |   ^~~~
//
// Notes follow with the same layout when ShowNotes is set.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	p := newPalette(opts.Color)
	for _, d := range bag.Items() {
		if err := prettyOne(w, p, d, fs, opts); err != nil {
			return err
		}
	}
	return nil
}

func prettyOne(w io.Writer, p palette, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) error {
	f := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)
	path := displayPath(f.Path, opts.PathMode, opts.BaseDir)
	if _, err := fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		path, start.Line, start.Col, p.severity(d.Severity), p.code(d.Code.ID()), d.Message); err != nil {
		return err
	}
	if err := excerpt(w, p, f, start, end, opts.Context); err != nil {
		return err
	}
	if !opts.ShowNotes {
		return nil
	}
	for _, n := range d.Notes {
		ns, ne := fs.Resolve(n.Span)
		nf := fs.Get(n.Span.File)
		if _, err := fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", p.info("note:"),
			displayPath(nf.Path, opts.PathMode, opts.BaseDir), ns.Line, ns.Col, n.Msg); err != nil {
			return err
		}
		if err := excerpt(w, p, nf, ns, ne, 0); err != nil {
			return err
		}
	}
	return nil
}

// excerpt prints the primary line, context lines above it, and a caret
// line under the span. Multi-line spans are underlined to the end of the
// first line.
func excerpt(w io.Writer, p palette, f *source.File, start, end source.LineCol, context int) error {
	if start.Line == 0 {
		return nil
	}
	first := max(int(start.Line)-context, 1)
	gutter := len(fmt.Sprint(start.Line))
	for ln := first; ln <= int(start.Line); ln++ {
		text := f.GetLine(lineNo(ln))
		if _, err := fmt.Fprintf(w, "%s %s\n", p.dim(fmt.Sprintf("%*d |", gutter, ln)), expandTabs(text)); err != nil {
			return err
		}
	}
	line := f.GetLine(start.Line)
	prefix := prefixWidth(line, int(start.Col)-1)
	width := 1
	if end.Line == start.Line && end.Col > start.Col {
		width = prefixWidth(line, int(end.Col)-1) - prefix
	} else if end.Line > start.Line {
		width = max(runewidth.StringWidth(expandTabs(line))-prefix, 1)
	}
	marker := "^" + strings.Repeat("~", max(width-1, 0))
	_, err := fmt.Fprintf(w, "%s %s%s\n", p.dim(strings.Repeat(" ", gutter)+" |"), strings.Repeat(" ", prefix), p.caret(marker))
	return err
}

const tabWidth = 4

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}

// prefixWidth is the display width of the first n bytes of line.
func prefixWidth(line string, n int) int {
	n = min(max(n, 0), len(line))
	return runewidth.StringWidth(expandTabs(line[:n]))
}

func lineNo(n int) uint32 {
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		return 0
	}
	return v
}
