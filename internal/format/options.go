package format

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type Options struct {
	LineLength  int  // maximum display width of a line, default 100
	IndentWidth int  // spaces per level when UseSpaces, tab display width otherwise
	UseSpaces   bool // indent with spaces instead of tabs
}

const (
	defaultLineLength  = 100
	defaultIndentWidth = 4

	classBlankLines = 2
	funcBlankLines  = 1
)

func (o Options) withDefaults() Options {
	if o.LineLength <= 0 {
		o.LineLength = defaultLineLength
	}
	if o.IndentWidth <= 0 {
		o.IndentWidth = defaultIndentWidth
	}
	return o
}

func (o Options) indentUnit() string {
	if o.UseSpaces {
		return strings.Repeat(" ", o.IndentWidth)
	}
	return "\t"
}

// width is the display width of a line with tabs expanded.
func (o Options) width(line string) int {
	n := strings.Count(line, "\t")
	if n == 0 {
		return runewidth.StringWidth(line)
	}
	return runewidth.StringWidth(strings.ReplaceAll(line, "\t", "")) + n*o.IndentWidth
}
