package lint

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

func (l *linter) lineWidth(line string) int {
	tabs := strings.Count(line, "\t")
	return runewidth.StringWidth(strings.ReplaceAll(line, "\t", "")) + tabs*max(l.cfg.TabCharacters, 1)
}

func (l *linter) maxLineLength() []Problem {
	var out []Problem
	for i, line := range l.file.Lines() {
		if l.lineWidth(line) > l.cfg.MaxLineLength {
			out = append(out, Problem{
				Name:        "max-line-length",
				Description: fmt.Sprintf("Max allowed line length (%d) exceeded", l.cfg.MaxLineLength),
				Line:        i + 1,
				Column:      1,
			})
		}
	}
	return out
}

func (l *linter) maxFileLines() []Problem {
	n := len(l.file.Lines())
	if n <= l.cfg.MaxFileLines {
		return nil
	}
	return []Problem{{
		Name:        "max-file-lines",
		Description: fmt.Sprintf("Max allowed file lines num (%d) exceeded", l.cfg.MaxFileLines),
		Line:        n,
		Column:      1,
	}}
}

func (l *linter) trailingWhitespace() []Problem {
	var out []Problem
	for i, line := range l.file.Lines() {
		trimmed := strings.TrimRight(line, " \t")
		if len(trimmed) == len(line) {
			continue
		}
		out = append(out, Problem{
			Name:        "trailing-whitespace",
			Description: "Trailing whitespace(s)",
			Line:        i + 1,
			Column:      len(trimmed) + 1,
		})
	}
	return out
}

func (l *linter) mixedTabsAndSpaces() []Problem {
	var out []Problem
	for i, line := range l.file.Lines() {
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if strings.Contains(indent, " ") && strings.Contains(indent, "\t") {
			out = append(out, Problem{
				Name:        "mixed-tabs-and-spaces",
				Description: "Mixed tabs and spaces",
				Line:        i + 1,
				Column:      1,
			})
		}
	}
	return out
}
