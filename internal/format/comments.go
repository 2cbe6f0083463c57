package format

import (
	"slices"
	"strings"
)

// placeComments re-attaches the comments that no block placed: inline
// comments and standalone comments inside a multi-line statement. A
// comment goes after the last output line rendered from at or before its
// source line; an inline comment shares that line unless it already holds
// one.
func (c *Context) placeComments(lines FormattedLines) FormattedLines {
	tagged := make([]bool, len(lines))
	for i, l := range lines {
		if cm, ok := c.shared.standalone[l.SourceLine]; ok && strings.TrimSpace(l.Text) == strings.TrimSpace(cm.Text) {
			tagged[i] = true
		}
	}
	for _, cm := range c.shared.comments {
		if cm.Standalone && c.shared.emitted[cm.Line] {
			continue
		}
		text := strings.TrimRight(cm.Text, " \t")
		target := -1
		for i, l := range lines {
			if l.SourceLine > 0 && l.SourceLine <= cm.Line {
				target = i
			}
		}
		if target < 0 {
			lines = slices.Insert(lines, 0, Line{SourceLine: cm.Line, Text: text})
			tagged = slices.Insert(tagged, 0, true)
			continue
		}
		if !cm.Standalone && !tagged[target] {
			lines[target].Text += "  " + text
			tagged[target] = true
			continue
		}
		lines = slices.Insert(lines, target+1, Line{SourceLine: cm.Line, Text: leadingSpace(lines[target].Text) + text})
		tagged = slices.Insert(tagged, target+1, true)
	}
	return lines
}

func leadingSpace(s string) string {
	return s[:len(s)-len(strings.TrimLeft(s, " \t"))]
}
