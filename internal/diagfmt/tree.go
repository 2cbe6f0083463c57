package diagfmt

import (
	"encoding/json"
	"io"

	"gdtoolkit/internal/syntax"
)

// NodeJSON is the JSON form of a syntax node. Rule nodes carry Rule and
// Children, token leaves carry Kind and Text.
type NodeJSON struct {
	Rule     string     `json:"rule,omitempty"`
	Kind     string     `json:"kind,omitempty"`
	Text     string     `json:"text,omitempty"`
	Line     int        `json:"line"`
	Col      int        `json:"col"`
	Children []NodeJSON `json:"children,omitempty"`
}

// BuildTreeOutput converts n into its JSON form.
func BuildTreeOutput(n syntax.Node) NodeJSON {
	line, col := n.Pos()
	switch x := n.(type) {
	case *syntax.Tree:
		out := NodeJSON{Rule: x.Rule, Line: line, Col: col}
		if len(x.Children) > 0 {
			out.Children = make([]NodeJSON, 0, len(x.Children))
			for _, c := range x.Children {
				out.Children = append(out.Children, BuildTreeOutput(c))
			}
		}
		return out
	case syntax.Leaf:
		return NodeJSON{Kind: x.Kind.String(), Text: x.Text, Line: line, Col: col}
	default:
		return NodeJSON{Line: line, Col: col}
	}
}

// FormatTreePretty writes the indented text dump of t.
func FormatTreePretty(w io.Writer, t *syntax.Tree) error {
	return syntax.Dump(w, t)
}

// FormatTreeJSON writes t as a JSON document.
func FormatTreeJSON(w io.Writer, t *syntax.Tree) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildTreeOutput(t))
}
