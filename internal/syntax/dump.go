package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes an indented rendering of t, one node per line:
//
//	func_def
//	  func_header
//	    Name "f"
func Dump(w io.Writer, t *Tree) error {
	return dump(w, t, 0)
}

// String renders t the way Dump does.
func (t *Tree) String() string {
	var sb strings.Builder
	if err := Dump(&sb, t); err != nil {
		return err.Error()
	}
	return sb.String()
}

func dump(w io.Writer, n Node, depth int) error {
	pad := strings.Repeat("  ", depth)
	switch x := n.(type) {
	case *Tree:
		if _, err := fmt.Fprintf(w, "%s%s\n", pad, x.Rule); err != nil {
			return err
		}
		for _, c := range x.Children {
			if err := dump(w, c, depth+1); err != nil {
				return err
			}
		}
	case Leaf:
		if _, err := fmt.Fprintf(w, "%s%s %q\n", pad, x.Kind, x.Text); err != nil {
			return err
		}
	}
	return nil
}
