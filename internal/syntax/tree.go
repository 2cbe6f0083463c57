package syntax

import (
	"strings"

	"gdtoolkit/internal/token"
)

// Node is either a *Tree or a Leaf.
type Node interface {
	// Pos returns the 1-based position of the first token of the node.
	Pos() (line, col int)
	// EndLine returns the line of the last character of the node.
	EndLine() int
}

// Tree is a rule node.
type Tree struct {
	Rule     string
	Children []Node
	Line     int
	Col      int
}

// Leaf wraps a token kept in the tree.
type Leaf struct {
	token.Token
}

func (t *Tree) Pos() (line, col int) {
	return t.Line, t.Col
}

func (t *Tree) EndLine() int {
	for i := len(t.Children) - 1; i >= 0; i-- {
		if end := t.Children[i].EndLine(); end > 0 {
			return end
		}
	}
	return t.Line
}

func (l Leaf) Pos() (line, col int) {
	return l.Line, l.Col
}

func (l Leaf) EndLine() int {
	return l.Line + strings.Count(l.Text, "\n")
}

// New builds a tree positioned at its first child. Nil children are dropped.
func New(rule string, children ...Node) *Tree {
	t := &Tree{Rule: rule}
	for _, c := range children {
		if c == nil {
			continue
		}
		if tr, ok := c.(*Tree); ok && tr == nil {
			continue
		}
		t.Children = append(t.Children, c)
	}
	if len(t.Children) > 0 {
		t.Line, t.Col = t.Children[0].Pos()
	}
	return t
}

// At builds a tree at an explicit position, used when the first token of the
// construct (a keyword) is not kept as a child.
func At(tok token.Token, rule string, children ...Node) *Tree {
	t := New(rule, children...)
	t.Line, t.Col = tok.Line, tok.Col
	return t
}

// Trees returns the rule children of t in order.
func (t *Tree) Trees() []*Tree {
	out := make([]*Tree, 0, len(t.Children))
	for _, c := range t.Children {
		if tr, ok := c.(*Tree); ok {
			out = append(out, tr)
		}
	}
	return out
}

// Leaves returns the direct token children of t in order.
func (t *Tree) Leaves() []Leaf {
	var out []Leaf
	for _, c := range t.Children {
		if l, ok := c.(Leaf); ok {
			out = append(out, l)
		}
	}
	return out
}

// Child returns the i-th rule child or nil.
func (t *Tree) Child(i int) *Tree {
	trees := t.Trees()
	if i < 0 || i >= len(trees) {
		return nil
	}
	return trees[i]
}

// FirstLeaf returns the first direct token child of kind k.
func (t *Tree) FirstLeaf(k token.Kind) (Leaf, bool) {
	for _, c := range t.Children {
		if l, ok := c.(Leaf); ok && l.Kind == k {
			return l, true
		}
	}
	return Leaf{}, false
}

// FindData returns every subtree with the given rule in pre-order,
// including t itself.
func (t *Tree) FindData(rule string) []*Tree {
	var out []*Tree
	t.Walk(func(n Node) bool {
		if tr, ok := n.(*Tree); ok && tr.Rule == rule {
			out = append(out, tr)
		}
		return true
	})
	return out
}

// Walk visits n and its descendants in pre-order. Returning false from fn
// skips the children of the node just visited.
func Walk(n Node, fn func(Node) bool) {
	if !fn(n) {
		return
	}
	if t, ok := n.(*Tree); ok {
		for _, c := range t.Children {
			Walk(c, fn)
		}
	}
}

func (t *Tree) Walk(fn func(Node) bool) {
	Walk(t, fn)
}

// Text joins the leaf texts of n in order, without separators. Blocks and
// markers are not part of the result.
func Text(n Node) string {
	var sb strings.Builder
	Walk(n, func(c Node) bool {
		if l, ok := c.(Leaf); ok {
			sb.WriteString(l.Text)
		}
		return true
	})
	return sb.String()
}

// Equal reports whether a and b have the same shape and leaf texts.
// Positions are ignored.
func Equal(a, b Node) bool {
	switch x := a.(type) {
	case Leaf:
		y, ok := b.(Leaf)
		return ok && x.Kind == y.Kind && x.Text == y.Text
	case *Tree:
		y, ok := b.(*Tree)
		if !ok || x.Rule != y.Rule || len(x.Children) != len(y.Children) {
			return false
		}
		for i := range x.Children {
			if !Equal(x.Children[i], y.Children[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
