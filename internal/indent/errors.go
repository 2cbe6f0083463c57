package indent

import (
	"errors"
	"fmt"

	"gdtoolkit/internal/source"
)

// ErrInternalInvariant signals a defect in the normalizer itself: the indent
// stack did not return to the base level at end of stream.
var ErrInternalInvariant = errors.New("indent: internal invariant violated")

// StructuralError is returned when a dedent does not land on a previously
// opened indentation level. The position is the first character of the
// offending line.
type StructuralError struct {
	Line     int
	Col      int
	Span     source.Span
	Indent   int // observed indentation width
	Expected int // level the dedent stopped at
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Col, e.Message())
}

// Message is the error text without the position prefix.
func (e *StructuralError) Message() string {
	return fmt.Sprintf("unexpected dedent to column %d, expected dedent to %d", e.Indent, e.Expected)
}
