package format

import (
	"gdtoolkit/internal/lexer"
	"gdtoolkit/internal/source"
)

// Line is one output line. SourceLine is the input line it renders, or 0
// for lines with no single origin such as closing brackets.
type Line struct {
	SourceLine int
	Text       string
}

type FormattedLines []Line

// Context carries the state of the block being formatted.
type Context struct {
	IndentString string
	// PreviouslyProcessedLine is the last input line already accounted for;
	// gaps after it are scanned for blank lines and comments.
	PreviouslyProcessedLine int
	// MaxBlankLines bounds each run of preserved blank lines.
	MaxBlankLines int

	inLambda bool
	shared   *shared
}

// shared is the per-file state every Context points to.
type shared struct {
	opts       Options
	file       *source.File
	standalone map[int]lexer.Comment // line -> comment alone on that line
	comments   []lexer.Comment
	emitted    map[int]bool // lines whose standalone comment was placed
	err        error
}

func newShared(file *source.File, comments []lexer.Comment, opts Options) *shared {
	s := &shared{
		opts:       opts,
		file:       file,
		standalone: make(map[int]lexer.Comment),
		comments:   comments,
		emitted:    make(map[int]bool),
	}
	for _, c := range comments {
		if c.Standalone {
			s.standalone[c.Line] = c
		}
	}
	return s
}

// NewContext returns the context of the top-level class body.
func NewContext(file *source.File, comments []lexer.Comment, opts Options) *Context {
	return &Context{
		MaxBlankLines: classBlankLines,
		shared:        newShared(file, comments, opts.withDefaults()),
	}
}

// CreateChildContext returns the context of a nested function-level block
// whose header ends at line previousLine.
func (c *Context) CreateChildContext(previousLine int) *Context {
	return c.child(previousLine, funcBlankLines)
}

func (c *Context) createClassContext(previousLine int) *Context {
	return c.child(previousLine, classBlankLines)
}

func (c *Context) child(previousLine, blank int) *Context {
	return &Context{
		IndentString:            c.IndentString + c.shared.opts.indentUnit(),
		PreviouslyProcessedLine: previousLine,
		MaxBlankLines:           blank,
		shared:                  c.shared,
	}
}

// lambdaContext returns the context of a block lambda body rendered at
// indent. Comments after its last statement are left to the enclosing block.
func (c *Context) lambdaContext(indent string, previousLine int) *Context {
	return &Context{
		IndentString:            indent,
		PreviouslyProcessedLine: previousLine,
		MaxBlankLines:           funcBlankLines,
		inLambda:                true,
		shared:                  c.shared,
	}
}

// fail records the first error met while formatting; rendering continues so
// callers need no error plumbing.
func (c *Context) fail(err error) {
	if c.shared.err == nil {
		c.shared.err = err
	}
}

func (c *Context) opts() Options {
	return c.shared.opts
}

func (c *Context) line(text string, sourceLine int) Line {
	return Line{SourceLine: sourceLine, Text: c.IndentString + text}
}
