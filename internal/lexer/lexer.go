package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"gdtoolkit/internal/diag"
	"gdtoolkit/internal/source"
	"gdtoolkit/internal/token"
)

// Comment is a '#' comment removed from the token stream.
type Comment struct {
	Text       string // including the leading '#'
	Line       int
	Col        int
	Standalone bool // nothing but indentation precedes it on its line
}

// Lexer produces the flat GDScript token stream consumed by the
// indentation normalizer. It never emits Indent or Dedent.
type Lexer struct {
	file     *source.File
	cursor   Cursor
	opts     Options
	look     *token.Token
	comments []Comment
	started  bool
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next token. After EOF it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}
	if !lx.started {
		lx.started = true
		lx.skipLeading()
	}

	for {
		lx.skipSpaces()
		if lx.cursor.EOF() {
			return lx.make(token.EOF, lx.cursor.SpanFrom(lx.cursor.Mark()))
		}
		switch ch := lx.cursor.Peek(); {
		case ch == '#':
			lx.scanComment()
		case ch == '\\' && lx.cursor.PeekAt(1) == '\n':
			// line continuation
			lx.cursor.Bump()
			lx.cursor.Bump()
		case ch == '\n':
			return lx.scanNewline()
		case isIdentStartByte(ch) || ch >= utf8RuneSelf:
			return lx.scanIdentOrKeyword()
		case isDec(ch) || (ch == '.' && isDec(lx.cursor.PeekAt(1))):
			return lx.scanNumber()
		case ch == '"' || ch == '\'':
			return lx.scanString()
		default:
			return lx.scanOperatorOrPunct()
		}
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Comments returns the comments seen so far, in source order.
func (lx *Lexer) Comments() []Comment {
	return lx.comments
}

// All drains the lexer and returns every token including the final EOF.
func (lx *Lexer) All() []token.Token {
	var out []token.Token
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
	}
}

func (lx *Lexer) make(k token.Kind, sp source.Span) token.Token {
	pos := lx.file.Position(sp.Start)
	line, err := safecast.Conv[int](pos.Line)
	if err != nil {
		panic(fmt.Errorf("line overflow: %w", err))
	}
	col, err := safecast.Conv[int](pos.Col)
	if err != nil {
		panic(fmt.Errorf("column overflow: %w", err))
	}
	return token.Token{
		Kind: k,
		Text: string(lx.file.Content[sp.Start:sp.End]),
		Line: line,
		Col:  col,
		Span: sp,
	}
}

func (lx *Lexer) skipSpaces() {
	for isSpace(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
}

// skipLeading drops blank and comment lines before the first statement.
// The first statement itself must start at column 1.
func (lx *Lexer) skipLeading() {
	for {
		lineStart := lx.cursor.Mark()
		lx.skipSpaces()
		switch lx.cursor.Peek() {
		case '#':
			lx.scanComment()
			continue
		case '\n':
			lx.cursor.Bump()
			continue
		case 0:
			if lx.cursor.EOF() {
				return
			}
		}
		if lx.cursor.Mark() != lineStart && lx.atLineStart(lineStart) {
			lx.errLex(diag.LexUnexpectedIndent, lx.cursor.SpanFrom(lineStart), "unexpected indentation before the first statement")
		}
		return
	}
}

func (lx *Lexer) atLineStart(m Mark) bool {
	return m == 0 || lx.file.Content[m-1] == '\n'
}

func (lx *Lexer) scanComment() {
	start := lx.cursor.Mark()
	standalone := true
	for i := int(start) - 1; i >= 0; i-- {
		b := lx.file.Content[i]
		if b == '\n' {
			break
		}
		if b != ' ' && b != '\t' {
			standalone = false
			break
		}
	}
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	tok := lx.make(token.Invalid, sp)
	lx.comments = append(lx.comments, Comment{
		Text:       tok.Text,
		Line:       tok.Line,
		Col:        tok.Col,
		Standalone: standalone,
	})
}

// scanNewline consumes a run of line breaks together with the spaces, tabs,
// blank lines and comment lines that follow, up to the next significant
// character. When the run reaches EOF the token stops right after its last
// line break, so the text after the final '\n' is always pure indentation.
func (lx *Lexer) scanNewline() token.Token {
	start := lx.cursor.Mark()
	end := start
	for {
		if !lx.cursor.Eat('\n') {
			break
		}
		end = lx.cursor.Mark()
		lx.skipSpaces()
		for lx.cursor.Peek() == '#' {
			lx.scanComment()
		}
		if lx.cursor.EOF() {
			lx.cursor.Reset(end)
			lx.skipTrailing()
			return lx.make(token.Newline, source.Span{File: lx.file.ID, Start: uint32(start), End: uint32(end)})
		}
		if lx.cursor.Peek() != '\n' {
			end = lx.cursor.Mark()
			break
		}
	}
	return lx.make(token.Newline, source.Span{File: lx.file.ID, Start: uint32(start), End: uint32(end)})
}

// skipTrailing moves to EOF; comments on the way were already recorded.
func (lx *Lexer) skipTrailing() {
	for !lx.cursor.EOF() {
		lx.cursor.Bump()
	}
}
