package lexer_test

import (
	"fmt"
	"testing"

	"gdtoolkit/internal/diag"
	"gdtoolkit/internal/lexer"
	"gdtoolkit/internal/source"
	"gdtoolkit/internal/token"
)

// testReporter collects every diagnostic the lexer emits.
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

func (r *testReporter) messages() []string {
	out := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		out = append(out, fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message))
	}
	return out
}

func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.gd", []byte(input)))
	reporter := &testReporter{}
	return lexer.New(file, lexer.Options{Reporter: reporter}), reporter
}

// expectTokens checks the kinds of every token before EOF.
func expectTokens(t *testing.T, input string, expected []token.Kind) []token.Token {
	t.Helper()
	lx, reporter := makeTestLexer(input)
	tokens := lx.All()
	tokens = tokens[:len(tokens)-1]

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d\ninput: %q\ntokens: %v\nerrors: %v",
			len(expected), len(tokens), input, tokens, reporter.messages())
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("token %d: expected %v, got %v (text: %q)", i, expected[i], tok.Kind, tok.Text)
		}
	}
	return tokens
}

func TestLexer_SimpleStatements(t *testing.T) {
	expectTokens(t, "var x = 5\n", []token.Kind{
		token.KwVar, token.Name, token.Assign, token.Number, token.Newline,
	})
	expectTokens(t, "func _ready():\n\tpass", []token.Kind{
		token.KwFunc, token.Name, token.LParen, token.RParen, token.Colon, token.Newline, token.KwPass,
	})
	expectTokens(t, "a.b(c, [1, 2], {\"k\": 1.5})", []token.Kind{
		token.Name, token.Dot, token.Name, token.LParen, token.Name, token.Comma,
		token.LBracket, token.Number, token.Comma, token.Number, token.RBracket, token.Comma,
		token.LBrace, token.String, token.Colon, token.Number, token.RBrace, token.RParen,
	})
}

func TestLexer_Operators(t *testing.T) {
	expectTokens(t, "a += 1 -> b := c != d <= e >= f << g >> h && i || !j", []token.Kind{
		token.Name, token.PlusAssign, token.Number, token.Arrow, token.Name, token.ColonAssign,
		token.Name, token.BangEq, token.Name, token.LtEq, token.Name, token.GtEq, token.Name,
		token.Shl, token.Name, token.Shr, token.Name, token.AndAnd, token.Name, token.OrOr,
		token.Bang, token.Name,
	})
	expectTokens(t, "$Sprite", []token.Kind{token.Dollar, token.Name})
}

func TestLexer_NewlineCarriesIndentation(t *testing.T) {
	toks := expectTokens(t, "if a:\n\n    # note\n\tb\n", []token.Kind{
		token.KwIf, token.Name, token.Colon, token.Newline, token.Name, token.Newline,
	})
	if toks[3].Text != "\n\n    # note\n\t" {
		t.Errorf("newline text = %q", toks[3].Text)
	}
	if toks[5].Text != "\n" {
		t.Errorf("final newline text = %q", toks[5].Text)
	}
}

func TestLexer_TrailingCommentAtEOF(t *testing.T) {
	lx, _ := makeTestLexer("x\n    # dangling")
	toks := lx.All()
	if len(toks) != 3 || toks[1].Kind != token.Newline || toks[1].Text != "\n" {
		t.Fatalf("tokens = %+v", toks)
	}
	comments := lx.Comments()
	if len(comments) != 1 || comments[0].Text != "# dangling" || !comments[0].Standalone || comments[0].Line != 2 {
		t.Errorf("comments = %+v", comments)
	}
}

func TestLexer_InlineComment(t *testing.T) {
	lx, _ := makeTestLexer("x = 1 # one\ny = 2\n")
	lx.All()
	comments := lx.Comments()
	if len(comments) != 1 || comments[0].Standalone || comments[0].Col != 7 {
		t.Errorf("comments = %+v", comments)
	}
}

func TestLexer_Positions(t *testing.T) {
	lx, _ := makeTestLexer("a\n\tbb")
	toks := lx.All()
	if toks[0].Line != 1 || toks[0].Col != 1 {
		t.Errorf("a at %d:%d", toks[0].Line, toks[0].Col)
	}
	if toks[2].Line != 2 || toks[2].Col != 2 || toks[2].Text != "bb" {
		t.Errorf("bb at %d:%d %q", toks[2].Line, toks[2].Col, toks[2].Text)
	}
}

func TestLexer_LineContinuation(t *testing.T) {
	expectTokens(t, "a = b + \\\n    c", []token.Kind{
		token.Name, token.Assign, token.Name, token.Plus, token.Name,
	})
}

func TestLexer_Numbers(t *testing.T) {
	for _, src := range []string{"0", "42", "1_000", "3.14", ".5", "1e10", "2.5E-3", "0x1F", "0b101", "1."} {
		lx, rep := makeTestLexer(src)
		tok := lx.Next()
		if tok.Kind != token.Number || tok.Text != src {
			t.Errorf("%q lexed as %v %q (errors %v)", src, tok.Kind, tok.Text, rep.messages())
		}
	}
	lx, rep := makeTestLexer("0x")
	if tok := lx.Next(); tok.Kind != token.Invalid || len(rep.diagnostics) != 1 {
		t.Errorf("0x should be invalid, got %v", tok.Kind)
	}
}

func TestLexer_Strings(t *testing.T) {
	for _, src := range []string{`"a"`, `'b'`, `"esc \" q"`, `"""multi
line"""`, `'''x'''`} {
		lx, rep := makeTestLexer(src)
		tok := lx.Next()
		if tok.Kind != token.String || tok.Text != src {
			t.Errorf("%q lexed as %v %q (errors %v)", src, tok.Kind, tok.Text, rep.messages())
		}
	}

	lx, rep := makeTestLexer("\"open\nx")
	if tok := lx.Next(); tok.Kind != token.Invalid {
		t.Errorf("unterminated string lexed as %v", tok.Kind)
	}
	if len(rep.diagnostics) != 1 || rep.diagnostics[0].Code != diag.LexUnterminatedString {
		t.Errorf("diagnostics = %v", rep.messages())
	}
}

func TestLexer_LeadingIndentReported(t *testing.T) {
	lx, rep := makeTestLexer("# header\n\n  var a\n")
	lx.All()
	if len(rep.diagnostics) != 1 || rep.diagnostics[0].Code != diag.LexUnexpectedIndent {
		t.Errorf("diagnostics = %v", rep.messages())
	}

	lx, rep = makeTestLexer("# header\n\nvar a\n")
	toks := lx.All()
	if len(rep.diagnostics) != 0 || toks[0].Kind != token.KwVar {
		t.Errorf("leading comment handling broken: %v %v", toks, rep.messages())
	}
}

func TestLexer_UnknownChar(t *testing.T) {
	lx, rep := makeTestLexer("a ? b")
	toks := lx.All()
	if toks[1].Kind != token.Invalid {
		t.Errorf("'?' lexed as %v", toks[1].Kind)
	}
	if len(rep.diagnostics) != 1 || rep.diagnostics[0].Code != diag.LexUnknownChar {
		t.Errorf("diagnostics = %v", rep.messages())
	}
}

func TestLexer_EOFIsSticky(t *testing.T) {
	lx, _ := makeTestLexer("")
	for range 3 {
		if tok := lx.Next(); tok.Kind != token.EOF {
			t.Fatalf("got %v after end", tok.Kind)
		}
	}
	if lx.Peek().Kind != token.EOF {
		t.Fatalf("peek after end")
	}
}
