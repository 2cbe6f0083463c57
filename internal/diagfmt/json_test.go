package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gdtoolkit/internal/diag"
	"gdtoolkit/internal/lexer"
	"gdtoolkit/internal/source"
	"gdtoolkit/internal/syntax"
	"gdtoolkit/internal/token"
)

// TestJSONBasic проверяет базовое JSON форматирование
func TestJSONBasic(t *testing.T) {
	fs := source.NewFileSet()
	bag := unterminatedBag(fs, "test.gd")

	var buf bytes.Buffer
	opts := JSONOpts{IncludePositions: true, PathMode: PathModeBasename}
	if err := JSON(&buf, bag, fs, opts); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("Invalid JSON output: %v\nOutput: %s", err, buf.String())
	}
	if output.Count != 1 || len(output.Diagnostics) != 1 {
		t.Fatalf("Expected 1 diagnostic, got %+v", output)
	}

	d := output.Diagnostics[0]
	want := DiagnosticJSON{
		Severity: "ERROR",
		Code:     "LEX1002",
		Title:    "Unterminated string",
		Message:  "unterminated string",
		Location: LocationJSON{
			File:      "test.gd",
			StartByte: 18,
			EndByte:   23,
			StartLine: 2,
			StartCol:  9,
			EndLine:   2,
			EndCol:    14,
		},
	}
	if d.Severity != want.Severity || d.Code != want.Code || d.Title != want.Title || d.Message != want.Message {
		t.Errorf("got %+v, want %+v", d, want)
	}
	if d.Location != want.Location {
		t.Errorf("location: got %+v, want %+v", d.Location, want.Location)
	}
}

func TestJSONOptions(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("/home/user/project/src/main.gd", []byte("var a = 1\n"))
	bag := diag.NewBag(10)
	for i := range 5 {
		d := diag.New(diag.SevWarning, diag.LexUnknownChar, source.Span{File: fileID, Start: uint32(i), End: uint32(i + 1)}, "unknown")
		bag.Add(d.WithNote(source.Span{File: fileID}, "here"))
	}

	tests := []struct {
		name      string
		opts      JSONOpts
		count     int
		file      string
		notes     int
		startLine uint32
	}{
		{name: "absolute", opts: JSONOpts{PathMode: PathModeAbsolute}, count: 5, file: "/home/user/project/src/main.gd"},
		{name: "relative", opts: JSONOpts{PathMode: PathModeRelative, BaseDir: "/home/user/project"}, count: 5, file: "src/main.gd"},
		{name: "max", opts: JSONOpts{PathMode: PathModeBasename, Max: 3}, count: 3, file: "main.gd"},
		{name: "notes and positions", opts: JSONOpts{PathMode: PathModeBasename, IncludeNotes: true, IncludePositions: true}, count: 5, file: "main.gd", notes: 1, startLine: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := BuildDiagnosticsOutput(bag, fs, tt.opts)
			if out.Count != tt.count || len(out.Diagnostics) != tt.count {
				t.Fatalf("count = %d (%d items), want %d", out.Count, len(out.Diagnostics), tt.count)
			}
			first := out.Diagnostics[0]
			if first.Location.File != tt.file {
				t.Errorf("file = %q, want %q", first.Location.File, tt.file)
			}
			if len(first.Notes) != tt.notes {
				t.Errorf("notes = %d, want %d", len(first.Notes), tt.notes)
			}
			if first.Location.StartLine != tt.startLine {
				t.Errorf("start line = %d, want %d", first.Location.StartLine, tt.startLine)
			}
		})
	}
}

func TestJSONOmitsPositions(t *testing.T) {
	fs := source.NewFileSet()
	bag := unterminatedBag(fs, "test.gd")
	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{PathMode: PathModeBasename}); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "start_line") {
		t.Errorf("positions present without IncludePositions:\n%s", buf.String())
	}
}

func lexAll(src string) []token.Token {
	fs := source.NewFileSet()
	lx := lexer.New(fs.Get(fs.AddVirtual("t.gd", []byte(src))), lexer.Options{})
	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func TestFormatTokens(t *testing.T) {
	toks := lexAll("var a = 1\n")

	var pretty bytes.Buffer
	if err := FormatTokensPretty(&pretty, toks); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(pretty.String(), "\n"), "\n")
	if len(lines) != len(toks) {
		t.Fatalf("expected %d lines, got %d:\n%s", len(toks), len(lines), pretty.String())
	}
	if !strings.Contains(lines[1], `"a" at 1:5`) {
		t.Errorf("unexpected second line %q", lines[1])
	}

	var js bytes.Buffer
	if err := FormatTokensJSON(&js, toks); err != nil {
		t.Fatal(err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(js.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(out) != len(toks) || out[1].Text != "a" || out[1].Col != 5 {
		t.Errorf("unexpected tokens %+v", out)
	}
	if out[len(out)-1].Kind != token.EOF.String() {
		t.Errorf("last token %q, want EOF", out[len(out)-1].Kind)
	}
}

func TestFormatTreeJSON(t *testing.T) {
	name := syntax.Leaf{Token: token.Token{Kind: token.Name, Text: "f", Line: 1, Col: 6}}
	tree := syntax.New("start", syntax.New("func_def", syntax.New("func_header", name)))

	var buf bytes.Buffer
	if err := FormatTreeJSON(&buf, tree); err != nil {
		t.Fatal(err)
	}
	var root NodeJSON
	if err := json.Unmarshal(buf.Bytes(), &root); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	leaf := root.Children[0].Children[0].Children[0]
	if root.Rule != "start" || leaf.Kind != token.Name.String() || leaf.Text != "f" || leaf.Col != 6 {
		t.Errorf("unexpected tree %+v", root)
	}

	var text bytes.Buffer
	if err := FormatTreePretty(&text, tree); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(text.String(), "    func_header\n") {
		t.Errorf("unexpected dump:\n%s", text.String())
	}
}
