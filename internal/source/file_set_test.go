package source

import (
	"testing"
)

func TestFileSet_AddVirtualNormalizes(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.gd", []byte("\xEF\xBB\xBFvar a\r\nvar b\r\n"))
	f := fs.Get(id)

	if string(f.Content) != "var a\nvar b\n" {
		t.Fatalf("unexpected content %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 || f.Flags&FileVirtual == 0 {
		t.Errorf("flags not set: %b", f.Flags)
	}
	if got, ok := fs.GetByPath("./test.gd"); !ok || got.ID != id {
		t.Errorf("GetByPath did not resolve normalised path")
	}
}

func TestFile_Position(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("p.gd", []byte("ab\ncd\n\nef")))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{1, LineCol{1, 2}},
		{2, LineCol{1, 3}}, // the newline itself belongs to line 1
		{3, LineCol{2, 1}},
		{6, LineCol{3, 1}},
		{7, LineCol{4, 1}},
		{8, LineCol{4, 2}},
	}
	for _, tt := range tests {
		if got := f.Position(tt.off); got != tt.want {
			t.Errorf("Position(%d) = %+v, want %+v", tt.off, got, tt.want)
		}
	}
}

func TestFile_GetLineAndCount(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("l.gd", []byte("first\n\tsecond\n\nlast")))

	tests := []struct {
		line uint32
		want string
	}{
		{0, ""},
		{1, "first"},
		{2, "\tsecond"},
		{3, ""},
		{4, "last"},
		{5, ""},
	}
	for _, tt := range tests {
		if got := f.GetLine(tt.line); got != tt.want {
			t.Errorf("GetLine(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}
	if f.LineCount() != 4 {
		t.Errorf("LineCount = %d, want 4", f.LineCount())
	}
	if !f.IsBlankLine(3) || f.IsBlankLine(2) {
		t.Errorf("IsBlankLine misclassified lines")
	}
	if lines := f.Lines(); len(lines) != 4 || lines[3] != "last" {
		t.Errorf("Lines = %q", lines)
	}
}

func TestSpan_Cover(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 8}
	b := Span{File: 1, Start: 2, End: 6}
	if got := a.Cover(b); got != (Span{File: 1, Start: 2, End: 8}) {
		t.Errorf("Cover = %v", got)
	}
	other := Span{File: 2, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Errorf("Cover across files changed span: %v", got)
	}
	if !a.At().Empty() || a.At().Start != 4 {
		t.Errorf("At = %v", a.At())
	}
}
