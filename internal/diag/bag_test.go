package diag

import (
	"testing"

	"gdtoolkit/internal/source"
)

func TestBag_LimitAndErrors(t *testing.T) {
	b := NewBag(2)
	sp := source.Span{File: 0, Start: 1, End: 2}
	if !b.Add(New(SevWarning, SynInfo, sp, "w")) {
		t.Fatal("first add rejected")
	}
	if b.HasErrors() || !b.HasWarnings() {
		t.Fatal("severity flags wrong after warning")
	}
	b.Add(New(SevError, SynUnexpectedToken, sp, "e"))
	if b.Add(New(SevError, SynUnexpectedToken, sp, "dropped")) {
		t.Fatal("add beyond cap accepted")
	}
	if b.Len() != 2 || !b.HasErrors() {
		t.Fatalf("len=%d errors=%v", b.Len(), b.HasErrors())
	}
}

func TestBag_SortAndDedup(t *testing.T) {
	b := NewBag(10)
	late := source.Span{Start: 10, End: 12}
	early := source.Span{Start: 1, End: 3}
	b.Add(New(SevWarning, LexUnknownChar, late, "late"))
	b.Add(New(SevError, IndUnexpectedDedent, early, "early"))
	b.Add(New(SevError, IndUnexpectedDedent, early, "early again"))
	b.Sort()
	if b.Items()[0].Message != "early" {
		t.Fatalf("sort order wrong: %+v", b.Items())
	}
	b.Dedup()
	if b.Len() != 2 {
		t.Fatalf("dedup left %d items", b.Len())
	}
}

func TestReportBuilder_EmitOnce(t *testing.T) {
	bag := NewBag(0)
	rb := ReportError(BagReporter{Bag: bag}, SynExpectColon, source.Span{}, "expected ':'").
		WithNote(source.Span{Start: 4}, "block opened here")
	rb.Emit()
	rb.Emit()
	if bag.Len() != 1 {
		t.Fatalf("emitted %d times", bag.Len())
	}
	if got := bag.Items()[0]; len(got.Notes) != 1 || got.Code.ID() != "SYN2003" {
		t.Errorf("unexpected diagnostic %+v", got)
	}
}
