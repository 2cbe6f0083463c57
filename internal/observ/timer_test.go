package observ

import (
	"strings"
	"testing"
	"time"
)

func TestTimer_Report(t *testing.T) {
	tm := NewTimer()
	idx := tm.Begin("parse")
	tm.End(idx, "3 files")
	tm.Add("lint", 2*time.Millisecond)
	tm.Add("lint", 3*time.Millisecond)
	tm.End(42, "ignored")

	report := tm.Report()
	if len(report.Phases) != 2 {
		t.Fatalf("expected 2 phases, got %+v", report.Phases)
	}
	if report.Phases[0].Note != "3 files" {
		t.Errorf("note = %q", report.Phases[0].Note)
	}
	if got := report.Phases[1].DurationMS; got != 5 {
		t.Errorf("lint duration = %v ms, want 5", got)
	}
	if report.TotalMS < 5 {
		t.Errorf("total %v below the sum of phases", report.TotalMS)
	}

	summary := tm.Summary()
	for _, want := range []string{"timings:\n", "parse", "// 3 files", "lint", "total"} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary lacks %q:\n%s", want, summary)
		}
	}
}

func TestTimer_Empty(t *testing.T) {
	if r := NewTimer().Report(); r.TotalMS != 0 || r.Phases != nil {
		t.Errorf("unexpected report %+v", r)
	}
}
