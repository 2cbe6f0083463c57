package ui

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"gdtoolkit/internal/driver"
)

func newModel(files ...string) *progressModel {
	return NewProgressModel("lint", files, nil).(*progressModel)
}

func TestApplyEvent(t *testing.T) {
	m := newModel("a.gd", "b.gd")

	m.applyEvent(driver.Event{File: "a.gd", Stage: driver.StageParse, Status: driver.StatusWorking})
	if got := m.items[0].status; got != "parsing" {
		t.Errorf("status = %q, want parsing", got)
	}
	if got := m.percent(); got != 0.15 {
		t.Errorf("percent = %v, want 0.15", got)
	}

	m.applyEvent(driver.Event{File: "a.gd", Stage: driver.StageLint, Status: driver.StatusDone})
	m.applyEvent(driver.Event{File: "b.gd", Stage: driver.StageLint, Status: driver.StatusError, Err: errors.New("boom")})
	m.applyEvent(driver.Event{File: "b.gd", Status: driver.StatusQueued})
	m.applyEvent(driver.Event{File: "unknown.gd", Status: driver.StatusDone})

	if m.items[1].status != "error" || m.failed != 1 {
		t.Errorf("b.gd status %q, failed %d", m.items[1].status, m.failed)
	}
	if got := m.percent(); got != 1 {
		t.Errorf("percent = %v, want 1", got)
	}
	view := m.View()
	for _, want := range []string{"lint (2/2), 1 failed", "done", "error", "a.gd", "b.gd"} {
		if !strings.Contains(view, want) {
			t.Errorf("view lacks %q:\n%s", want, view)
		}
	}
}

func TestVisibleRows(t *testing.T) {
	files := make([]string, 0, 15)
	for i := range 15 {
		files = append(files, fmt.Sprintf("f%02d.gd", i))
	}
	m := newModel(files...)
	m.applyEvent(driver.Event{File: "f12.gd", Stage: driver.StageFormat, Status: driver.StatusWorking})
	m.applyEvent(driver.Event{File: "f14.gd", Stage: driver.StageFormat, Status: driver.StatusError})

	rows, hidden := m.visible(4)
	if hidden != 11 {
		t.Fatalf("hidden = %d, want 11", hidden)
	}
	got := make([]string, 0, len(rows))
	for _, r := range rows {
		got = append(got, r.path)
	}
	if want := "f12.gd f14.gd f00.gd f01.gd"; strings.Join(got, " ") != want {
		t.Errorf("rows = %v, want %s", got, want)
	}
	if view := m.View(); !strings.Contains(view, "5 more files") {
		t.Errorf("view lacks the overflow line:\n%s", view)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{in: "short.gd", width: 20, want: "short.gd"},
		{in: "a/very/long/path.gd", width: 10, want: "a/very/..."},
		{in: "scripts/player.gd", width: 12, want: "scripts/p..."},
		{in: "abcdef", width: 2, want: "ab"},
		{in: "abcdef", width: 0, want: "abcdef"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
