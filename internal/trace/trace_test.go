package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"off", LevelOff, false},
		{"", LevelOff, false},
		{"PHASE", LevelPhase, false},
		{"detail", LevelDetail, false},
		{"debug", LevelDebug, false},
		{"error", LevelError, false},
		{"loud", LevelOff, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func TestLevelShouldEmit(t *testing.T) {
	if LevelPhase.ShouldEmit(ScopeFile) {
		t.Error("phase level must not emit file events")
	}
	if !LevelDetail.ShouldEmit(ScopeFile) || LevelDetail.ShouldEmit(ScopeNode) {
		t.Error("detail level boundaries wrong")
	}
	if !LevelDebug.ShouldEmit(ScopeNode) {
		t.Error("debug level must emit everything")
	}
}

func TestStreamTracer_Text(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatText)

	sp := Begin(tr, ScopePass, "parse", 0)
	sp.WithExtra("files", "2").WithExtra("bytes", "10")
	sp.End("ok")
	Begin(tr, ScopeFile, "hidden", 0).End("")
	_, fileSpan := StartFile(WithTracer(context.Background(), tr), "parse", "a.gd")
	fileSpan.End("")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", buf.String())
	}
	if !strings.Contains(lines[0], "→ parse") {
		t.Errorf("begin line %q", lines[0])
	}
	if !strings.Contains(lines[1], "← parse (ok) {bytes=10, files=2}") {
		t.Errorf("end line %q", lines[1])
	}
}

func TestStreamTracer_NDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDebug, FormatNDJSON)
	Point(tr, ScopeNode, "stmt", "func_def")

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	if got["kind"] != "point" || got["scope"] != "node" || got["detail"] != "func_def" {
		t.Errorf("event %v", got)
	}
}

func TestStart_Parenting(t *testing.T) {
	ring := NewRingTracer(8, LevelDebug)
	ctx := WithTracer(context.Background(), ring)

	ctx, outer := Start(ctx, ScopeDriver, "lint")
	fileCtx, inner := StartFile(ctx, "lint", "a.gd")
	_, nested := Start(fileCtx, ScopeNode, "check")
	nested.End("")
	inner.End("")
	outer.End("")

	events := ring.Snapshot()
	if len(events) != 6 {
		t.Fatalf("expected 6 events, got %d", len(events))
	}
	if events[1].ParentID != outer.ID() || events[0].ParentID != 0 {
		t.Errorf("parent ids %d %d, outer %d", events[0].ParentID, events[1].ParentID, outer.ID())
	}
	if events[1].File != "a.gd" || events[2].File != "a.gd" || events[0].File != "" {
		t.Errorf("file attribution %q %q %q", events[0].File, events[1].File, events[2].File)
	}
}

func TestRingTracer_Wraps(t *testing.T) {
	ring := NewRingTracer(2, LevelDebug)
	for _, name := range []string{"a", "b", "c"} {
		Point(ring, ScopeDriver, name, "")
	}
	events := ring.Snapshot()
	if len(events) != 2 || events[0].Name != "b" || events[1].Name != "c" {
		t.Errorf("snapshot %+v", events)
	}
}

func TestNew_ErrorLevelBuffers(t *testing.T) {
	tr, err := New(Config{Level: LevelError})
	if err != nil {
		t.Fatal(err)
	}
	Begin(tr, ScopeFile, "x.gd", 0).End("failed")

	var buf bytes.Buffer
	if err := DumpOnFailure(tr, &buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "x.gd (failed)") {
		t.Errorf("dump %q", buf.String())
	}
}

func TestNop(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Error("missing tracer must be Nop")
	}
	sp := Begin(Nop, ScopeDriver, "x", 0)
	if sp.End("") != 0 || sp.ID() != 0 {
		t.Error("nop span must be inert")
	}
}
