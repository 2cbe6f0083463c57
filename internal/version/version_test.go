package version

import (
	"strings"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		in                  string
		major, minor, patch string
		rest                string
		ok                  bool
	}{
		{in: "0.1.0-dev", major: "0", minor: "1", patch: "0", rest: "-dev", ok: true},
		{in: "12.3.45", major: "12", minor: "3", patch: "45", ok: true},
		{in: "1.2", ok: false},
		{in: "dev", ok: false},
		{in: "1..2", ok: false},
	}
	for _, tt := range tests {
		major, minor, patch, rest, ok := split(tt.in)
		if ok != tt.ok || major != tt.major || minor != tt.minor || patch != tt.patch || rest != tt.rest {
			t.Errorf("split(%q) = %q %q %q %q %v", tt.in, major, minor, patch, rest, ok)
		}
	}
}

func TestLine(t *testing.T) {
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	defer func() {
		Version, GitCommit, BuildDate = origVersion, origCommit, origDate
	}()

	Version = "1.2.3"
	GitCommit = "abc123"
	BuildDate = "2024-01-15T10:30:00Z"
	if got, want := Line(false), "gdtoolkit 1.2.3 (abc123) built 2024-01-15T10:30:00Z"; got != want {
		t.Errorf("Line(false) = %q, want %q", got, want)
	}

	colored := Line(true)
	if !strings.Contains(colored, "\x1b[") {
		t.Errorf("Line(true) has no escape codes: %q", colored)
	}

	Version = "snapshot"
	if got := Colored(true); got != "snapshot" {
		t.Errorf("Colored(true) = %q for a non-semver version", got)
	}
}
