package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCLI executes the root command in dir and returns stdout, stderr and
// the command error.
func runCLI(t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()
	t.Chdir(dir)
	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--ui=off", "--color=off"}, args...))
	err := root.Execute()
	if closeErr := closeTracing(root); closeErr != nil {
		t.Fatalf("closeTracing: %v", closeErr)
	}
	return stdout.String(), stderr.String(), err
}

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestFmtCheckAndRewrite(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "messy.gd", "var x=1\n")

	stdout, _, err := runCLI(t, dir, "fmt", "--check", "messy.gd")
	if !errors.Is(err, errReported) {
		t.Fatalf("fmt --check error = %v, want errReported", err)
	}
	if !strings.Contains(stdout, "would reformat") || !strings.Contains(stdout, "1 file would be reformatted") {
		t.Fatalf("unexpected check output:\n%s", stdout)
	}

	stdout, _, err = runCLI(t, dir, "fmt", "--stdout", "messy.gd")
	if err != nil {
		t.Fatalf("fmt --stdout: %v", err)
	}
	if stdout != "var x = 1\n" {
		t.Fatalf("fmt --stdout = %q", stdout)
	}

	if _, _, err = runCLI(t, dir, "fmt", "messy.gd"); err != nil {
		t.Fatalf("fmt: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "var x = 1\n" {
		t.Fatalf("rewritten file = %q", data)
	}

	stdout, _, err = runCLI(t, dir, "fmt", "--check", "messy.gd")
	if err != nil {
		t.Fatalf("second check: %v", err)
	}
	if !strings.Contains(stdout, "0 files would be reformatted, 1 file would be left unchanged.") {
		t.Fatalf("unexpected summary:\n%s", stdout)
	}
}

func TestFmtReportsSyntaxErrors(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "broken.gd", "func f(:\n")
	_, stderr, err := runCLI(t, dir, "fmt", "--check", "broken.gd")
	if !errors.Is(err, errReported) {
		t.Fatalf("error = %v, want errReported", err)
	}
	if !strings.Contains(stderr, "broken.gd") || !strings.Contains(stderr, "ERROR") {
		t.Fatalf("expected a diagnostic on stderr:\n%s", stderr)
	}
}

func TestParseJSONDiagnostics(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "broken.gd", "func f(:\n")
	stdout, _, err := runCLI(t, dir, "parse", "--format", "json", "broken.gd")
	if !errors.Is(err, errReported) {
		t.Fatalf("error = %v, want errReported", err)
	}
	var payload struct {
		Diagnostics []struct {
			Severity string `json:"severity"`
			Location struct {
				StartLine int `json:"start_line"`
			} `json:"location"`
		} `json:"diagnostics"`
	}
	if err := json.Unmarshal([]byte(stdout), &payload); err != nil {
		t.Fatalf("decode: %v\n%s", err, stdout)
	}
	if len(payload.Diagnostics) == 0 || payload.Diagnostics[0].Severity != "ERROR" || payload.Diagnostics[0].Location.StartLine != 1 {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestLintCommand(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "bad.gd", "func BadName():\n\tpass\n")

	stdout, _, err := runCLI(t, dir, "lint", "bad.gd")
	if !errors.Is(err, errReported) {
		t.Fatalf("lint error = %v, want errReported", err)
	}
	if !strings.Contains(stdout, `:1: Error: Function name "BadName" is not valid (function-name)`) {
		t.Fatalf("missing problem line:\n%s", stdout)
	}
	if !strings.Contains(stdout, "Failure: 1 problem found") {
		t.Fatalf("missing summary:\n%s", stdout)
	}

	writeSource(t, dir, "gdlintrc", "disable:\n  - function-name\n")
	stdout, _, err = runCLI(t, dir, "lint", "bad.gd")
	if err != nil {
		t.Fatalf("lint with gdlintrc: %v\n%s", err, stdout)
	}
	if !strings.Contains(stdout, "Success: no problems found") {
		t.Fatalf("unexpected output:\n%s", stdout)
	}
}

func TestLintJSON(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "bad.gd", "func BadName():\n\tpass\n")
	stdout, _, err := runCLI(t, dir, "lint", "--format", "json", "bad.gd")
	if !errors.Is(err, errReported) {
		t.Fatalf("lint error = %v, want errReported", err)
	}
	var payload []struct {
		Path     string `json:"path"`
		Problems []struct {
			Name string `json:"name"`
			Line int    `json:"line"`
		} `json:"problems"`
	}
	if err := json.Unmarshal([]byte(stdout), &payload); err != nil {
		t.Fatalf("decode: %v\n%s", err, stdout)
	}
	if len(payload) != 1 || len(payload[0].Problems) != 1 || payload[0].Problems[0].Name != "function-name" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestLintDumpConfig(t *testing.T) {
	dir := t.TempDir()
	stdout, _, err := runCLI(t, dir, "lint", "--dump-config")
	if err != nil {
		t.Fatalf("dump-config: %v", err)
	}
	if !strings.Contains(stdout, "max-line-length: 100") || !strings.Contains(stdout, "class-definitions-order:") {
		t.Fatalf("unexpected dump:\n%s", stdout)
	}
}

func TestVersionCommand(t *testing.T) {
	dir := t.TempDir()
	stdout, _, err := runCLI(t, dir, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(stdout, "gdtoolkit ") {
		t.Fatalf("version output = %q", stdout)
	}
}
