package main

import "testing"

func TestReadUIMode(t *testing.T) {
	cases := []struct {
		input string
		want  uiMode
	}{
		{"", uiModeAuto},
		{"auto", uiModeAuto},
		{" ON ", uiModeOn},
		{"off", uiModeOff},
	}
	for _, tc := range cases {
		got, err := readUIMode(tc.input)
		if err != nil {
			t.Fatalf("readUIMode(%q) error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("readUIMode(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
	if _, err := readUIMode("sometimes"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
	if _, err := readColorMode("rainbow"); err == nil {
		t.Fatal("expected error for unknown color mode")
	}
}

func TestShouldUseTUI(t *testing.T) {
	if !shouldUseTUI(uiModeOn) {
		t.Fatal("--ui=on must enable the progress UI")
	}
	if shouldUseTUI(uiModeOff) {
		t.Fatal("--ui=off must disable the progress UI")
	}
}
