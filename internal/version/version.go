// Package version holds the gdtoolkit build information.
package version

import "github.com/fatih/color"

// These variables can be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)
)

// Colored renders Version with one colour per component when enabled.
// Versions that are not major.minor.patch are returned unchanged.
func Colored(enabled bool) string {
	major, minor, patch, rest, ok := split(Version)
	if !ok || !enabled {
		return Version
	}
	return sprint(versionMajorColor, major) + "." + sprint(versionMinorColor, minor) + "." +
		sprint(versionPatchColor, patch) + rest
}

func sprint(c *color.Color, s string) string {
	c.EnableColor()
	return c.Sprint(s)
}

// Line is the text printed by `gdtoolkit version`.
func Line(colored bool) string {
	out := "gdtoolkit " + Colored(colored)
	if GitCommit != "" {
		out += " (" + GitCommit + ")"
	}
	if BuildDate != "" {
		out += " built " + BuildDate
	}
	return out
}

// split cuts "1.2.3-x" into "1", "2", "3" and "-x".
func split(v string) (major, minor, patch, rest string, ok bool) {
	parts := make([]string, 0, 3)
	start := 0
	for i := 0; i <= len(v); i++ {
		if i < len(v) && v[i] >= '0' && v[i] <= '9' {
			continue
		}
		if i == start {
			return "", "", "", "", false
		}
		parts = append(parts, v[start:i])
		if len(parts) == 3 {
			return parts[0], parts[1], parts[2], v[i:], true
		}
		if i == len(v) || v[i] != '.' {
			return "", "", "", "", false
		}
		start = i + 1
	}
	return "", "", "", "", false
}
