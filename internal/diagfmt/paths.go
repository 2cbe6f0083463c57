package diagfmt

import (
	"os"
	"path/filepath"
	"strings"
)

func displayPath(path string, mode PathMode, base string) string {
	if base == "" {
		if wd, err := os.Getwd(); err == nil {
			base = wd
		}
	}
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
		return path
	case PathModeBasename:
		return filepath.Base(path)
	case PathModeRelative:
		if rel, ok := relativeTo(path, base); ok {
			return rel
		}
		return path
	default:
		if rel, ok := relativeTo(path, base); ok && !strings.HasPrefix(rel, "..") {
			return rel
		}
		return path
	}
}

func relativeTo(path, base string) (string, bool) {
	if !filepath.IsAbs(path) || base == "" {
		return path, !filepath.IsAbs(path)
	}
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return "", false
	}
	return filepath.ToSlash(rel), true
}
