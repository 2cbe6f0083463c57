package driver

import (
	"time"

	"gdtoolkit/internal/observ"
)

// record folds the duration since start into the named phase of t.
func record(t *observ.Timer, phase string, start time.Time) {
	if t == nil {
		return
	}
	t.Add(phase, time.Since(start))
}
