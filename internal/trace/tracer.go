package trace

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const defaultRingSize = 4096

// Tracer receives trace events. Implementations are goroutine-safe.
type Tracer interface {
	Emit(ev *Event)
	Flush() error
	Close() error
	Level() Level
	// Enabled reports whether events are recorded at all.
	Enabled() bool
}

// Config holds tracer configuration, usually taken from --trace flags.
type Config struct {
	Level      Level
	Format     Format    // FormatAuto picks NDJSON for *.ndjson paths
	Output     io.Writer // takes precedence over OutputPath
	OutputPath string    // "-" or "" for stderr
	RingSize   int       // events kept in memory at LevelError
}

// New creates a tracer for cfg.
//
// At LevelError events are recorded in memory with detail granularity and
// only written by DumpOnFailure.
func New(cfg Config) (Tracer, error) {
	if cfg.Level == LevelOff {
		return Nop, nil
	}
	if cfg.Level == LevelError {
		return NewRingTracer(cfg.RingSize, LevelDetail), nil
	}

	format := cfg.Format
	if format == FormatAuto {
		format = FormatText
		if strings.HasSuffix(cfg.OutputPath, ".ndjson") || strings.HasSuffix(cfg.OutputPath, ".jsonl") {
			format = FormatNDJSON
		}
	}
	w, err := openOutput(cfg)
	if err != nil {
		return nil, err
	}
	return NewStreamTracer(w, cfg.Level, format), nil
}

// DumpOnFailure writes the in-memory events of a LevelError tracer to w.
// Other tracers have already written everything.
func DumpOnFailure(t Tracer, w io.Writer) error {
	rt, ok := t.(*RingTracer)
	if !ok {
		return nil
	}
	return rt.Dump(w, FormatText)
}

func openOutput(cfg Config) (io.Writer, error) {
	if cfg.Output != nil {
		return cfg.Output, nil
	}
	if cfg.OutputPath == "" || cfg.OutputPath == "-" {
		return os.Stderr, nil
	}
	// #nosec G304 -- path comes from the --trace flag
	f, err := os.Create(cfg.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace output: %w", err)
	}
	return f, nil
}

func isStdStream(w io.Writer) bool {
	return w == os.Stderr || w == os.Stdout
}
