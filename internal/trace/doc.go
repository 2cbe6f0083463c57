// Package trace is the logging layer of gdtoolkit.
//
// Every command can write a stream of structured events describing what the
// driver does: one span per batch, per pass (tokenize, normalize, parse,
// format, lint) and per file. Output goes to stderr or a file, either as
// readable text or NDJSON.
//
//	gdtoolkit lint --trace=- --trace-level=detail scripts/
//
// # Levels
//
//   - LevelOff: nothing
//   - LevelError: failures only
//   - LevelPhase: driver and pass boundaries
//   - LevelDetail: per-file events
//   - LevelDebug: everything
//
// # Context propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "parse", 0)
//	defer span.End("")
package trace
