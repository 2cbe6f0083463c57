package trace

import (
	"context"
	"sync/atomic"
	"time"
)

var (
	globalSeq   atomic.Uint64
	globalSpans atomic.Uint64
)

// NextSeq returns a monotonically increasing sequence number.
func NextSeq() uint64 {
	return globalSeq.Add(1)
}

// Span is an open begin/end pair. The zero value and nil are inert.
type Span struct {
	tracer  Tracer
	id      uint64
	parent  uint64
	scope   Scope
	name    string
	file    string
	started time.Time
	extra   map[string]string
}

// Begin starts a span under parent (0 for a root) and emits its begin event.
func Begin(t Tracer, scope Scope, name string, parent uint64) *Span {
	return begin(t, scope, name, "", parent)
}

func begin(t Tracer, scope Scope, name, file string, parent uint64) *Span {
	if t == nil || !t.Enabled() || !t.Level().ShouldEmit(scope) {
		return &Span{tracer: Nop}
	}
	sp := &Span{
		tracer:  t,
		id:      globalSpans.Add(1),
		parent:  parent,
		scope:   scope,
		name:    name,
		file:    file,
		started: time.Now(),
	}
	t.Emit(sp.event(KindSpanBegin, sp.started, ""))
	return sp
}

func (s *Span) event(kind Kind, at time.Time, detail string) *Event {
	return &Event{
		Time:     at,
		Kind:     kind,
		Scope:    s.scope,
		SpanID:   s.id,
		ParentID: s.parent,
		Name:     s.name,
		File:     s.file,
		Detail:   detail,
	}
}

// End emits the end event and returns the span duration.
func (s *Span) End(detail string) time.Duration {
	if s == nil || s.id == 0 {
		return 0
	}
	now := time.Now()
	ev := s.event(KindSpanEnd, now, detail)
	ev.Extra = s.extra
	s.tracer.Emit(ev)
	return now.Sub(s.started)
}

// WithExtra attaches key=value to the end event.
func (s *Span) WithExtra(key, value string) *Span {
	if s == nil || s.id == 0 {
		return s
	}
	if s.extra == nil {
		s.extra = make(map[string]string)
	}
	s.extra[key] = value
	return s
}

// ID returns the span ID, 0 for inert spans.
func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.id
}

// Start opens a span parented to the span stored in ctx and returns a
// context carrying the new one.
func Start(ctx context.Context, scope Scope, name string) (context.Context, *Span) {
	return start(ctx, scope, name, "")
}

// StartFile opens a file-scope span for work on path.
func StartFile(ctx context.Context, name, path string) (context.Context, *Span) {
	return start(ctx, ScopeFile, name, path)
}

func start(ctx context.Context, scope Scope, name, file string) (context.Context, *Span) {
	parent := CurrentSpan(ctx)
	if file == "" {
		file = parent.File
	}
	sp := begin(FromContext(ctx), scope, name, file, parent.SpanID)
	if sp.id == 0 {
		return ctx, sp
	}
	return WithSpanContext(ctx, SpanContext{SpanID: sp.id, File: file}), sp
}
