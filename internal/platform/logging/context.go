package logging

import (
	"context"
	"log/slog"
	"maps"
	"sort"
	"sync"
)

// Fields holds ambient key/value pairs attached to a logical operation, such
// as request and correlation identifiers.
type Fields map[string]any

// fieldsKey is the unexported key type for the ambient field store.
type fieldsKey struct{}

// fieldStore is the mutable per-call-chain store behind WithContext. The
// mutex guards SetContext merges against concurrent log emission; the store
// itself is never shared between independent call chains, since each
// WithContext call creates a fresh one.
type fieldStore struct {
	mu     sync.Mutex
	fields Fields
}

func (s *fieldStore) merge(partial Fields) {
	s.mu.Lock()
	defer s.mu.Unlock()
	maps.Copy(s.fields, partial)
}

func (s *fieldStore) snapshot() Fields {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.fields)
}

// WithContext returns a context carrying the given ambient fields. Every
// record logged with the returned context (or one derived from it) through a
// logger built by this package is enriched with the fields. Nested calls
// shadow the outer store, so concurrent operations never observe each
// other's fields.
func WithContext(ctx context.Context, fields Fields) context.Context {
	return context.WithValue(ctx, fieldsKey{}, &fieldStore{fields: maps.Clone(fields)})
}

// RunWithContext establishes the ambient fields for the duration of fn and
// returns fn's result. It is shorthand for fn(WithContext(ctx, fields)).
func RunWithContext(ctx context.Context, fields Fields, fn func(context.Context) error) error {
	return fn(WithContext(ctx, fields))
}

// SetContext merges additional fields into the currently active ambient
// store, if any. When called with a context that carries no ambient store it
// is a silent no-op.
func SetContext(ctx context.Context, partial Fields) {
	if store, ok := ctx.Value(fieldsKey{}).(*fieldStore); ok {
		store.merge(partial)
	}
}

// contextAttrs snapshots the ambient fields as sorted slog attributes.
// Returns nil when the context carries no store.
func contextAttrs(ctx context.Context) []slog.Attr {
	store, ok := ctx.Value(fieldsKey{}).(*fieldStore)
	if !ok {
		return nil
	}

	fields := store.snapshot()
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]slog.Attr, 0, len(keys))
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, fields[k]))
	}
	return attrs
}

// contextHandler merges ambient context fields into each record before
// delegating to the wrapped handler.
type contextHandler struct {
	next slog.Handler
}

func (h *contextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if attrs := contextAttrs(ctx); len(attrs) > 0 {
		r = r.Clone()
		r.AddAttrs(attrs...)
	}
	return h.next.Handle(ctx, r)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{next: h.next.WithAttrs(attrs)}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{next: h.next.WithGroup(name)}
}
