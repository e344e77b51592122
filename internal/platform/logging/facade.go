package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"sync/atomic"
)

// ErrAlreadyConfigured is returned by Configure when the facade backend has
// already been set, either explicitly or by lazy initialization.
var ErrAlreadyConfigured = errors.New("logging: already configured")

// fallback receives the warning emitted when LOG_LEVEL holds an unknown
// value. Tests may swap it out.
var fallback io.Writer = os.Stderr

// buildFromEnv constructs the default backend handler from the process
// environment. It is a variable so tests can inject failing or observable
// builders.
var buildFromEnv = func() (slog.Handler, error) {
	return newHandler(levelFromEnv(), "json", os.Stderr), nil
}

// facade is the process-wide lazily configured logging backend. All loggers
// obtained through Logger share it: records emitted before configuration
// complete are handled by whichever backend the first triggering call
// installs, and later Configure calls are rejected.
type facade struct {
	mu         sync.Mutex
	configured bool
	inflight   chan struct{}
	backend    atomic.Pointer[slog.Handler]
}

var global facade

// Logger returns a logger backed by the shared facade. The category
// segments, if any, are joined with "." and attached to every record as the
// "category" attribute:
//
//	logging.Logger("usecase", "todo").InfoContext(ctx, "creating todo")
//
// The first record emitted triggers backend configuration from the
// environment; until that completes, and if it fails, records are dropped
// and configuration is retried on the next record.
func Logger(category ...string) *slog.Logger {
	h := slog.Handler(&facadeHandler{})
	if len(category) > 0 {
		h = h.WithAttrs([]slog.Attr{slog.String("category", strings.Join(category, "."))})
	}
	return slog.New(&contextHandler{next: h})
}

// Configure installs the given handler as the facade backend. It returns
// ErrAlreadyConfigured when a backend is already in place; callers that only
// need the facade to be ready may treat that as success.
func Configure(handler slog.Handler) error {
	global.mu.Lock()
	defer global.mu.Unlock()

	if global.configured {
		return ErrAlreadyConfigured
	}
	global.backend.Store(&handler)
	global.configured = true
	return nil
}

// Reset clears the facade backend so the next record triggers configuration
// again. It exists for tests.
func Reset() {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.configured = false
	global.inflight = nil
	global.backend.Store(nil)
}

// ensure returns the current backend, kicking off background configuration
// when none exists yet. It never blocks on the configuration attempt; calls
// that race it get a nil backend and drop their record.
func (f *facade) ensure() slog.Handler {
	if h := f.backend.Load(); h != nil {
		return *h
	}

	f.mu.Lock()
	if f.configured {
		h := f.backend.Load()
		f.mu.Unlock()
		if h != nil {
			return *h
		}
		return nil
	}
	if f.inflight != nil {
		f.mu.Unlock()
		return nil
	}
	done := make(chan struct{})
	f.inflight = done
	f.mu.Unlock()

	go f.configure(done)
	return nil
}

// configure runs a single environment-driven configuration attempt. On
// success the backend is installed via Configure; a Configure that lost the
// race to an explicit caller still counts as configured. On failure the
// inflight marker is cleared so a later record retries.
func (f *facade) configure(done chan struct{}) {
	defer close(done)

	handler, err := buildFromEnv()
	if err == nil {
		err = Configure(handler)
		if errors.Is(err, ErrAlreadyConfigured) {
			err = nil
		}
	}

	f.mu.Lock()
	f.inflight = nil
	f.mu.Unlock()

	if err != nil {
		fmt.Fprintf(fallback, "logging: configuration failed: %v\n", err)
	}
}

// levelFromEnv reads LOG_LEVEL and falls back to info, warning on fallback
// when the variable holds an unrecognized value.
func levelFromEnv() slog.Level {
	raw := os.Getenv("LOG_LEVEL")
	if raw == "" {
		return slog.LevelInfo
	}
	lvl, ok := parseLevel(raw)
	if !ok {
		fmt.Fprintf(fallback, "logging: unknown LOG_LEVEL %q, using info\n", raw)
	}
	return lvl
}

// handlerOp records a WithAttrs or WithGroup call so it can be replayed
// against the real backend once it exists.
type handlerOp struct {
	attrs []slog.Attr
	group string
}

// facadeHandler is a slog.Handler that resolves the shared backend on every
// call, replaying any accumulated WithAttrs/WithGroup operations onto it.
type facadeHandler struct {
	ops []handlerOp
}

func (h *facadeHandler) resolve() slog.Handler {
	backend := global.ensure()
	if backend == nil {
		return nil
	}
	for _, op := range h.ops {
		if op.group != "" {
			backend = backend.WithGroup(op.group)
		} else {
			backend = backend.WithAttrs(op.attrs)
		}
	}
	return backend
}

func (h *facadeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	if backend := h.resolve(); backend != nil {
		return backend.Enabled(ctx, level)
	}
	return true
}

func (h *facadeHandler) Handle(ctx context.Context, r slog.Record) error {
	backend := h.resolve()
	if backend == nil {
		return nil
	}
	return backend.Handle(ctx, r)
}

func (h *facadeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	ops := make([]handlerOp, len(h.ops), len(h.ops)+1)
	copy(ops, h.ops)
	return &facadeHandler{ops: append(ops, handlerOp{attrs: attrs})}
}

func (h *facadeHandler) WithGroup(name string) slog.Handler {
	ops := make([]handlerOp, len(h.ops), len(h.ops)+1)
	copy(ops, h.ops)
	return &facadeHandler{ops: append(ops, handlerOp{group: name})}
}
