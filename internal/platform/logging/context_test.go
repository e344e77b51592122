package logging_test

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/ymatsuda/todo-backend/internal/platform/logging"
)

func TestWithContextEnrichesRecords(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New("info", "json", &buf)

	ctx := logging.WithContext(context.Background(), logging.Fields{
		"request_id": "req-1",
	})
	logger.InfoContext(ctx, "handling")

	m := decodeLine(t, &buf)
	if m["request_id"] != "req-1" {
		t.Errorf("request_id = %v, want req-1", m["request_id"])
	}
}

func TestSetContextMergesIntoActiveStore(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New("info", "json", &buf)

	ctx := logging.WithContext(context.Background(), logging.Fields{
		"request_id": "req-1",
	})
	logging.SetContext(ctx, logging.Fields{"user_id": "u-1"})
	logger.InfoContext(ctx, "enriched")

	m := decodeLine(t, &buf)
	if m["request_id"] != "req-1" || m["user_id"] != "u-1" {
		t.Errorf("merged fields missing: %v", m)
	}
}

func TestSetContextWithoutStoreIsNoOp(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New("info", "json", &buf)

	ctx := context.Background()
	logging.SetContext(ctx, logging.Fields{"user_id": "u-1"})
	logger.InfoContext(ctx, "plain")

	m := decodeLine(t, &buf)
	if _, ok := m["user_id"]; ok {
		t.Errorf("unexpected ambient field on plain context: %v", m)
	}
}

func TestNestedWithContextShadowsOuter(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New("info", "json", &buf)

	outer := logging.WithContext(context.Background(), logging.Fields{
		"request_id": "outer",
	})
	inner := logging.WithContext(outer, logging.Fields{
		"request_id": "inner",
	})

	logging.SetContext(inner, logging.Fields{"extra": "x"})

	logger.InfoContext(outer, "outer record")
	m := decodeLine(t, &buf)
	if m["request_id"] != "outer" {
		t.Errorf("outer request_id = %v, want outer", m["request_id"])
	}
	if _, ok := m["extra"]; ok {
		t.Errorf("inner merge leaked into outer store: %v", m)
	}

	logger.InfoContext(inner, "inner record")
	m = decodeLine(t, &buf)
	if m["request_id"] != "inner" || m["extra"] != "x" {
		t.Errorf("inner fields wrong: %v", m)
	}
}

func TestRunWithContext(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New("info", "json", &buf)

	wantErr := errors.New("boom")
	err := logging.RunWithContext(context.Background(), logging.Fields{"op": "create"},
		func(ctx context.Context) error {
			logger.InfoContext(ctx, "inside")
			return wantErr
		})
	if !errors.Is(err, wantErr) {
		t.Errorf("RunWithContext err = %v, want %v", err, wantErr)
	}

	m := decodeLine(t, &buf)
	if m["op"] != "create" {
		t.Errorf("op = %v, want create", m["op"])
	}
}

func TestConcurrentOperationsAreIsolated(t *testing.T) {
	var mu sync.Mutex
	var buf bytes.Buffer
	logger := logging.New("info", "json", &buf)

	var wg sync.WaitGroup
	for _, id := range []string{"a", "b", "c", "d"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ctx := logging.WithContext(context.Background(), logging.Fields{
				"request_id": id,
			})
			logging.SetContext(ctx, logging.Fields{"worker": id})
			mu.Lock()
			defer mu.Unlock()
			logger.InfoContext(ctx, "working")
		}()
	}
	wg.Wait()

	for range 4 {
		m := decodeLine(t, &buf)
		if m["request_id"] != m["worker"] {
			t.Errorf("fields crossed between operations: %v", m)
		}
	}
}
