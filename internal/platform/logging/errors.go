package logging

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrorAttrs converts an arbitrary failure value into log attributes.
//
// A nil value yields nil. An error yields a single "error" group holding the
// concrete type, the message, and the unwrapped cause when one exists.
// Anything else is stringified under the "error" key, so panics recovered as
// non-error values still land in the record.
func ErrorAttrs(v any) []slog.Attr {
	if v == nil {
		return nil
	}

	err, ok := v.(error)
	if !ok {
		return []slog.Attr{slog.String("error", fmt.Sprint(v))}
	}

	attrs := []slog.Attr{
		slog.String("type", fmt.Sprintf("%T", err)),
		slog.String("message", err.Error()),
	}
	if cause := errors.Unwrap(err); cause != nil {
		attrs = append(attrs, slog.String("cause", cause.Error()))
	}
	return []slog.Attr{slog.Attr{Key: "error", Value: slog.GroupValue(attrs...)}}
}
