package todo

import (
	"strings"
	"unicode/utf8"

	"github.com/ymatsuda/todo-backend/internal/domain"
)

const bodyMaxLen = 1000

// Body is the optional free-text body of a Todo. The empty body is a valid,
// distinguished state; non-empty bodies are limited to 1000 characters with
// no leading or trailing whitespace. The zero value is the empty body.
type Body struct {
	value string
}

// NewBody validates value and returns it as a Body. The empty string yields
// the empty body.
func NewBody(value string) (Body, error) {
	if value == "" {
		return Body{}, nil
	}
	if strings.TrimSpace(value) != value {
		return Body{}, domain.Validationf("body", domain.MsgWhitespace)
	}
	if utf8.RuneCountInString(value) > bodyMaxLen {
		return Body{}, domain.Validationf("body", "must be at most %d characters", bodyMaxLen)
	}
	return Body{value: value}, nil
}

// EmptyBody returns the distinguished empty body.
func EmptyBody() Body {
	return Body{}
}

// Value returns the underlying body string.
func (b Body) Value() string {
	return b.value
}

// IsEmpty reports whether the body is the empty state.
func (b Body) IsEmpty() bool {
	return b.value == ""
}

// Equals compares bodies by value.
func (b Body) Equals(other Body) bool {
	return b.value == other.value
}

// String implements fmt.Stringer.
func (b Body) String() string {
	return b.value
}
