package todo

import (
	"strings"
	"unicode/utf8"

	"github.com/ymatsuda/todo-backend/internal/domain"
)

const titleMaxLen = 200

// Title is the validated title of a Todo: 1-200 characters with no leading
// or trailing whitespace.
type Title struct {
	value string
}

// NewTitle validates value and returns it as a Title.
func NewTitle(value string) (Title, error) {
	if value == "" {
		return Title{}, domain.Validationf("title", domain.MsgRequired)
	}
	if strings.TrimSpace(value) != value {
		return Title{}, domain.Validationf("title", domain.MsgWhitespace)
	}
	if utf8.RuneCountInString(value) > titleMaxLen {
		return Title{}, domain.Validationf("title", "must be at most %d characters", titleMaxLen)
	}
	return Title{value: value}, nil
}

// Value returns the underlying title string.
func (t Title) Value() string {
	return t.value
}

// Equals compares titles by value.
func (t Title) Equals(other Title) bool {
	return t.value == other.value
}

// String implements fmt.Stringer.
func (t Title) String() string {
	return t.value
}
