package user

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ymatsuda/todo-backend/internal/domain"
)

const (
	usernameMinLen = 3
	usernameMaxLen = 50
)

var usernameChars = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Username is the validated display name of a User. Unlike Email, equality
// is case-sensitive.
type Username struct {
	value string
}

// NewUsername validates value and returns it as a Username.
func NewUsername(value string) (Username, error) {
	if value == "" {
		return Username{}, domain.Validationf("name", domain.MsgRequired)
	}
	if strings.TrimSpace(value) != value {
		return Username{}, domain.Validationf("name", domain.MsgWhitespace)
	}
	if n := utf8.RuneCountInString(value); n < usernameMinLen {
		return Username{}, domain.Validationf("name", "must be at least %d characters", usernameMinLen)
	} else if n > usernameMaxLen {
		return Username{}, domain.Validationf("name", "must be at most %d characters", usernameMaxLen)
	}
	if !usernameChars.MatchString(value) {
		return Username{}, domain.Validationf("name", "may only contain letters, digits, underscores, and hyphens")
	}
	return Username{value: value}, nil
}

// Value returns the underlying name.
func (u Username) Value() string {
	return u.value
}

// Equals compares names case-sensitively.
func (u Username) Equals(other Username) bool {
	return u.value == other.value
}

// String implements fmt.Stringer.
func (u Username) String() string {
	return u.value
}
