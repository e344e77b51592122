package user

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ymatsuda/todo-backend/internal/domain"
)

// RFC 5321 length limits.
const (
	emailMaxLen       = 254
	emailLocalMaxLen  = 64
	emailDomainMaxLen = 255
)

// emailShape enforces the basic local@domain.tld form. Finer-grained
// address validation is deliberately out of scope; delivery is the only
// real validator of an email address.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email is the validated email address of a User. The raw casing is
// preserved; comparisons and Normalized() are case-insensitive.
type Email struct {
	value string
}

// NewEmail validates value and returns it as an Email.
func NewEmail(value string) (Email, error) {
	if value == "" {
		return Email{}, domain.Validationf("email", domain.MsgRequired)
	}
	local, dom, found := strings.Cut(value, "@")
	if !found || local == "" || dom == "" {
		return Email{}, domain.Validationf("email", "must be a valid email address")
	}
	if utf8.RuneCountInString(local) > emailLocalMaxLen {
		return Email{}, domain.Validationf("email", "local part must be at most %d characters", emailLocalMaxLen)
	}
	if utf8.RuneCountInString(dom) > emailDomainMaxLen {
		return Email{}, domain.Validationf("email", "domain must be at most %d characters", emailDomainMaxLen)
	}
	if utf8.RuneCountInString(value) > emailMaxLen {
		return Email{}, domain.Validationf("email", "must be at most %d characters", emailMaxLen)
	}
	if !emailShape.MatchString(value) {
		return Email{}, domain.Validationf("email", "must be a valid email address")
	}
	return Email{value: value}, nil
}

// Value returns the address exactly as it was supplied.
func (e Email) Value() string {
	return e.value
}

// Normalized returns the lowercased form used for comparisons.
func (e Email) Normalized() string {
	return strings.ToLower(e.value)
}

// Equals compares addresses case-insensitively.
func (e Email) Equals(other Email) bool {
	return e.Normalized() == other.Normalized()
}

// String implements fmt.Stringer.
func (e Email) String() string {
	return e.value
}
