package todo

import "github.com/ymatsuda/todo-backend/internal/domain"

// ID uniquely identifies a Todo. The zero value is invalid; obtain values
// through GenerateID or ParseID only. ID and user.ID are distinct types, so
// identifiers of different kinds never compare equal even when they hold the
// same string.
type ID struct {
	value string
}

// GenerateID returns a fresh, time-sortable todo identifier.
func GenerateID() ID {
	return ID{value: domain.NewID()}
}

// ParseID validates an externally supplied identifier string.
func ParseID(raw string) (ID, error) {
	if raw == "" {
		return ID{}, domain.Validationf("todo_id", domain.MsgRequired)
	}
	if !domain.IsCanonicalID(raw) {
		return ID{}, domain.Validationf("todo_id", domain.MsgBadUUID)
	}
	return ID{value: raw}, nil
}

// Value returns the underlying identifier string.
func (id ID) Value() string {
	return id.value
}

// Equals reports whether two todo identifiers hold the same string.
func (id ID) Equals(other ID) bool {
	return id.value == other.value
}

// String implements fmt.Stringer.
func (id ID) String() string {
	return id.value
}
