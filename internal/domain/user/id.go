package user

import "github.com/ymatsuda/todo-backend/internal/domain"

// ID uniquely identifies a User. The zero value is invalid; obtain values
// through GenerateID or ParseID only.
type ID struct {
	value string
}

// GenerateID returns a fresh, time-sortable user identifier.
func GenerateID() ID {
	return ID{value: domain.NewID()}
}

// ParseID validates an externally supplied identifier string.
func ParseID(raw string) (ID, error) {
	if raw == "" {
		return ID{}, domain.Validationf("user_id", domain.MsgRequired)
	}
	if !domain.IsCanonicalID(raw) {
		return ID{}, domain.Validationf("user_id", domain.MsgBadUUID)
	}
	return ID{value: raw}, nil
}

// Value returns the underlying identifier string.
func (id ID) Value() string {
	return id.value
}

// Equals reports whether two user identifiers hold the same string.
// Identifiers of other entity kinds are distinct types and cannot compare
// equal by construction.
func (id ID) Equals(other ID) bool {
	return id.value == other.value
}

// String implements fmt.Stringer.
func (id ID) String() string {
	return id.value
}
