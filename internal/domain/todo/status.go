package todo

import "github.com/ymatsuda/todo-backend/internal/domain"

// Status represents the completion state of a Todo. The enumeration is
// closed but transitions are free: any status may change to any other.
type Status string

const (
	StatusNotStarted Status = "NOT_STARTED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusPending    Status = "PENDING"
	StatusCompleted  Status = "COMPLETED"
)

// ParseStatus validates an externally supplied status string.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.IsValid() {
		return "", domain.Validationf("status", "invalid: %q", raw)
	}
	return s, nil
}

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusPending, StatusCompleted:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
