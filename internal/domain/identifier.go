package domain

import (
	"regexp"

	"github.com/google/uuid"
)

// canonicalID matches the hyphenated 8-4-4-4-12 UUID form. Hex digits are
// accepted in either case; generation always emits lowercase.
var canonicalID = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// NewID returns a fresh UUID v7 string. v7 identifiers embed a millisecond
// timestamp in their high bits, so freshly generated IDs sort by creation
// time.
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// IsCanonicalID reports whether raw is a hyphenated UUID string. Unlike
// uuid.Parse it rejects the braced, URN, and undashed forms.
func IsCanonicalID(raw string) bool {
	return canonicalID.MatchString(raw)
}
