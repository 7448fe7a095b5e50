package domain

import "github.com/google/uuid"

// NewID returns a fresh opaque identifier for a trip, day, or location.
// IDs only need to stay unique within one collection's lifetime; UUIDs are
// stronger than required, which is fine. Legacy documents may carry ids from
// older schemes — they are kept as-is, so ids must always be treated as
// opaque strings.
func NewID() string {
	return uuid.NewString()
}
