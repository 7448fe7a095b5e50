// Package domain contains the core document types and the pure document
// operations for the Wayplan trip planner. This package is imported by every
// other internal package (repo, service, handler).
//
// All types are treated as immutable values: every operation returns a new
// Trip (and new Day/Location as needed) rather than modifying in place. The
// update discipline depends on replacing, never mutating, nested structures,
// so a caller holding a pre-operation value always sees it unchanged.
package domain

import "time"

// Trip is the top-level planning unit: a named, ordered sequence of days.
// A trip always contains at least one day — NewTrip creates one, Migrate
// synthesizes one for legacy documents, and DeleteDay refuses to remove the
// last one.
type Trip struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Days      []Day     `json:"days"`
	CreatedAt time.Time `json:"created_at"`
}

// FindDay returns the day with the given ID, and whether it exists.
func (t Trip) FindDay(dayID string) (Day, bool) {
	for _, d := range t.Days {
		if d.ID == dayID {
			return d, true
		}
	}
	return Day{}, false
}

// dayIndex returns the position of the day with the given ID, or -1.
func (t Trip) dayIndex(dayID string) int {
	for i, d := range t.Days {
		if d.ID == dayID {
			return i
		}
	}
	return -1
}
