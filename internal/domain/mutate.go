package domain

import (
	"fmt"
	"strings"
	"time"
)

// NewTrip creates a trip with a fresh ID and a single default day.
// Returns ErrValidation when the trimmed name is empty.
func NewTrip(name string) (Trip, error) {
	if strings.TrimSpace(name) == "" {
		return Trip{}, fmt.Errorf("%w: trip name is required", ErrValidation)
	}
	return Trip{
		ID:        NewID(),
		Name:      name,
		Days:      []Day{{ID: NewID(), Name: DefaultDayName, Locations: []Location{}}},
		CreatedAt: time.Now().UTC(),
	}, nil
}

// AddDay appends a new empty day to the trip.
// Returns ErrValidation when the trimmed name is empty.
func (t Trip) AddDay(name string) (Trip, error) {
	if strings.TrimSpace(name) == "" {
		return Trip{}, fmt.Errorf("%w: day name is required", ErrValidation)
	}
	days := make([]Day, len(t.Days), len(t.Days)+1)
	copy(days, t.Days)
	t.Days = append(days, Day{ID: NewID(), Name: name, Locations: []Location{}})
	return t, nil
}

// DeleteDay removes the day with the given ID. A trip must always keep at
// least one day, so deleting the last remaining day returns ErrValidation
// with the trip unchanged. An unknown dayID is a no-op.
func (t Trip) DeleteDay(dayID string) (Trip, error) {
	if len(t.Days) == 1 {
		return Trip{}, fmt.Errorf("%w: a trip must have at least one day", ErrValidation)
	}
	days := make([]Day, 0, len(t.Days))
	for _, d := range t.Days {
		if d.ID != dayID {
			days = append(days, d)
		}
	}
	t.Days = days
	return t, nil
}

// AddLocation appends a location with a fresh ID to the named day, leaving
// all other days untouched. Returns ErrValidation when the trimmed name or
// address is empty, ErrNotFound when the day does not exist.
func (t Trip) AddLocation(dayID string, input LocationInput) (Trip, error) {
	if strings.TrimSpace(input.Name) == "" {
		return Trip{}, fmt.Errorf("%w: location name is required", ErrValidation)
	}
	if strings.TrimSpace(input.Address) == "" {
		return Trip{}, fmt.Errorf("%w: location address is required", ErrValidation)
	}
	i := t.dayIndex(dayID)
	if i < 0 {
		return Trip{}, fmt.Errorf("%w: day does not exist", ErrNotFound)
	}

	images := make([]string, len(input.Images))
	copy(images, input.Images)
	loc := Location{
		ID:      NewID(),
		Name:    input.Name,
		Address: input.Address,
		Notes:   input.Notes,
		Images:  images,
	}

	locs := make([]Location, len(t.Days[i].Locations), len(t.Days[i].Locations)+1)
	copy(locs, t.Days[i].Locations)
	return t.withDayLocations(i, append(locs, loc)), nil
}

// RemoveLocation removes the location with the given ID from the named day.
// A stale or unknown reference (day or location) is a no-op — removal is
// idempotent by design.
func (t Trip) RemoveLocation(dayID, locationID string) Trip {
	i := t.dayIndex(dayID)
	if i < 0 {
		return t
	}
	j := t.Days[i].locationIndex(locationID)
	if j < 0 {
		return t
	}
	old := t.Days[i].Locations
	locs := make([]Location, 0, len(old)-1)
	locs = append(locs, old[:j]...)
	locs = append(locs, old[j+1:]...)
	return t.withDayLocations(i, locs)
}

// MoveLocation swaps the location at index with its neighbor at
// index+direction within the named day. This is a pairwise adjacent swap,
// not an arbitrary move: direction must be -1 or +1 (anything else is
// ErrValidation). A swap that would land out of bounds is a no-op, as is an
// unknown dayID.
func (t Trip) MoveLocation(dayID string, index, direction int) (Trip, error) {
	if direction != -1 && direction != 1 {
		return Trip{}, fmt.Errorf("%w: direction must be -1 or 1", ErrValidation)
	}
	i := t.dayIndex(dayID)
	if i < 0 {
		return t, nil
	}
	old := t.Days[i].Locations
	target := index + direction
	if index < 0 || index >= len(old) || target < 0 || target >= len(old) {
		return t, nil
	}
	locs := make([]Location, len(old))
	copy(locs, old)
	locs[index], locs[target] = locs[target], locs[index]
	return t.withDayLocations(i, locs), nil
}

// EditLocation replaces the location whose ID matches updated.ID within the
// named day with the full updated value. A stale reference is a no-op.
func (t Trip) EditLocation(dayID string, updated Location) Trip {
	i := t.dayIndex(dayID)
	if i < 0 {
		return t
	}
	j := t.Days[i].locationIndex(updated.ID)
	if j < 0 {
		return t
	}
	locs := make([]Location, len(t.Days[i].Locations))
	copy(locs, t.Days[i].Locations)
	locs[j] = updated
	return t.withDayLocations(i, locs)
}

// withDayLocations returns a copy of the trip with day i's locations
// replaced. The days slice is copied so the receiver is never mutated.
func (t Trip) withDayLocations(i int, locs []Location) Trip {
	days := make([]Day, len(t.Days))
	copy(days, t.Days)
	days[i] = Day{ID: days[i].ID, Name: days[i].Name, Locations: locs}
	t.Days = days
	return t
}
