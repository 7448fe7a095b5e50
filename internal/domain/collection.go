package domain

import "sort"

// Collection is the full ordered set of trips owned by one user — the unit
// of persistence. Trips hold no references across each other.
type Collection []Trip

// Find returns the trip with the given ID, and whether it exists.
func (c Collection) Find(tripID string) (Trip, bool) {
	for _, t := range c {
		if t.ID == tripID {
			return t, true
		}
	}
	return Trip{}, false
}

// Upsert replaces the trip with a matching ID, or appends when absent.
// Returns a new collection; the receiver is unchanged.
func (c Collection) Upsert(trip Trip) Collection {
	out := make(Collection, len(c))
	copy(out, c)
	for i, t := range out {
		if t.ID == trip.ID {
			out[i] = trip
			return out
		}
	}
	return append(out, trip)
}

// Delete removes the trip with the given ID. Deleting an absent trip is a
// no-op — the returned collection simply equals the input.
func (c Collection) Delete(tripID string) Collection {
	out := make(Collection, 0, len(c))
	for _, t := range c {
		if t.ID != tripID {
			out = append(out, t)
		}
	}
	return out
}

// Sorted returns a copy ordered by CreatedAt descending (newest first),
// the default list order.
func (c Collection) Sorted() Collection {
	out := make(Collection, len(c))
	copy(out, c)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
