package domain

import "time"

// RawTrip is the persisted shape of a trip before schema migration.
// Documents written before days existed carry a flat locations array and no
// days field; the stored format has no version tag, so the shape is detected
// structurally. Only the repo layer and Migrate ever see this type.
type RawTrip struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Days      []Day      `json:"days,omitempty"`
	Locations []Location `json:"locations,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// Migrate converts a raw trip into the current day-grouped shape. A legacy
// trip (no days) gets a single synthesized default day holding its flat
// locations, or an empty one when those are absent too. A present-but-empty
// days array is treated the same as absent, since every migrated trip must
// end up with at least one day. Idempotent: migrating an already-current
// trip passes it through unchanged.
func Migrate(raw RawTrip) Trip {
	t := Trip{ID: raw.ID, Name: raw.Name, CreatedAt: raw.CreatedAt}
	if len(raw.Days) > 0 {
		t.Days = raw.Days
		return t
	}
	locs := raw.Locations
	if locs == nil {
		locs = []Location{}
	}
	t.Days = []Day{{ID: NewID(), Name: DefaultDayName, Locations: locs}}
	return t
}

// MigrateAll migrates every trip loaded from the store. It runs once per
// load, before any other component observes the collection, so the rest of
// the code never sees the legacy shape. Always returns a non-nil collection.
func MigrateAll(raws []RawTrip) Collection {
	out := make(Collection, 0, len(raws))
	for _, raw := range raws {
		out = append(out, Migrate(raw))
	}
	return out
}
