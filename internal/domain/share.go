package domain

import (
	"fmt"
	"strings"
	"time"
)

// SharedNameSuffix is appended to the name of an imported trip so the
// recipient can tell it apart from trips they created themselves.
const SharedNameSuffix = " (shared)"

// ShareableTrip is the stripped projection of a trip embedded in a share
// link: no ids (meaningless to the recipient) and no images (too large for
// a URL).
type ShareableTrip struct {
	Name string         `json:"name"`
	Days []ShareableDay `json:"days"`
}

// ShareableDay mirrors Day without its ID.
type ShareableDay struct {
	Name      string              `json:"name"`
	Locations []ShareableLocation `json:"locations"`
}

// ShareableLocation keeps only the fields that mean something to the
// recipient: name, address, and notes.
type ShareableLocation struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Notes   string `json:"notes,omitempty"`
}

// BuildShareable projects a trip into its shareable shape.
func BuildShareable(t Trip) ShareableTrip {
	days := make([]ShareableDay, 0, len(t.Days))
	for _, d := range t.Days {
		locs := make([]ShareableLocation, 0, len(d.Locations))
		for _, l := range d.Locations {
			locs = append(locs, ShareableLocation{Name: l.Name, Address: l.Address, Notes: l.Notes})
		}
		days = append(days, ShareableDay{Name: d.Name, Locations: locs})
	}
	return ShareableTrip{Name: t.Name, Days: days}
}

// MaterializeImportedTrip rebuilds a full trip from a shareable payload:
// fresh ids for the trip and every day and location, a localized "(shared)"
// suffix on the name, notes defaulted to empty, and images initialized empty
// (images never travel through a share link). Returns ErrValidation when the
// payload lacks a name or any days — surfaced to the user as invalid trip
// data, never a crash.
func MaterializeImportedTrip(s ShareableTrip) (Trip, error) {
	if strings.TrimSpace(s.Name) == "" || len(s.Days) == 0 {
		return Trip{}, fmt.Errorf("%w: invalid trip data", ErrValidation)
	}

	days := make([]Day, 0, len(s.Days))
	for _, d := range s.Days {
		locs := make([]Location, 0, len(d.Locations))
		for _, l := range d.Locations {
			locs = append(locs, Location{
				ID:      NewID(),
				Name:    l.Name,
				Address: l.Address,
				Notes:   l.Notes,
				Images:  []string{},
			})
		}
		days = append(days, Day{ID: NewID(), Name: d.Name, Locations: locs})
	}

	return Trip{
		ID:        NewID(),
		Name:      s.Name + SharedNameSuffix,
		Days:      days,
		CreatedAt: time.Now().UTC(),
	}, nil
}
