package domain

// DefaultDayName is the label given to the day synthesized for brand-new
// trips, migrated legacy documents, and imported flat share payloads.
const DefaultDayName = "Day 1"

// Day is one day's itinerary within a trip: an ordered sub-collection of
// locations. Location order is the display order.
type Day struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Locations []Location `json:"locations"`
}

// locationIndex returns the position of the location with the given ID, or -1.
func (d Day) locationIndex(locationID string) int {
	for i, l := range d.Locations {
		if l.ID == locationID {
			return i
		}
	}
	return -1
}
