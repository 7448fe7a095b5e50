package domain

// Location is a single point of interest: a name, an address, optional
// free-form notes, and an ordered set of images. Images are opaque
// self-contained encodings (data URLs) supplied by the client; they travel
// with their location but are never included in a share link.
type Location struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Address string   `json:"address"`
	Notes   string   `json:"notes,omitempty"`
	Images  []string `json:"images"`
}

// LocationInput carries the user-supplied fields for a new location.
// The ID is assigned by AddLocation.
type LocationInput struct {
	Name    string
	Address string
	Notes   string
	Images  []string
}
