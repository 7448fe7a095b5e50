package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/wayplan/wayplan/internal/domain"
	"github.com/wayplan/wayplan/internal/maplink"
)

// createTripRequest is the body for POST /trips.
type createTripRequest struct {
	Name string `json:"name"`
}

type tripResponse struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Days      []dayResponse `json:"days"`
	CreatedAt time.Time     `json:"created_at"`
}

type dayResponse struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Locations []locationResponse `json:"locations"`
}

// locationResponse carries the stored location plus a derived map_url the
// client can open directly.
type locationResponse struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Address string   `json:"address"`
	Notes   string   `json:"notes,omitempty"`
	Images  []string `json:"images"`
	MapURL  string   `json:"map_url"`
}

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req createTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadBody(w)
		return
	}

	trip, err := s.trips.Create(r.Context(), req.Name)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tripToResponse(trip))
}

// ListTrips handles GET /trips. Trips are returned newest first.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := s.trips.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	out := make([]tripResponse, 0, len(trips))
	for _, t := range trips {
		out = append(out, tripToResponse(t))
	}
	writeJSON(w, http.StatusOK, out)
}

// GetTrip handles GET /trips/{tripID}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.Get(r.Context(), chi.URLParam(r, "tripID"))
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// DeleteTrip handles DELETE /trips/{tripID}.
// Deletion is idempotent: an already-deleted trip still yields 204, so a
// client whose state lags behind storage never sees a spurious error.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	if err := s.trips.Delete(r.Context(), chi.URLParam(r, "tripID")); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- mapping helpers --------------------------------------------------------

// tripToResponse converts a domain.Trip into the response shape, deriving a
// map search URL for every location.
func tripToResponse(t domain.Trip) tripResponse {
	days := make([]dayResponse, 0, len(t.Days))
	for _, d := range t.Days {
		locs := make([]locationResponse, 0, len(d.Locations))
		for _, l := range d.Locations {
			images := l.Images
			if images == nil {
				images = []string{}
			}
			locs = append(locs, locationResponse{
				ID:      l.ID,
				Name:    l.Name,
				Address: l.Address,
				Notes:   l.Notes,
				Images:  images,
				MapURL:  maplink.SearchURL(l.Address),
			})
		}
		days = append(days, dayResponse{ID: d.ID, Name: d.Name, Locations: locs})
	}
	return tripResponse{ID: t.ID, Name: t.Name, Days: days, CreatedAt: t.CreatedAt}
}
