package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wayplan/wayplan/internal/domain"
)

// locationRequest is the body for adding or editing a location. Images are
// opaque data-URL strings produced by the client's file reader.
type locationRequest struct {
	Name    string   `json:"name"`
	Address string   `json:"address"`
	Notes   string   `json:"notes"`
	Images  []string `json:"images"`
}

// moveLocationRequest is the body for POST .../locations/move.
// Direction must be -1 or 1: a pairwise swap with a neighbor, not an
// arbitrary reorder.
type moveLocationRequest struct {
	Index     int `json:"index"`
	Direction int `json:"direction"`
}

// AddLocation handles POST /trips/{tripID}/days/{dayID}/locations.
func (s *Server) AddLocation(w http.ResponseWriter, r *http.Request) {
	var req locationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadBody(w)
		return
	}

	input := domain.LocationInput{
		Name:    req.Name,
		Address: req.Address,
		Notes:   req.Notes,
		Images:  req.Images,
	}
	trip, err := s.trips.AddLocation(r.Context(), chi.URLParam(r, "tripID"), chi.URLParam(r, "dayID"), input)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// EditLocation handles PUT /trips/{tripID}/days/{dayID}/locations/{locationID}.
// The body is the full replacement value; a stale locationID is a no-op and
// still returns the (unchanged) trip.
func (s *Server) EditLocation(w http.ResponseWriter, r *http.Request) {
	var req locationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadBody(w)
		return
	}

	updated := domain.Location{
		ID:      chi.URLParam(r, "locationID"),
		Name:    req.Name,
		Address: req.Address,
		Notes:   req.Notes,
		Images:  req.Images,
	}
	trip, err := s.trips.EditLocation(r.Context(), chi.URLParam(r, "tripID"), chi.URLParam(r, "dayID"), updated)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// RemoveLocation handles DELETE /trips/{tripID}/days/{dayID}/locations/{locationID}.
// Removal is idempotent: an already-removed location still returns the trip.
func (s *Server) RemoveLocation(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.RemoveLocation(r.Context(),
		chi.URLParam(r, "tripID"), chi.URLParam(r, "dayID"), chi.URLParam(r, "locationID"))
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// MoveLocation handles POST /trips/{tripID}/days/{dayID}/locations/move.
// An out-of-bounds swap is a no-op, not an error.
func (s *Server) MoveLocation(w http.ResponseWriter, r *http.Request) {
	var req moveLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadBody(w)
		return
	}

	trip, err := s.trips.MoveLocation(r.Context(),
		chi.URLParam(r, "tripID"), chi.URLParam(r, "dayID"), req.Index, req.Direction)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tripToResponse(trip))
}
