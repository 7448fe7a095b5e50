package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wayplan/wayplan/internal/domain"
	"github.com/wayplan/wayplan/internal/maplink"
)

// addDayRequest is the body for POST /trips/{tripID}/days.
type addDayRequest struct {
	Name string `json:"name"`
}

// routeLeg is one hop of a day's itinerary: a directions link from one
// location to the next.
type routeLeg struct {
	From          string `json:"from"`
	To            string `json:"to"`
	DirectionsURL string `json:"directions_url"`
}

type routeResponse struct {
	Legs []routeLeg `json:"legs"`
}

// AddDay handles POST /trips/{tripID}/days.
func (s *Server) AddDay(w http.ResponseWriter, r *http.Request) {
	var req addDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadBody(w)
		return
	}

	trip, err := s.trips.AddDay(r.Context(), chi.URLParam(r, "tripID"), req.Name)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// DeleteDay handles DELETE /trips/{tripID}/days/{dayID}.
// Returns 422 when the day is the last remaining one — a trip must always
// keep at least one day.
func (s *Server) DeleteDay(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.DeleteDay(r.Context(), chi.URLParam(r, "tripID"), chi.URLParam(r, "dayID"))
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// GetDayRoute handles GET /trips/{tripID}/days/{dayID}/route.
// It returns one directions link per consecutive pair of locations, in
// itinerary order. A day with fewer than two locations has no legs.
func (s *Server) GetDayRoute(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.Get(r.Context(), chi.URLParam(r, "tripID"))
	if err != nil {
		respondError(w, err)
		return
	}
	day, ok := trip.FindDay(chi.URLParam(r, "dayID"))
	if !ok {
		respondError(w, fmt.Errorf("%w: day does not exist", domain.ErrNotFound))
		return
	}

	legs := make([]routeLeg, 0)
	for i := 0; i+1 < len(day.Locations); i++ {
		from, to := day.Locations[i], day.Locations[i+1]
		legs = append(legs, routeLeg{
			From:          from.Name,
			To:            to.Name,
			DirectionsURL: maplink.DirectionsURL(from.Address, to.Address),
		})
	}
	writeJSON(w, http.StatusOK, routeResponse{Legs: legs})
}
