package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// shareLinkResponse is the body returned by GET /trips/{tripID}/share-link.
type shareLinkResponse struct {
	URL string `json:"url"`
}

// importRequest is the body for POST /import. Fragment is the URL fragment
// the recipient landed with, with or without the leading "#".
type importRequest struct {
	Fragment string `json:"fragment"`
}

// GetShareLink handles GET /trips/{tripID}/share-link.
// The returned URL embeds the stripped trip (no ids, no images) in its
// fragment, ready to hand to a recipient.
func (s *Server) GetShareLink(w http.ResponseWriter, r *http.Request) {
	url, err := s.share.ShareLink(r.Context(), chi.URLParam(r, "tripID"))
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, shareLinkResponse{URL: url})
}

// ImportTrip handles POST /import.
// A fragment that does not decode into a valid shared trip yields 422
// "invalid trip data" — the import was explicit, so the failure is surfaced
// rather than silently ignored.
func (s *Server) ImportTrip(w http.ResponseWriter, r *http.Request) {
	var req importRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadBody(w)
		return
	}

	trip, err := s.share.Import(r.Context(), req.Fragment)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tripToResponse(trip))
}
