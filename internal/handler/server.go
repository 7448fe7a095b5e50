// Package handler implements the HTTP handlers for the Wayplan API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, trip.go, day.go, location.go, share.go) but all share
// the same Server struct so they can access its dependencies.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"

	"github.com/wayplan/wayplan/internal/domain"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	List(ctx context.Context) ([]domain.Trip, error)
	Get(ctx context.Context, tripID string) (domain.Trip, error)
	Create(ctx context.Context, name string) (domain.Trip, error)
	Delete(ctx context.Context, tripID string) error
	AddDay(ctx context.Context, tripID, name string) (domain.Trip, error)
	DeleteDay(ctx context.Context, tripID, dayID string) (domain.Trip, error)
	AddLocation(ctx context.Context, tripID, dayID string, input domain.LocationInput) (domain.Trip, error)
	RemoveLocation(ctx context.Context, tripID, dayID, locationID string) (domain.Trip, error)
	MoveLocation(ctx context.Context, tripID, dayID string, index, direction int) (domain.Trip, error)
	EditLocation(ctx context.Context, tripID, dayID string, updated domain.Location) (domain.Trip, error)
}

// ShareServicer defines the share-link operations the share handlers depend on.
type ShareServicer interface {
	ShareLink(ctx context.Context, tripID string) (string, error)
	Import(ctx context.Context, fragment string) (domain.Trip, error)
}

// Server holds the dependencies for all API endpoints.
type Server struct {
	trips TripServicer
	share ShareServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, share ShareServicer) *Server {
	return &Server{trips: trips, share: share}
}

// Routes returns a chi router with every API route mounted.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Post("/import", s.ImportTrip)

	r.Route("/trips", func(r chi.Router) {
		r.Get("/", s.ListTrips)
		r.Post("/", s.CreateTrip)

		r.Route("/{tripID}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Delete("/", s.DeleteTrip)
			r.Get("/share-link", s.GetShareLink)
			r.Post("/days", s.AddDay)

			r.Route("/days/{dayID}", func(r chi.Router) {
				r.Delete("/", s.DeleteDay)
				r.Get("/route", s.GetDayRoute)
				r.Post("/locations", s.AddLocation)
				r.Post("/locations/move", s.MoveLocation)
				r.Put("/locations/{locationID}", s.EditLocation)
				r.Delete("/locations/{locationID}", s.RemoveLocation)
			})
		})
	})

	return r
}
