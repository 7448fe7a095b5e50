// Package service contains the business logic for Wayplan. Services load
// the collection from the store, run the legacy-shape migration, apply the
// pure document operations from domain, persist the whole collection
// synchronously, and hand the updated values back. No SQL lives here —
// services depend on the repo interface, not its implementation.
package service

import (
	"context"
	"fmt"

	"github.com/wayplan/wayplan/internal/domain"
	"github.com/wayplan/wayplan/internal/repo"
)

// TripService implements every trip, day, and location operation.
type TripService struct {
	store repo.CollectionStore
}

// NewTripService constructs a TripService backed by the provided store.
func NewTripService(store repo.CollectionStore) *TripService {
	return &TripService{store: store}
}

// load returns the stored collection with every trip migrated to the
// current shape. Migration runs before anything else observes the documents,
// so no other component ever sees the legacy shape. When a legacy trip was
// actually upgraded, the migrated collection is written back immediately —
// the synthesized day ids must stay stable across requests.
func (s *TripService) load(ctx context.Context) (domain.Collection, error) {
	raws, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	col := domain.MigrateAll(raws)
	if needsUpgrade(raws) {
		if err := s.store.Save(ctx, col); err != nil {
			return nil, fmt.Errorf("persist migrated collection: %w", err)
		}
	}
	return col, nil
}

// needsUpgrade reports whether any stored trip is still in the legacy shape.
func needsUpgrade(raws []domain.RawTrip) bool {
	for _, raw := range raws {
		if len(raw.Days) == 0 {
			return true
		}
	}
	return false
}

// List returns all trips, newest first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) List(ctx context.Context) ([]domain.Trip, error) {
	col, err := s.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	return col.Sorted(), nil
}

// Get returns a single trip by ID.
// Returns domain.ErrNotFound if no trip with that ID exists.
func (s *TripService) Get(ctx context.Context, tripID string) (domain.Trip, error) {
	col, err := s.load(ctx)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Get: %w", err)
	}
	trip, ok := col.Find(tripID)
	if !ok {
		return domain.Trip{}, fmt.Errorf("service.TripService.Get: %w", domain.ErrNotFound)
	}
	return trip, nil
}

// Create validates and persists a new trip with one default day.
// Returns domain.ErrValidation when the trimmed name is empty.
func (s *TripService) Create(ctx context.Context, name string) (domain.Trip, error) {
	trip, err := domain.NewTrip(name)
	if err != nil {
		return domain.Trip{}, err
	}
	col, err := s.load(ctx)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	if err := s.store.Save(ctx, col.Upsert(trip)); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return trip, nil
}

// Delete removes a trip by ID. Deleting an absent trip is a no-op, so a
// client whose state lags behind storage never sees an error here.
func (s *TripService) Delete(ctx context.Context, tripID string) error {
	col, err := s.load(ctx)
	if err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	if err := s.store.Save(ctx, col.Delete(tripID)); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// AddDay appends a new empty day to the trip.
func (s *TripService) AddDay(ctx context.Context, tripID, name string) (domain.Trip, error) {
	return s.updateTrip(ctx, "AddDay", tripID, func(t domain.Trip) (domain.Trip, error) {
		return t.AddDay(name)
	})
}

// DeleteDay removes a day from the trip. Returns domain.ErrValidation when
// the day is the last remaining one.
func (s *TripService) DeleteDay(ctx context.Context, tripID, dayID string) (domain.Trip, error) {
	return s.updateTrip(ctx, "DeleteDay", tripID, func(t domain.Trip) (domain.Trip, error) {
		return t.DeleteDay(dayID)
	})
}

// AddLocation appends a location to the named day of the trip.
func (s *TripService) AddLocation(ctx context.Context, tripID, dayID string, input domain.LocationInput) (domain.Trip, error) {
	return s.updateTrip(ctx, "AddLocation", tripID, func(t domain.Trip) (domain.Trip, error) {
		return t.AddLocation(dayID, input)
	})
}

// RemoveLocation removes a location from the named day. Stale references
// are no-ops.
func (s *TripService) RemoveLocation(ctx context.Context, tripID, dayID, locationID string) (domain.Trip, error) {
	return s.updateTrip(ctx, "RemoveLocation", tripID, func(t domain.Trip) (domain.Trip, error) {
		return t.RemoveLocation(dayID, locationID), nil
	})
}

// MoveLocation swaps a location with its neighbor within the named day.
func (s *TripService) MoveLocation(ctx context.Context, tripID, dayID string, index, direction int) (domain.Trip, error) {
	return s.updateTrip(ctx, "MoveLocation", tripID, func(t domain.Trip) (domain.Trip, error) {
		return t.MoveLocation(dayID, index, direction)
	})
}

// EditLocation replaces a location within the named day with the full
// updated value.
func (s *TripService) EditLocation(ctx context.Context, tripID, dayID string, updated domain.Location) (domain.Trip, error) {
	return s.updateTrip(ctx, "EditLocation", tripID, func(t domain.Trip) (domain.Trip, error) {
		return t.EditLocation(dayID, updated), nil
	})
}

// updateTrip loads the collection, applies fn to the targeted trip, saves
// the whole collection, and returns the updated trip. Because the returned
// trip is exactly the value written back into the saved collection, there is
// a single source of truth — callers never have to keep a standalone trip
// and the collection in sync by hand.
func (s *TripService) updateTrip(ctx context.Context, op, tripID string, fn func(domain.Trip) (domain.Trip, error)) (domain.Trip, error) {
	col, err := s.load(ctx)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.%s: %w", op, err)
	}
	trip, ok := col.Find(tripID)
	if !ok {
		return domain.Trip{}, fmt.Errorf("service.TripService.%s: %w", op, domain.ErrNotFound)
	}
	updated, err := fn(trip)
	if err != nil {
		return domain.Trip{}, err
	}
	if err := s.store.Save(ctx, col.Upsert(updated)); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.%s: %w", op, err)
	}
	return updated, nil
}
