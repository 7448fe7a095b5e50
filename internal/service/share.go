package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/wayplan/wayplan/internal/codec"
	"github.com/wayplan/wayplan/internal/domain"
	"github.com/wayplan/wayplan/internal/repo"
)

// FragmentPrefix marks a URL fragment as carrying a share payload.
// Fragments without it are not share links and are silently ignored.
const FragmentPrefix = "share="

// ShareService builds share links and imports shared trips.
type ShareService struct {
	store   repo.CollectionStore
	baseURL string
}

// NewShareService constructs a ShareService. baseURL is the client
// application URL share links point at.
func NewShareService(store repo.CollectionStore, baseURL string) *ShareService {
	return &ShareService{store: store, baseURL: baseURL}
}

// ShareLink returns a URL whose fragment carries the encoded shareable
// projection of the trip. Returns domain.ErrNotFound for an unknown trip.
func (s *ShareService) ShareLink(ctx context.Context, tripID string) (string, error) {
	raws, err := s.store.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("service.ShareService.ShareLink: %w", err)
	}
	trip, ok := domain.MigrateAll(raws).Find(tripID)
	if !ok {
		return "", fmt.Errorf("service.ShareService.ShareLink: %w", domain.ErrNotFound)
	}
	link, err := EncodeShareLink(trip, s.baseURL)
	if err != nil {
		return "", fmt.Errorf("service.ShareService.ShareLink: %w", err)
	}
	return link, nil
}

// Import decodes the fragment, materializes a full trip with fresh ids,
// appends it to the collection, and persists. Unlike page-load fragment
// handling, a fragment that does not carry a valid share payload is a
// validation failure here — the user explicitly asked to import it.
func (s *ShareService) Import(ctx context.Context, fragment string) (domain.Trip, error) {
	shareable := DecodeShareFragment(fragment)
	if shareable == nil {
		return domain.Trip{}, fmt.Errorf("%w: invalid trip data", domain.ErrValidation)
	}
	trip, err := domain.MaterializeImportedTrip(*shareable)
	if err != nil {
		return domain.Trip{}, err
	}

	raws, err := s.store.Load(ctx)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.ShareService.Import: %w", err)
	}
	col := domain.MigrateAll(raws).Upsert(trip)
	if err := s.store.Save(ctx, col); err != nil {
		return domain.Trip{}, fmt.Errorf("service.ShareService.Import: %w", err)
	}
	return trip, nil
}

// EncodeShareLink serializes the shareable projection of trip through the
// fragment codec and appends it to baseURL as a #share= fragment.
func EncodeShareLink(trip domain.Trip, baseURL string) (string, error) {
	payload, err := json.Marshal(domain.BuildShareable(trip))
	if err != nil {
		return "", fmt.Errorf("service.EncodeShareLink: %w", err)
	}
	return baseURL + "#" + FragmentPrefix + codec.Encode(string(payload)), nil
}

// rawShareable accepts both the day-grouped payload and the legacy flat one
// (locations directly on the trip). The two are alternate schema versions of
// the same concept; normalization happens before materializing.
type rawShareable struct {
	Name      string                     `json:"name"`
	Days      []domain.ShareableDay      `json:"days"`
	Locations []domain.ShareableLocation `json:"locations"`
}

// DecodeShareFragment extracts a shareable trip from a URL fragment. It
// returns nil — never an error — when the fragment is not a share payload:
// wrong prefix, undecodable token, or a document without a name and a
// days-or-locations field. This lets callers silently ignore unrelated or
// malformed fragments instead of failing the whole page load.
func DecodeShareFragment(fragment string) *domain.ShareableTrip {
	frag := strings.TrimPrefix(fragment, "#")
	if !strings.HasPrefix(frag, FragmentPrefix) {
		return nil
	}
	text, err := codec.Decode(strings.TrimPrefix(frag, FragmentPrefix))
	if err != nil {
		return nil
	}

	var raw rawShareable
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil
	}
	if raw.Name == "" || (raw.Days == nil && raw.Locations == nil) {
		return nil
	}

	shareable := domain.ShareableTrip{Name: raw.Name, Days: raw.Days}
	if len(shareable.Days) == 0 {
		// Legacy flat payload: wrap the locations in a single default day,
		// mirroring what Migrate does for stored legacy trips.
		shareable.Days = []domain.ShareableDay{{Name: domain.DefaultDayName, Locations: raw.Locations}}
	}
	return &shareable
}
