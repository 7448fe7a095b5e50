package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayplan/wayplan/internal/domain"
	"github.com/wayplan/wayplan/internal/handler"
)

// ---- mock services ---------------------------------------------------------

// mockTripService is a hand-written test double for handler.TripServicer.
// Each method is a function field — set only the ones your test needs.
type mockTripService struct {
	list           func(ctx context.Context) ([]domain.Trip, error)
	get            func(ctx context.Context, tripID string) (domain.Trip, error)
	create         func(ctx context.Context, name string) (domain.Trip, error)
	delete         func(ctx context.Context, tripID string) error
	addDay         func(ctx context.Context, tripID, name string) (domain.Trip, error)
	deleteDay      func(ctx context.Context, tripID, dayID string) (domain.Trip, error)
	addLocation    func(ctx context.Context, tripID, dayID string, input domain.LocationInput) (domain.Trip, error)
	removeLocation func(ctx context.Context, tripID, dayID, locationID string) (domain.Trip, error)
	moveLocation   func(ctx context.Context, tripID, dayID string, index, direction int) (domain.Trip, error)
	editLocation   func(ctx context.Context, tripID, dayID string, updated domain.Location) (domain.Trip, error)
}

func (m *mockTripService) List(ctx context.Context) ([]domain.Trip, error) { return m.list(ctx) }
func (m *mockTripService) Get(ctx context.Context, tripID string) (domain.Trip, error) {
	return m.get(ctx, tripID)
}
func (m *mockTripService) Create(ctx context.Context, name string) (domain.Trip, error) {
	return m.create(ctx, name)
}
func (m *mockTripService) Delete(ctx context.Context, tripID string) error {
	return m.delete(ctx, tripID)
}
func (m *mockTripService) AddDay(ctx context.Context, tripID, name string) (domain.Trip, error) {
	return m.addDay(ctx, tripID, name)
}
func (m *mockTripService) DeleteDay(ctx context.Context, tripID, dayID string) (domain.Trip, error) {
	return m.deleteDay(ctx, tripID, dayID)
}
func (m *mockTripService) AddLocation(ctx context.Context, tripID, dayID string, input domain.LocationInput) (domain.Trip, error) {
	return m.addLocation(ctx, tripID, dayID, input)
}
func (m *mockTripService) RemoveLocation(ctx context.Context, tripID, dayID, locationID string) (domain.Trip, error) {
	return m.removeLocation(ctx, tripID, dayID, locationID)
}
func (m *mockTripService) MoveLocation(ctx context.Context, tripID, dayID string, index, direction int) (domain.Trip, error) {
	return m.moveLocation(ctx, tripID, dayID, index, direction)
}
func (m *mockTripService) EditLocation(ctx context.Context, tripID, dayID string, updated domain.Location) (domain.Trip, error) {
	return m.editLocation(ctx, tripID, dayID, updated)
}

// compile-time check: mockTripService must satisfy handler.TripServicer.
var _ handler.TripServicer = (*mockTripService)(nil)

// mockShareService is a hand-written test double for handler.ShareServicer.
type mockShareService struct {
	shareLink  func(ctx context.Context, tripID string) (string, error)
	importTrip func(ctx context.Context, fragment string) (domain.Trip, error)
}

func (m *mockShareService) ShareLink(ctx context.Context, tripID string) (string, error) {
	return m.shareLink(ctx, tripID)
}
func (m *mockShareService) Import(ctx context.Context, fragment string) (domain.Trip, error) {
	return m.importTrip(ctx, fragment)
}

var _ handler.ShareServicer = (*mockShareService)(nil)

// ---- helpers ---------------------------------------------------------------

func stubTrip() domain.Trip {
	return domain.Trip{
		ID:   "t1",
		Name: "Tokyo",
		Days: []domain.Day{
			{ID: "d1", Name: "Day 1", Locations: []domain.Location{
				{ID: "l1", Name: "Sensoji", Address: "2-3-1 Asakusa", Images: []string{}},
			}},
		},
		CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func serve(t *testing.T, trips handler.TripServicer, share handler.ShareServicer, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.NewServer(trips, share).Routes().ServeHTTP(rec, req)
	return rec
}

// decodeError pulls the error envelope out of a response body.
func decodeError(t *testing.T, rec *httptest.ResponseRecorder) (code, message string) {
	t.Helper()
	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.Error.Code, body.Error.Message
}

// ---- trip endpoints --------------------------------------------------------

func TestCreateTrip_Created(t *testing.T) {
	trips := &mockTripService{
		create: func(_ context.Context, name string) (domain.Trip, error) {
			require.Equal(t, "Tokyo", name)
			return stubTrip(), nil
		},
	}

	rec := serve(t, trips, nil, http.MethodPost, "/trips", `{"name":"Tokyo"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "t1", body["id"])
	assert.Equal(t, "Tokyo", body["name"])
}

func TestCreateTrip_ValidationError(t *testing.T) {
	trips := &mockTripService{
		create: func(_ context.Context, name string) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrValidation
		},
	}

	rec := serve(t, trips, nil, http.MethodPost, "/trips", `{"name":"  "}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	code, _ := decodeError(t, rec)
	assert.Equal(t, "validation_error", code)
}

func TestCreateTrip_MalformedBody(t *testing.T) {
	rec := serve(t, &mockTripService{}, nil, http.MethodPost, "/trips", `{not json`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	code, msg := decodeError(t, rec)
	assert.Equal(t, "validation_error", code)
	assert.Equal(t, "invalid request body", msg)
}

func TestGetTrip_NotFound(t *testing.T) {
	trips := &mockTripService{
		get: func(_ context.Context, tripID string) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}

	rec := serve(t, trips, nil, http.MethodGet, "/trips/missing", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	code, _ := decodeError(t, rec)
	assert.Equal(t, "not_found", code)
}

func TestGetTrip_IncludesMapURL(t *testing.T) {
	trips := &mockTripService{
		get: func(_ context.Context, tripID string) (domain.Trip, error) {
			return stubTrip(), nil
		},
	}

	rec := serve(t, trips, nil, http.MethodGet, "/trips/t1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Days []struct {
			Locations []struct {
				MapURL string `json:"map_url"`
			} `json:"locations"`
		} `json:"days"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body.Days, 1)
	require.Len(t, body.Days[0].Locations, 1)
	assert.Contains(t, body.Days[0].Locations[0].MapURL, "google.com/maps/search")
}

func TestListTrips_EmptyIsJSONArray(t *testing.T) {
	trips := &mockTripService{
		list: func(context.Context) ([]domain.Trip, error) { return []domain.Trip{}, nil },
	}

	rec := serve(t, trips, nil, http.MethodGet, "/trips", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestDeleteTrip_NoContent(t *testing.T) {
	trips := &mockTripService{
		delete: func(_ context.Context, tripID string) error {
			assert.Equal(t, "t1", tripID)
			return nil
		},
	}

	rec := serve(t, trips, nil, http.MethodDelete, "/trips/t1", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

// ---- day endpoints ---------------------------------------------------------

func TestDeleteDay_LastDayRejected(t *testing.T) {
	trips := &mockTripService{
		deleteDay: func(_ context.Context, tripID, dayID string) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrValidation
		},
	}

	rec := serve(t, trips, nil, http.MethodDelete, "/trips/t1/days/d1", "")

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	code, _ := decodeError(t, rec)
	assert.Equal(t, "validation_error", code)
}

func TestAddDay_OK(t *testing.T) {
	trips := &mockTripService{
		addDay: func(_ context.Context, tripID, name string) (domain.Trip, error) {
			assert.Equal(t, "t1", tripID)
			assert.Equal(t, "Day 2", name)
			return stubTrip(), nil
		},
	}

	rec := serve(t, trips, nil, http.MethodPost, "/trips/t1/days", `{"name":"Day 2"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetDayRoute_LegsBetweenConsecutiveLocations(t *testing.T) {
	trip := stubTrip()
	trip.Days[0].Locations = append(trip.Days[0].Locations,
		domain.Location{ID: "l2", Name: "Tokyo Tower", Address: "4-2-8 Shibakoen", Images: []string{}})
	trips := &mockTripService{
		get: func(context.Context, string) (domain.Trip, error) { return trip, nil },
	}

	rec := serve(t, trips, nil, http.MethodGet, "/trips/t1/days/d1/route", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Legs []struct {
			From          string `json:"from"`
			To            string `json:"to"`
			DirectionsURL string `json:"directions_url"`
		} `json:"legs"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body.Legs, 1)
	assert.Equal(t, "Sensoji", body.Legs[0].From)
	assert.Equal(t, "Tokyo Tower", body.Legs[0].To)
	assert.Contains(t, body.Legs[0].DirectionsURL, "google.com/maps/dir")
}

// ---- location endpoints ----------------------------------------------------

func TestMoveLocation_PassesIndexAndDirection(t *testing.T) {
	trips := &mockTripService{
		moveLocation: func(_ context.Context, tripID, dayID string, index, direction int) (domain.Trip, error) {
			assert.Equal(t, "t1", tripID)
			assert.Equal(t, "d1", dayID)
			assert.Equal(t, 0, index)
			assert.Equal(t, 1, direction)
			return stubTrip(), nil
		},
	}

	rec := serve(t, trips, nil, http.MethodPost, "/trips/t1/days/d1/locations/move", `{"index":0,"direction":1}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEditLocation_PathIDWins(t *testing.T) {
	trips := &mockTripService{
		editLocation: func(_ context.Context, tripID, dayID string, updated domain.Location) (domain.Trip, error) {
			assert.Equal(t, "l1", updated.ID, "location id comes from the path, not the body")
			assert.Equal(t, "Sensoji Temple", updated.Name)
			return stubTrip(), nil
		},
	}

	rec := serve(t, trips, nil, http.MethodPut, "/trips/t1/days/d1/locations/l1",
		`{"name":"Sensoji Temple","address":"2-3-1 Asakusa"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAddLocation_ValidationError(t *testing.T) {
	trips := &mockTripService{
		addLocation: func(_ context.Context, _, _ string, _ domain.LocationInput) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrValidation
		},
	}

	rec := serve(t, trips, nil, http.MethodPost, "/trips/t1/days/d1/locations", `{"name":"","address":""}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
