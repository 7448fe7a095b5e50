package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayplan/wayplan/internal/domain"
)

func TestErrorMapping_InternalErrorHidesDetails(t *testing.T) {
	trips := &mockTripService{
		list: func(context.Context) ([]domain.Trip, error) {
			return nil, fmt.Errorf("service.TripService.List: load: disk on fire")
		},
	}

	rec := serve(t, trips, nil, http.MethodGet, "/trips", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	code, msg := decodeError(t, rec)
	assert.Equal(t, "internal_error", code)
	assert.Equal(t, "internal server error", msg, "internal details must not leak")
}

func TestErrorMapping_ValidationMessageUnwrapped(t *testing.T) {
	trips := &mockTripService{
		addDay: func(context.Context, string, string) (domain.Trip, error) {
			return domain.Trip{}, fmt.Errorf("service.TripService.AddDay: %w: day name is required", domain.ErrValidation)
		},
	}

	rec := serve(t, trips, nil, http.MethodPost, "/trips/t1/days", `{"name":" "}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	_, msg := decodeError(t, rec)
	assert.Equal(t, "day name is required", msg)
}
