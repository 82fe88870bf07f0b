package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"beauty-booking-backend/internal/availability"
	"beauty-booking-backend/internal/delivery/dto"
	"beauty-booking-backend/internal/usecase"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAvailabilityUsecase struct {
	resp *dto.AvailabilityResponse
	err  error

	gotStaffID  uuid.UUID
	gotDate     string
	gotService  *uuid.UUID
	gotDuration *int
}

func (f *fakeAvailabilityUsecase) GetAvailability(_ context.Context, staffID uuid.UUID, dateStr string, serviceID *uuid.UUID, durationMinutes *int) (*dto.AvailabilityResponse, error) {
	f.gotStaffID = staffID
	f.gotDate = dateStr
	f.gotService = serviceID
	f.gotDuration = durationMinutes
	return f.resp, f.err
}

func serveAvailability(t *testing.T, uc usecase.AvailabilityUsecase, url string) *httptest.ResponseRecorder {
	t.Helper()
	router := mux.NewRouter()
	router.HandleFunc("/staff/{id}/availability", NewAvailabilityHandler(uc).GetAvailability).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGetAvailability_OK(t *testing.T) {
	staffID := uuid.New()
	fake := &fakeAvailabilityUsecase{
		resp: &dto.AvailabilityResponse{
			StaffMemberID:          staffID,
			Date:                   "2025-06-11",
			ServiceDurationMinutes: 30,
			Slots: []availability.Slot{
				{Time: "09:00", Available: true},
				{Time: "09:15", Available: false},
			},
		},
	}

	url := fmt.Sprintf("/staff/%s/availability?date=2025-06-11&duration_minutes=30", staffID)
	rec := serveAvailability(t, fake, url)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, staffID, fake.gotStaffID)
	assert.Equal(t, "2025-06-11", fake.gotDate)
	require.NotNil(t, fake.gotDuration)
	assert.Equal(t, 30, *fake.gotDuration)

	var body struct {
		Success bool                     `json:"success"`
		Data    dto.AvailabilityResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.Len(t, body.Data.Slots, 2)
	assert.Equal(t, "09:00", body.Data.Slots[0].Time)
	assert.False(t, body.Data.Slots[1].Available)
}

func TestGetAvailability_PassesServiceID(t *testing.T) {
	staffID := uuid.New()
	serviceID := uuid.New()
	fake := &fakeAvailabilityUsecase{resp: &dto.AvailabilityResponse{Slots: []availability.Slot{}}}

	url := fmt.Sprintf("/staff/%s/availability?date=2025-06-11&service_id=%s", staffID, serviceID)
	rec := serveAvailability(t, fake, url)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, fake.gotService)
	assert.Equal(t, serviceID, *fake.gotService)
	assert.Nil(t, fake.gotDuration)
}

func TestGetAvailability_BadInputs(t *testing.T) {
	staffID := uuid.New()
	fake := &fakeAvailabilityUsecase{resp: &dto.AvailabilityResponse{}}

	// Missing date
	rec := serveAvailability(t, fake, fmt.Sprintf("/staff/%s/availability", staffID))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Malformed staff ID
	rec = serveAvailability(t, fake, "/staff/not-a-uuid/availability?date=2025-06-11")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Malformed service ID
	rec = serveAvailability(t, fake, fmt.Sprintf("/staff/%s/availability?date=2025-06-11&service_id=nope", staffID))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Non-numeric duration
	rec = serveAvailability(t, fake, fmt.Sprintf("/staff/%s/availability?date=2025-06-11&duration_minutes=abc", staffID))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAvailability_ErrorMapping(t *testing.T) {
	staffID := uuid.New()
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"staff not found", usecase.ErrStaffNotFound, http.StatusNotFound},
		{"service not found", usecase.ErrServiceNotFound, http.StatusNotFound},
		{"bad date", usecase.ErrInvalidDate, http.StatusBadRequest},
		{"duration required", usecase.ErrDurationRequired, http.StatusBadRequest},
		{"non-positive duration", availability.ErrInvalidDuration, http.StatusBadRequest},
		{"store failure", errors.New("connection refused"), http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fake := &fakeAvailabilityUsecase{err: tc.err}
			url := fmt.Sprintf("/staff/%s/availability?date=2025-06-11&duration_minutes=30", staffID)
			rec := serveAvailability(t, fake, url)
			assert.Equal(t, tc.code, rec.Code)

			var body struct {
				Success bool `json:"success"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
		})
	}
}
