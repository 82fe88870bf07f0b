package handler

import (
	"errors"
	"net/http"
	"strconv"

	"beauty-booking-backend/internal/availability"
	"beauty-booking-backend/internal/usecase"
	"beauty-booking-backend/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AvailabilityHandler struct {
	availabilityUsecase usecase.AvailabilityUsecase
}

func NewAvailabilityHandler(availabilityUsecase usecase.AvailabilityUsecase) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUsecase: availabilityUsecase,
	}
}

// GetAvailability returns the ordered slot grid for one staff member and date.
// Callers pass either service_id or a pre-resolved duration_minutes. A failing
// store answers 503 rather than an empty grid, so "no slots" always means the
// day really is empty.
func (h *AvailabilityHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	staffID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid staff ID", nil)
		return
	}

	query := r.URL.Query()
	dateStr := query.Get("date")
	if dateStr == "" {
		response.Error(w, http.StatusBadRequest, "Query parameter 'date' is required", nil)
		return
	}

	var serviceID *uuid.UUID
	if raw := query.Get("service_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid service ID", nil)
			return
		}
		serviceID = &id
	}

	var durationMinutes *int
	if raw := query.Get("duration_minutes"); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "duration_minutes must be an integer", nil)
			return
		}
		durationMinutes = &minutes
	}

	result, err := h.availabilityUsecase.GetAvailability(r.Context(), staffID, dateStr, serviceID, durationMinutes)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrStaffNotFound):
			response.NotFound(w, "Staff member not found")
		case errors.Is(err, usecase.ErrServiceNotFound):
			response.NotFound(w, "Service not found")
		case errors.Is(err, usecase.ErrInvalidDate):
			response.Error(w, http.StatusBadRequest, "Date must use the YYYY-MM-DD format", nil)
		case errors.Is(err, usecase.ErrDurationRequired):
			response.Error(w, http.StatusBadRequest, "Either service_id or duration_minutes is required", nil)
		case errors.Is(err, availability.ErrInvalidDuration):
			response.Error(w, http.StatusBadRequest, "Service duration must be a positive number of minutes", nil)
		default:
			response.ServiceUnavailable(w, "Availability is temporarily unavailable")
		}
		return
	}

	response.Success(w, http.StatusOK, "Availability retrieved successfully", result)
}
