package handler

import (
	"encoding/json"
	"net/http"

	"beauty-booking-backend/internal/delivery/dto"
	"beauty-booking-backend/internal/usecase"
	"beauty-booking-backend/pkg/response"
	"beauty-booking-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ScheduleHandler struct {
	scheduleUsecase usecase.ScheduleUsecase
	validator       *validator.CustomValidator
}

func NewScheduleHandler(scheduleUsecase usecase.ScheduleUsecase, validator *validator.CustomValidator) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleUsecase: scheduleUsecase,
		validator:       validator,
	}
}

func (h *ScheduleHandler) SaveSchedule(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	staffID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid staff ID", nil)
		return
	}

	var req dto.SaveScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	schedule, err := h.scheduleUsecase.SaveSchedule(r.Context(), staffID, &req)
	if err != nil {
		switch err {
		case usecase.ErrStaffNotFound:
			response.NotFound(w, "Staff member not found")
		case usecase.ErrDuplicateWeekday:
			response.Error(w, http.StatusBadRequest, "Each weekday must appear exactly once", nil)
		case usecase.ErrInvalidTimeFormat:
			response.Error(w, http.StatusBadRequest, "Times must use the HH:MM 24-hour format", nil)
		case usecase.ErrInvalidTimeRange:
			response.Error(w, http.StatusBadRequest, "Start time must be before end time", nil)
		default:
			response.InternalServerError(w, "Failed to save schedule")
		}
		return
	}

	response.Success(w, http.StatusOK, "Schedule saved successfully", schedule)
}

func (h *ScheduleHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	staffID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid staff ID", nil)
		return
	}

	schedule, err := h.scheduleUsecase.GetSchedule(r.Context(), staffID)
	if err != nil {
		switch err {
		case usecase.ErrStaffNotFound:
			response.NotFound(w, "Staff member not found")
		default:
			response.InternalServerError(w, "Failed to get schedule")
		}
		return
	}

	response.Success(w, http.StatusOK, "Schedule retrieved successfully", schedule)
}

func (h *ScheduleHandler) CreateTimeOff(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	staffID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid staff ID", nil)
		return
	}

	var req dto.CreateTimeOffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	timeOff, err := h.scheduleUsecase.CreateTimeOff(r.Context(), staffID, &req)
	if err != nil {
		switch err {
		case usecase.ErrStaffNotFound:
			response.NotFound(w, "Staff member not found")
		case usecase.ErrInvalidDate:
			response.Error(w, http.StatusBadRequest, "Dates must use the YYYY-MM-DD format", nil)
		case usecase.ErrInvalidDateRange:
			response.Error(w, http.StatusBadRequest, "Start date must not be after end date", nil)
		default:
			response.InternalServerError(w, "Failed to create time-off")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Time-off created successfully", timeOff)
}

func (h *ScheduleHandler) ListTimeOff(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	staffID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid staff ID", nil)
		return
	}

	ranges, err := h.scheduleUsecase.ListTimeOff(r.Context(), staffID)
	if err != nil {
		switch err {
		case usecase.ErrStaffNotFound:
			response.NotFound(w, "Staff member not found")
		default:
			response.InternalServerError(w, "Failed to list time-off")
		}
		return
	}

	response.Success(w, http.StatusOK, "Time-off retrieved successfully", ranges)
}

func (h *ScheduleHandler) DeleteTimeOff(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid time-off ID", nil)
		return
	}

	if err := h.scheduleUsecase.DeleteTimeOff(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrTimeOffNotFound:
			response.NotFound(w, "Time-off range not found")
		default:
			response.InternalServerError(w, "Failed to delete time-off")
		}
		return
	}

	response.Success(w, http.StatusOK, "Time-off deleted successfully", nil)
}
