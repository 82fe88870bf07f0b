package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"beauty-booking-backend/internal/delivery/dto"
	"beauty-booking-backend/internal/usecase"
	"beauty-booking-backend/pkg/response"
	"beauty-booking-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	bookingUsecase usecase.BookingUsecase
	validator      *validator.CustomValidator
}

func NewAppointmentHandler(bookingUsecase usecase.BookingUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		bookingUsecase: bookingUsecase,
		validator:      validator,
	}
}

func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.bookingUsecase.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrStaffNotFound):
			response.NotFound(w, "Staff member not found")
		case errors.Is(err, usecase.ErrServiceNotFound):
			response.NotFound(w, "Service not found")
		case errors.Is(err, usecase.ErrStaffMismatch):
			response.Error(w, http.StatusBadRequest, "Staff member and service belong to different establishments", nil)
		case errors.Is(err, usecase.ErrServiceInactive):
			response.Error(w, http.StatusBadRequest, "Service is not active", nil)
		case errors.Is(err, usecase.ErrInvalidDate):
			response.Error(w, http.StatusBadRequest, "Date must use the YYYY-MM-DD format", nil)
		case errors.Is(err, usecase.ErrInvalidTimeFormat):
			response.Error(w, http.StatusBadRequest, "Start time must use the HH:MM 24-hour format", nil)
		case errors.Is(err, usecase.ErrPastDate):
			response.Error(w, http.StatusBadRequest, "Cannot book a past date", nil)
		case errors.Is(err, usecase.ErrSlotUnavailable):
			response.Conflict(w, "Requested slot is not available")
		case errors.Is(err, usecase.ErrSlotTaken):
			response.Conflict(w, "Slot was just taken by another booking")
		default:
			response.ServiceUnavailable(w, "Booking is temporarily unavailable")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

func (h *AppointmentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	appointment, err := h.bookingUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		default:
			response.InternalServerError(w, "Failed to get appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

func (h *AppointmentHandler) ListByStaffAndDate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	staffID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid staff ID", nil)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		response.Error(w, http.StatusBadRequest, "Query parameter 'date' is required", nil)
		return
	}

	appointments, err := h.bookingUsecase.ListByStaffAndDate(r.Context(), staffID, dateStr)
	if err != nil {
		switch err {
		case usecase.ErrStaffNotFound:
			response.NotFound(w, "Staff member not found")
		case usecase.ErrInvalidDate:
			response.Error(w, http.StatusBadRequest, "Date must use the YYYY-MM-DD format", nil)
		default:
			response.InternalServerError(w, "Failed to list appointments")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) ListByEstablishment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	establishmentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid establishment ID", nil)
		return
	}

	appointments, err := h.bookingUsecase.ListByEstablishment(r.Context(), establishmentID)
	if err != nil {
		response.InternalServerError(w, "Failed to list appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	h.updateStatus(w, r, h.bookingUsecase.Confirm, "Appointment confirmed successfully")
}

func (h *AppointmentHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.updateStatus(w, r, h.bookingUsecase.Complete, "Appointment completed successfully")
}

func (h *AppointmentHandler) MarkNoShow(w http.ResponseWriter, r *http.Request) {
	h.updateStatus(w, r, h.bookingUsecase.MarkNoShow, "Appointment marked as no-show")
}

func (h *AppointmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	// Body is optional; an empty body cancels without a reason
	var req dto.CancelAppointmentRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.bookingUsecase.Cancel(r.Context(), id, req.Reason); err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrAppointmentAlreadyCancelled:
			response.Conflict(w, "Appointment is already cancelled")
		case usecase.ErrInvalidStatusTransition:
			response.Conflict(w, "Appointment cannot be cancelled in its current status")
		default:
			response.InternalServerError(w, "Failed to cancel appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled successfully", nil)
}

func (h *AppointmentHandler) updateStatus(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id uuid.UUID) error, message string) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	if err := op(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrInvalidStatusTransition:
			response.Conflict(w, "Appointment cannot change to that status from its current status")
		default:
			response.InternalServerError(w, "Failed to update appointment status")
		}
		return
	}

	response.Success(w, http.StatusOK, message, nil)
}
