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

type StaffHandler struct {
	staffUsecase usecase.StaffUsecase
	validator    *validator.CustomValidator
}

func NewStaffHandler(staffUsecase usecase.StaffUsecase, validator *validator.CustomValidator) *StaffHandler {
	return &StaffHandler{
		staffUsecase: staffUsecase,
		validator:    validator,
	}
}

func (h *StaffHandler) Create(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	establishmentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid establishment ID", nil)
		return
	}

	var req dto.CreateStaffMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	staff, err := h.staffUsecase.Create(r.Context(), establishmentID, &req)
	if err != nil {
		switch err {
		case usecase.ErrEstablishmentNotFound:
			response.NotFound(w, "Establishment not found")
		default:
			response.InternalServerError(w, "Failed to create staff member")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Staff member created successfully", staff)
}

func (h *StaffHandler) ListByEstablishment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	establishmentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid establishment ID", nil)
		return
	}

	staff, err := h.staffUsecase.ListByEstablishment(r.Context(), establishmentID)
	if err != nil {
		switch err {
		case usecase.ErrEstablishmentNotFound:
			response.NotFound(w, "Establishment not found")
		default:
			response.InternalServerError(w, "Failed to list staff")
		}
		return
	}

	response.Success(w, http.StatusOK, "Staff retrieved successfully", staff)
}

func (h *StaffHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid staff ID", nil)
		return
	}

	staff, err := h.staffUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrStaffNotFound:
			response.NotFound(w, "Staff member not found")
		default:
			response.InternalServerError(w, "Failed to get staff member")
		}
		return
	}

	response.Success(w, http.StatusOK, "Staff member retrieved successfully", staff)
}

func (h *StaffHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid staff ID", nil)
		return
	}

	if err := h.staffUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrStaffNotFound:
			response.NotFound(w, "Staff member not found")
		default:
			response.InternalServerError(w, "Failed to delete staff member")
		}
		return
	}

	response.Success(w, http.StatusOK, "Staff member deleted successfully", nil)
}
