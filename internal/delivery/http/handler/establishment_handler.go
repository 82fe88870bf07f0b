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

type EstablishmentHandler struct {
	establishmentUsecase usecase.EstablishmentUsecase
	validator            *validator.CustomValidator
}

func NewEstablishmentHandler(establishmentUsecase usecase.EstablishmentUsecase, validator *validator.CustomValidator) *EstablishmentHandler {
	return &EstablishmentHandler{
		establishmentUsecase: establishmentUsecase,
		validator:            validator,
	}
}

func (h *EstablishmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEstablishmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	establishment, err := h.establishmentUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create establishment")
		return
	}

	response.Success(w, http.StatusCreated, "Establishment created successfully", establishment)
}

func (h *EstablishmentHandler) List(w http.ResponseWriter, r *http.Request) {
	establishments, err := h.establishmentUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list establishments")
		return
	}

	response.Success(w, http.StatusOK, "Establishments retrieved successfully", establishments)
}

func (h *EstablishmentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid establishment ID", nil)
		return
	}

	establishment, err := h.establishmentUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrEstablishmentNotFound:
			response.NotFound(w, "Establishment not found")
		default:
			response.InternalServerError(w, "Failed to get establishment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Establishment retrieved successfully", establishment)
}

func (h *EstablishmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid establishment ID", nil)
		return
	}

	var req dto.UpdateEstablishmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	establishment, err := h.establishmentUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrEstablishmentNotFound:
			response.NotFound(w, "Establishment not found")
		default:
			response.InternalServerError(w, "Failed to update establishment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Establishment updated successfully", establishment)
}

func (h *EstablishmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid establishment ID", nil)
		return
	}

	if err := h.establishmentUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrEstablishmentNotFound:
			response.NotFound(w, "Establishment not found")
		default:
			response.InternalServerError(w, "Failed to delete establishment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Establishment deleted successfully", nil)
}
