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

type ServiceHandler struct {
	serviceUsecase usecase.ServiceUsecase
	validator      *validator.CustomValidator
}

func NewServiceHandler(serviceUsecase usecase.ServiceUsecase, validator *validator.CustomValidator) *ServiceHandler {
	return &ServiceHandler{
		serviceUsecase: serviceUsecase,
		validator:      validator,
	}
}

func (h *ServiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	establishmentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid establishment ID", nil)
		return
	}

	var req dto.CreateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	service, err := h.serviceUsecase.Create(r.Context(), establishmentID, &req)
	if err != nil {
		switch err {
		case usecase.ErrEstablishmentNotFound:
			response.NotFound(w, "Establishment not found")
		default:
			response.InternalServerError(w, "Failed to create service")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Service created successfully", service)
}

func (h *ServiceHandler) ListByEstablishment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	establishmentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid establishment ID", nil)
		return
	}

	services, err := h.serviceUsecase.ListByEstablishment(r.Context(), establishmentID)
	if err != nil {
		switch err {
		case usecase.ErrEstablishmentNotFound:
			response.NotFound(w, "Establishment not found")
		default:
			response.InternalServerError(w, "Failed to list services")
		}
		return
	}

	response.Success(w, http.StatusOK, "Services retrieved successfully", services)
}

func (h *ServiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid service ID", nil)
		return
	}

	var req dto.UpdateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	service, err := h.serviceUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrServiceNotFound:
			response.NotFound(w, "Service not found")
		default:
			response.InternalServerError(w, "Failed to update service")
		}
		return
	}

	response.Success(w, http.StatusOK, "Service updated successfully", service)
}

func (h *ServiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid service ID", nil)
		return
	}

	if err := h.serviceUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrServiceNotFound:
			response.NotFound(w, "Service not found")
		default:
			response.InternalServerError(w, "Failed to delete service")
		}
		return
	}

	response.Success(w, http.StatusOK, "Service deleted successfully", nil)
}
