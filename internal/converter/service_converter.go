package converter

import (
	"beauty-booking-backend/internal/delivery/dto"
	"beauty-booking-backend/internal/domain/entity"
)

// ServiceToResponse converts a Service entity to its response DTO
func ServiceToResponse(service *entity.Service) *dto.ServiceResponse {
	if service == nil {
		return nil
	}
	active := true
	if service.Active != nil {
		active = *service.Active
	}
	return &dto.ServiceResponse{
		ID:              service.ID,
		EstablishmentID: service.EstablishmentID,
		Name:            service.Name,
		DurationMinutes: service.DurationMinutes,
		PriceCents:      service.PriceCents,
		Active:          active,
		CreatedAt:       service.CreatedAt,
		UpdatedAt:       service.UpdatedAt,
	}
}

// ServicesToResponses converts a slice of Service entities to response DTOs
func ServicesToResponses(services []entity.Service) []dto.ServiceResponse {
	responses := make([]dto.ServiceResponse, len(services))
	for i, service := range services {
		resp := ServiceToResponse(&service)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
