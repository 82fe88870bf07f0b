package converter

import (
	"beauty-booking-backend/internal/delivery/dto"
	"beauty-booking-backend/internal/domain/entity"
)

// EstablishmentToResponse converts an Establishment entity to its response DTO
func EstablishmentToResponse(establishment *entity.Establishment) *dto.EstablishmentResponse {
	if establishment == nil {
		return nil
	}
	return &dto.EstablishmentResponse{
		ID:        establishment.ID,
		Name:      establishment.Name,
		Address:   establishment.Address,
		Phone:     establishment.Phone,
		Timezone:  establishment.Timezone,
		CreatedAt: establishment.CreatedAt,
		UpdatedAt: establishment.UpdatedAt,
	}
}

// EstablishmentsToResponses converts a slice of Establishment entities to response DTOs
func EstablishmentsToResponses(establishments []entity.Establishment) []dto.EstablishmentResponse {
	responses := make([]dto.EstablishmentResponse, len(establishments))
	for i, establishment := range establishments {
		resp := EstablishmentToResponse(&establishment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
