package converter

import (
	"beauty-booking-backend/internal/delivery/dto"
	"beauty-booking-backend/internal/domain/entity"
)

// StaffMemberToResponse converts a StaffMember entity to its response DTO
func StaffMemberToResponse(staff *entity.StaffMember) *dto.StaffMemberResponse {
	if staff == nil {
		return nil
	}
	active := true
	if staff.Active != nil {
		active = *staff.Active
	}
	return &dto.StaffMemberResponse{
		ID:              staff.ID,
		EstablishmentID: staff.EstablishmentID,
		FullName:        staff.FullName,
		Role:            staff.Role,
		Active:          active,
		CreatedAt:       staff.CreatedAt,
		UpdatedAt:       staff.UpdatedAt,
	}
}

// StaffMembersToResponses converts a slice of StaffMember entities to response DTOs
func StaffMembersToResponses(staff []entity.StaffMember) []dto.StaffMemberResponse {
	responses := make([]dto.StaffMemberResponse, len(staff))
	for i, member := range staff {
		resp := StaffMemberToResponse(&member)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
