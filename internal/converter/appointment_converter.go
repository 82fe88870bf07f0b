package converter

import (
	"beauty-booking-backend/internal/availability"
	"beauty-booking-backend/internal/delivery/dto"
	"beauty-booking-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentToResponse converts an Appointment entity to its response DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:              appointment.ID,
		EstablishmentID: appointment.EstablishmentID,
		StaffMemberID:   appointment.StaffMemberID,
		ServiceID:       appointment.ServiceID,
		CustomerName:    appointment.CustomerName,
		CustomerEmail:   appointment.CustomerEmail,
		CustomerPhone:   appointment.CustomerPhone,
		Date:            appointment.AppointmentDate.Format("2006-01-02"),
		StartTime:       availability.FormatClock(appointment.StartMinute),
		Status:          string(appointment.Status),
		CancelReason:    appointment.CancelReason,
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}
	if appointment.EndMinute != nil {
		response.EndTime = availability.FormatClock(*appointment.EndMinute)
	}

	// Include joined info when preloaded
	if appointment.Service.ID != uuid.Nil {
		response.Service = ServiceToResponse(&appointment.Service)
	}
	if appointment.Staff.ID != uuid.Nil {
		response.Staff = StaffMemberToResponse(&appointment.Staff)
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to response DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToResponse(&appointment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
