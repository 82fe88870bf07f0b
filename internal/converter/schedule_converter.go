package converter

import (
	"beauty-booking-backend/internal/availability"
	"beauty-booking-backend/internal/delivery/dto"
	"beauty-booking-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// ScheduleToResponse converts a staff member's weekly schedule rows to the
// response DTO. Weekdays missing from rows are filled in as disabled so the
// response always carries all seven days in order.
func ScheduleToResponse(staffID uuid.UUID, rows []entity.WeeklySchedule) *dto.ScheduleResponse {
	days := make([]dto.ScheduleDayResponse, 7)
	for i := range days {
		days[i] = dto.ScheduleDayResponse{Weekday: i, Enabled: false}
	}
	for _, row := range rows {
		if row.Weekday < 0 || row.Weekday > 6 {
			continue
		}
		day := dto.ScheduleDayResponse{
			Weekday: row.Weekday,
			Enabled: row.Enabled,
		}
		if row.Enabled {
			day.StartTime = availability.FormatClock(row.StartMinute)
			day.EndTime = availability.FormatClock(row.EndMinute)
		}
		days[row.Weekday] = day
	}
	return &dto.ScheduleResponse{
		StaffMemberID: staffID,
		Days:          days,
	}
}

// TimeOffToResponse converts a TimeOffRange entity to its response DTO
func TimeOffToResponse(timeOff *entity.TimeOffRange) *dto.TimeOffResponse {
	if timeOff == nil {
		return nil
	}
	return &dto.TimeOffResponse{
		ID:            timeOff.ID,
		StaffMemberID: timeOff.StaffMemberID,
		StartDate:     timeOff.StartDate.Format("2006-01-02"),
		EndDate:       timeOff.EndDate.Format("2006-01-02"),
		Reason:        timeOff.Reason,
	}
}

// TimeOffsToResponses converts a slice of TimeOffRange entities to response DTOs
func TimeOffsToResponses(ranges []entity.TimeOffRange) []dto.TimeOffResponse {
	responses := make([]dto.TimeOffResponse, len(ranges))
	for i, timeOff := range ranges {
		resp := TimeOffToResponse(&timeOff)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
