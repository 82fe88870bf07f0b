package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

// ScheduleDayRequest is one weekday row of a staff member's weekly schedule.
// Times use the "HH:MM" 24h format; they are required when the day is enabled.
type ScheduleDayRequest struct {
	Weekday   int    `json:"weekday" validate:"gte=0,lte=6"`
	Enabled   bool   `json:"enabled"`
	StartTime string `json:"start_time" validate:"required_if=Enabled true"`
	EndTime   string `json:"end_time" validate:"required_if=Enabled true"`
}

// SaveScheduleRequest replaces a staff member's schedule wholesale: exactly one
// row per weekday.
type SaveScheduleRequest struct {
	Days []ScheduleDayRequest `json:"days" validate:"required,len=7,dive"`
}

type CreateTimeOffRequest struct {
	StartDate string `json:"start_date" validate:"required"` // Format: YYYY-MM-DD
	EndDate   string `json:"end_date" validate:"required"`   // Format: YYYY-MM-DD
	Reason    string `json:"reason" validate:"omitempty,max=500"`
}

// Response DTOs

type ScheduleDayResponse struct {
	Weekday   int    `json:"weekday"`
	Enabled   bool   `json:"enabled"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
}

type ScheduleResponse struct {
	StaffMemberID uuid.UUID             `json:"staff_member_id"`
	Days          []ScheduleDayResponse `json:"days"`
}

type TimeOffResponse struct {
	ID            uuid.UUID `json:"id"`
	StaffMemberID uuid.UUID `json:"staff_member_id"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	Reason        string    `json:"reason,omitempty"`
}

type TimeOffListResponse struct {
	Ranges []TimeOffResponse `json:"ranges"`
	Total  int               `json:"total"`
}
