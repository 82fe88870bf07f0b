package dto

import (
	"beauty-booking-backend/internal/availability"

	"github.com/google/uuid"
)

// Response DTOs

// AvailabilityResponse is the ordered slot grid for one staff member and date.
// Unavailable slots are included so clients can render them disabled.
type AvailabilityResponse struct {
	StaffMemberID          uuid.UUID           `json:"staff_member_id"`
	Date                   string              `json:"date"`
	ServiceDurationMinutes int                 `json:"service_duration_minutes"`
	Slots                  []availability.Slot `json:"slots"`
}
