package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	EstablishmentID uuid.UUID `json:"establishment_id" validate:"required"`
	StaffMemberID   uuid.UUID `json:"staff_member_id" validate:"required"`
	ServiceID       uuid.UUID `json:"service_id" validate:"required"`
	CustomerName    string    `json:"customer_name" validate:"required,min=2,max=255"`
	CustomerEmail   string    `json:"customer_email" validate:"omitempty,email"`
	CustomerPhone   string    `json:"customer_phone" validate:"omitempty,max=32"`
	Date            string    `json:"date" validate:"required"`       // Format: YYYY-MM-DD
	StartTime       string    `json:"start_time" validate:"required"` // Format: HH:MM
}

type CancelAppointmentRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              uuid.UUID            `json:"id"`
	EstablishmentID uuid.UUID            `json:"establishment_id"`
	StaffMemberID   uuid.UUID            `json:"staff_member_id"`
	ServiceID       uuid.UUID            `json:"service_id"`
	Service         *ServiceResponse     `json:"service,omitempty"`
	Staff           *StaffMemberResponse `json:"staff,omitempty"`
	CustomerName    string               `json:"customer_name"`
	CustomerEmail   string               `json:"customer_email,omitempty"`
	CustomerPhone   string               `json:"customer_phone,omitempty"`
	Date            string               `json:"date"`
	StartTime       string               `json:"start_time"`
	EndTime         string               `json:"end_time,omitempty"`
	Status          string               `json:"status"`
	CancelReason    string               `json:"cancel_reason,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
