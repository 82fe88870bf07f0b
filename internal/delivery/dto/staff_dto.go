package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateStaffMemberRequest struct {
	FullName string `json:"full_name" validate:"required,min=2,max=255"`
	Role     string `json:"role" validate:"omitempty,max=100"`
}

// Response DTOs

type StaffMemberResponse struct {
	ID              uuid.UUID `json:"id"`
	EstablishmentID uuid.UUID `json:"establishment_id"`
	FullName        string    `json:"full_name"`
	Role            string    `json:"role"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type StaffMemberListResponse struct {
	Staff []StaffMemberResponse `json:"staff"`
	Total int                   `json:"total"`
}
