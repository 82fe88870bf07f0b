package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateEstablishmentRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Address  string `json:"address" validate:"omitempty,max=500"`
	Phone    string `json:"phone" validate:"omitempty,max=32"`
	Timezone string `json:"timezone" validate:"omitempty,max=64"`
}

type UpdateEstablishmentRequest struct {
	Name     string `json:"name" validate:"omitempty,min=2,max=255"`
	Address  string `json:"address" validate:"omitempty,max=500"`
	Phone    string `json:"phone" validate:"omitempty,max=32"`
	Timezone string `json:"timezone" validate:"omitempty,max=64"`
}

// Response DTOs

type EstablishmentResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Timezone  string    `json:"timezone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type EstablishmentListResponse struct {
	Establishments []EstablishmentResponse `json:"establishments"`
	Total          int                     `json:"total"`
}
