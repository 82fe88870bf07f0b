package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateServiceRequest struct {
	Name            string `json:"name" validate:"required,min=2,max=255"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,min=1,max=480"`
	PriceCents      int    `json:"price_cents" validate:"gte=0"`
}

type UpdateServiceRequest struct {
	Name            string `json:"name" validate:"omitempty,min=2,max=255"`
	DurationMinutes *int   `json:"duration_minutes" validate:"omitempty,min=1,max=480"`
	PriceCents      *int   `json:"price_cents" validate:"omitempty,gte=0"`
	Active          *bool  `json:"active"`
}

// Response DTOs

type ServiceResponse struct {
	ID              uuid.UUID `json:"id"`
	EstablishmentID uuid.UUID `json:"establishment_id"`
	Name            string    `json:"name"`
	DurationMinutes int       `json:"duration_minutes"`
	PriceCents      int       `json:"price_cents"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
	Total    int               `json:"total"`
}
