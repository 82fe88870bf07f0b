package entity

import (
	"time"

	"github.com/google/uuid"
)

// Service represents a bookable treatment (haircut, manicure, ...) with a fixed duration
type Service struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	EstablishmentID uuid.UUID `gorm:"type:uuid;not null;index" json:"establishment_id"`
	Name            string    `gorm:"type:varchar(255);not null" json:"name"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`
	PriceCents      int       `gorm:"not null;default:0" json:"price_cents"`
	Active          *bool     `gorm:"not null;default:true;index" json:"active"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Establishment Establishment `gorm:"foreignKey:EstablishmentID" json:"establishment,omitempty"`
}

func (Service) TableName() string {
	return "services"
}
