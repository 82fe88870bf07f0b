package entity

import (
	"time"

	"github.com/google/uuid"
)

// StaffMember represents a professional working at an establishment
type StaffMember struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	EstablishmentID uuid.UUID `gorm:"type:uuid;not null;index" json:"establishment_id"`
	FullName        string    `gorm:"type:varchar(255);not null" json:"full_name"`
	Role            string    `gorm:"type:varchar(100)" json:"role"`
	Active          *bool     `gorm:"not null;default:true;index" json:"active"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Establishment Establishment   `gorm:"foreignKey:EstablishmentID" json:"establishment,omitempty"`
	Schedule      []WeeklySchedule `gorm:"foreignKey:StaffMemberID" json:"schedule,omitempty"`
}

func (StaffMember) TableName() string {
	return "staff_members"
}
