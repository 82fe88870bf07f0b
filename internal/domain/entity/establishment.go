package entity

import (
	"time"

	"github.com/google/uuid"
)

// Establishment represents a salon/barbershop offering beauty services
type Establishment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Address   string    `gorm:"type:text" json:"address"`
	Phone     string    `gorm:"type:varchar(32)" json:"phone"`
	Timezone  string    `gorm:"type:varchar(64);not null;default:'UTC'" json:"timezone"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Services []Service     `gorm:"foreignKey:EstablishmentID" json:"services,omitempty"`
	Staff    []StaffMember `gorm:"foreignKey:EstablishmentID" json:"staff,omitempty"`
}

func (Establishment) TableName() string {
	return "establishments"
}
