package repository

import (
	"beauty-booking-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StaffMemberRepository interface {
	Create(db *gorm.DB, staff *entity.StaffMember) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.StaffMember, error)
	FindByEstablishmentID(db *gorm.DB, establishmentID uuid.UUID) ([]entity.StaffMember, error)
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
