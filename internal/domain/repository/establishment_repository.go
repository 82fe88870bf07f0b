package repository

import (
	"beauty-booking-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EstablishmentRepository interface {
	Create(db *gorm.DB, establishment *entity.Establishment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Establishment, error)
	FindAll(db *gorm.DB) ([]entity.Establishment, error)
	Update(db *gorm.DB, establishment *entity.Establishment) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
