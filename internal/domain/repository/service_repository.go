package repository

import (
	"beauty-booking-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceRepository interface {
	Create(db *gorm.DB, service *entity.Service) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Service, error)
	FindByEstablishmentID(db *gorm.DB, establishmentID uuid.UUID) ([]entity.Service, error)
	Update(db *gorm.DB, service *entity.Service) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
