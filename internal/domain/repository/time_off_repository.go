package repository

import (
	"beauty-booking-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TimeOffRepository interface {
	Create(db *gorm.DB, timeOff *entity.TimeOffRange) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.TimeOffRange, error)
	FindByStaffID(db *gorm.DB, staffID uuid.UUID) ([]entity.TimeOffRange, error)
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
