package repository

import (
	"errors"

	"beauty-booking-backend/internal/domain/entity"
	domainRepo "beauty-booking-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type timeOffRepository struct{}

func NewTimeOffRepository() domainRepo.TimeOffRepository {
	return &timeOffRepository{}
}

func (r *timeOffRepository) Create(db *gorm.DB, timeOff *entity.TimeOffRange) error {
	return db.Create(timeOff).Error
}

func (r *timeOffRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.TimeOffRange, error) {
	var timeOff entity.TimeOffRange
	err := db.Where("id = ?", id).First(&timeOff).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &timeOff, nil
}

func (r *timeOffRepository) FindByStaffID(db *gorm.DB, staffID uuid.UUID) ([]entity.TimeOffRange, error) {
	var ranges []entity.TimeOffRange
	err := db.Where("staff_member_id = ?", staffID).Order("start_date ASC").Find(&ranges).Error
	if err != nil {
		return nil, err
	}
	return ranges, nil
}

func (r *timeOffRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.TimeOffRange{})
	return affected.RowsAffected, affected.Error
}
