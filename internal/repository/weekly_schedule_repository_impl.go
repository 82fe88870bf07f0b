package repository

import (
	"errors"

	"beauty-booking-backend/internal/domain/entity"
	domainRepo "beauty-booking-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type weeklyScheduleRepository struct{}

func NewWeeklyScheduleRepository() domainRepo.WeeklyScheduleRepository {
	return &weeklyScheduleRepository{}
}

func (r *weeklyScheduleRepository) ReplaceForStaff(db *gorm.DB, staffID uuid.UUID, rows []entity.WeeklySchedule) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("staff_member_id = ?", staffID).Delete(&entity.WeeklySchedule{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

func (r *weeklyScheduleRepository) FindByStaffID(db *gorm.DB, staffID uuid.UUID) ([]entity.WeeklySchedule, error) {
	var rows []entity.WeeklySchedule
	err := db.Where("staff_member_id = ?", staffID).Order("weekday ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *weeklyScheduleRepository) FindByStaffAndWeekday(db *gorm.DB, staffID uuid.UUID, weekday int) (*entity.WeeklySchedule, error) {
	var row entity.WeeklySchedule
	err := db.Where("staff_member_id = ? AND weekday = ?", staffID, weekday).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}
