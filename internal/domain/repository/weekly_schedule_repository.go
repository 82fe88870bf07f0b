package repository

import (
	"beauty-booking-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WeeklyScheduleRepository interface {
	// ReplaceForStaff deletes the staff member's existing rows and inserts the
	// given ones. Schedules are overwritten wholesale per save; no history kept.
	ReplaceForStaff(db *gorm.DB, staffID uuid.UUID, rows []entity.WeeklySchedule) error
	FindByStaffID(db *gorm.DB, staffID uuid.UUID) ([]entity.WeeklySchedule, error)
	FindByStaffAndWeekday(db *gorm.DB, staffID uuid.UUID, weekday int) (*entity.WeeklySchedule, error)
}
