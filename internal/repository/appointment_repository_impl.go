package repository

import (
	"errors"
	"time"

	"beauty-booking-backend/internal/domain/entity"
	domainRepo "beauty-booking-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Service").Preload("Staff").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByStaffAndDate(db *gorm.DB, staffID uuid.UUID, date time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Service").
		Where("staff_member_id = ? AND appointment_date = ?", staffID, date.Format("2006-01-02")).
		Order("start_minute ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByEstablishmentID(db *gorm.DB, establishmentID uuid.UUID, limit int) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	query := db.Preload("Service").Preload("Staff").
		Where("establishment_id = ?", establishmentID).
		Order("appointment_date DESC, start_minute DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) error {
	return db.Model(&entity.Appointment{}).Where("id = ?", id).Update("status", status).Error
}

func (r *appointmentRepository) Cancel(db *gorm.DB, id uuid.UUID, reason string) error {
	return db.Model(&entity.Appointment{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":        entity.AppointmentStatusCancelled,
		"cancel_reason": reason,
	}).Error
}
