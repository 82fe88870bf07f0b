package repository

import (
	"errors"
	"time"

	"beauty-booking-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindByStaffAndDate(db *gorm.DB, staffID uuid.UUID, date time.Time) ([]entity.Appointment, error)
	FindByEstablishmentID(db *gorm.DB, establishmentID uuid.UUID, limit int) ([]entity.Appointment, error)
	UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) error
	Cancel(db *gorm.DB, id uuid.UUID, reason string) error
}

// IsOverlapConflict reports whether err is the appointments exclusion constraint
// rejecting an insert whose interval overlaps an existing pending/confirmed
// appointment (Postgres error 23P01, exclusion_violation).
func IsOverlapConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23P01"
}
