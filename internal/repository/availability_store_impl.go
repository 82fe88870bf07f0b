package repository

import (
	"context"
	"errors"
	"time"

	"beauty-booking-backend/internal/availability"
	"beauty-booking-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvailabilityStore adapts the database to the three narrow read interfaces the
// availability engine consumes (availability.ScheduleStore, TimeOffStore and
// AppointmentStore). It is the only engine collaborator that touches gorm.
type AvailabilityStore struct {
	db *gorm.DB
}

func NewAvailabilityStore(db *gorm.DB) *AvailabilityStore {
	return &AvailabilityStore{db: db}
}

func (s *AvailabilityStore) WorkingWindow(ctx context.Context, staffID uuid.UUID, weekday time.Weekday) (*availability.WorkingWindow, error) {
	var row entity.WeeklySchedule
	err := s.db.WithContext(ctx).
		Where("staff_member_id = ? AND weekday = ?", staffID, int(weekday)).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &availability.WorkingWindow{
		Enabled:     row.Enabled,
		StartMinute: row.StartMinute,
		EndMinute:   row.EndMinute,
	}, nil
}

func (s *AvailabilityStore) TimeOffRanges(ctx context.Context, staffID uuid.UUID) ([]availability.DateRange, error) {
	var rows []entity.TimeOffRange
	err := s.db.WithContext(ctx).
		Where("staff_member_id = ?", staffID).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	ranges := make([]availability.DateRange, len(rows))
	for i, row := range rows {
		ranges[i] = availability.DateRange{StartDate: row.StartDate, EndDate: row.EndDate}
	}
	return ranges, nil
}

func (s *AvailabilityStore) BookedIntervals(ctx context.Context, staffID uuid.UUID, date time.Time) ([]availability.BookedInterval, error) {
	type bookedRow struct {
		StartMinute     int
		EndMinute       *int
		DurationMinutes *int
	}

	var rows []bookedRow
	err := s.db.WithContext(ctx).
		Model(&entity.Appointment{}).
		Select("appointments.start_minute, appointments.end_minute, services.duration_minutes").
		Joins("LEFT JOIN services ON services.id = appointments.service_id").
		Where("appointments.staff_member_id = ? AND appointments.appointment_date = ? AND appointments.status IN ?",
			staffID, date.Format("2006-01-02"), []entity.AppointmentStatus{
				entity.AppointmentStatusPending,
				entity.AppointmentStatusConfirmed,
			}).
		Order("appointments.start_minute ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	intervals := make([]availability.BookedInterval, len(rows))
	for i, row := range rows {
		intervals[i] = availability.BookedInterval{
			StartMinute:            row.StartMinute,
			EndMinute:              row.EndMinute,
			ServiceDurationMinutes: row.DurationMinutes,
		}
	}
	return intervals, nil
}
