package usecase

import (
	"context"
	"errors"
	"time"

	"beauty-booking-backend/internal/availability"
	"beauty-booking-backend/internal/delivery/dto"
	"beauty-booking-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrDurationRequired = errors.New("either service_id or duration_minutes is required")

type AvailabilityUsecase interface {
	GetAvailability(ctx context.Context, staffID uuid.UUID, dateStr string, serviceID *uuid.UUID, durationMinutes *int) (*dto.AvailabilityResponse, error)
}

type availabilityUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	engine      *availability.Engine
	staffRepo   repository.StaffMemberRepository
	serviceRepo repository.ServiceRepository
}

func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	engine *availability.Engine,
	staffRepo repository.StaffMemberRepository,
	serviceRepo repository.ServiceRepository,
) AvailabilityUsecase {
	return &availabilityUsecase{
		db:          db,
		log:         log,
		engine:      engine,
		staffRepo:   staffRepo,
		serviceRepo: serviceRepo,
	}
}

// GetAvailability resolves the requested duration (from the service when given,
// otherwise the explicit duration) and delegates to the slot engine. Input errors
// surface before any store access; store failures propagate so callers can tell
// a broken backend apart from a legitimately empty day.
func (u *availabilityUsecase) GetAvailability(ctx context.Context, staffID uuid.UUID, dateStr string, serviceID *uuid.UUID, durationMinutes *int) (*dto.AvailabilityResponse, error) {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, ErrInvalidDate
	}

	staff, err := u.staffRepo.FindByID(u.db.WithContext(ctx), staffID)
	if err != nil {
		u.log.Warnf("Failed to find staff member %s: %+v", staffID, err)
		return nil, err
	}
	if staff == nil {
		return nil, ErrStaffNotFound
	}

	var duration int
	switch {
	case serviceID != nil:
		service, err := u.serviceRepo.FindByID(u.db.WithContext(ctx), *serviceID)
		if err != nil {
			u.log.Warnf("Failed to find service %s: %+v", *serviceID, err)
			return nil, err
		}
		if service == nil {
			return nil, ErrServiceNotFound
		}
		duration = service.DurationMinutes
	case durationMinutes != nil:
		duration = *durationMinutes
	default:
		return nil, ErrDurationRequired
	}

	slots, err := u.engine.ComputeSlots(ctx, staffID, date, duration)
	if err != nil {
		if !errors.Is(err, availability.ErrInvalidDuration) {
			u.log.Errorf("Failed to compute slots for staff %s on %s: %+v", staffID, dateStr, err)
		}
		return nil, err
	}

	return &dto.AvailabilityResponse{
		StaffMemberID:          staffID,
		Date:                   dateStr,
		ServiceDurationMinutes: duration,
		Slots:                  slots,
	}, nil
}
