package usecase

import (
	"context"
	"errors"
	"time"

	"beauty-booking-backend/internal/availability"
	"beauty-booking-backend/internal/converter"
	"beauty-booking-backend/internal/delivery/dto"
	"beauty-booking-backend/internal/domain/entity"
	"beauty-booking-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrTimeOffNotFound   = errors.New("time-off range not found")
	ErrInvalidTimeFormat = errors.New("time must use the HH:MM 24-hour format")
	ErrInvalidTimeRange  = errors.New("start time must be before end time")
	ErrInvalidDate       = errors.New("date must use the YYYY-MM-DD format")
	ErrInvalidDateRange  = errors.New("start date must not be after end date")
	ErrDuplicateWeekday  = errors.New("each weekday must appear exactly once")
)

type ScheduleUsecase interface {
	SaveSchedule(ctx context.Context, staffID uuid.UUID, req *dto.SaveScheduleRequest) (*dto.ScheduleResponse, error)
	GetSchedule(ctx context.Context, staffID uuid.UUID) (*dto.ScheduleResponse, error)
	CreateTimeOff(ctx context.Context, staffID uuid.UUID, req *dto.CreateTimeOffRequest) (*dto.TimeOffResponse, error)
	ListTimeOff(ctx context.Context, staffID uuid.UUID) (*dto.TimeOffListResponse, error)
	DeleteTimeOff(ctx context.Context, id uuid.UUID) error
}

type scheduleUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	scheduleRepo repository.WeeklyScheduleRepository
	timeOffRepo  repository.TimeOffRepository
	staffRepo    repository.StaffMemberRepository
}

func NewScheduleUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	scheduleRepo repository.WeeklyScheduleRepository,
	timeOffRepo repository.TimeOffRepository,
	staffRepo repository.StaffMemberRepository,
) ScheduleUsecase {
	return &scheduleUsecase{
		db:           db,
		log:          log,
		scheduleRepo: scheduleRepo,
		timeOffRepo:  timeOffRepo,
		staffRepo:    staffRepo,
	}
}

// SaveSchedule replaces the staff member's weekly schedule wholesale. The request
// must carry exactly one row per weekday; disabled days are stored with zeroed
// minutes so the full week is always materialized.
func (u *scheduleUsecase) SaveSchedule(ctx context.Context, staffID uuid.UUID, req *dto.SaveScheduleRequest) (*dto.ScheduleResponse, error) {
	staff, err := u.staffRepo.FindByID(u.db.WithContext(ctx), staffID)
	if err != nil {
		u.log.Warnf("Failed to find staff member %s: %+v", staffID, err)
		return nil, err
	}
	if staff == nil {
		return nil, ErrStaffNotFound
	}

	var seen [7]bool
	rows := make([]entity.WeeklySchedule, 0, len(req.Days))
	for _, day := range req.Days {
		if seen[day.Weekday] {
			return nil, ErrDuplicateWeekday
		}
		seen[day.Weekday] = true

		row := entity.WeeklySchedule{
			StaffMemberID: staffID,
			Weekday:       day.Weekday,
			Enabled:       day.Enabled,
		}
		if day.Enabled {
			start, err := availability.ParseClock(day.StartTime)
			if err != nil {
				return nil, ErrInvalidTimeFormat
			}
			end, err := availability.ParseClock(day.EndTime)
			if err != nil {
				return nil, ErrInvalidTimeFormat
			}
			if start >= end {
				return nil, ErrInvalidTimeRange
			}
			row.StartMinute = start
			row.EndMinute = end
		}
		rows = append(rows, row)
	}

	if err := u.scheduleRepo.ReplaceForStaff(u.db.WithContext(ctx), staffID, rows); err != nil {
		u.log.Warnf("Failed to save schedule for staff %s: %+v", staffID, err)
		return nil, err
	}

	u.log.Infof("Schedule saved: staff=%s", staffID)
	return converter.ScheduleToResponse(staffID, rows), nil
}

func (u *scheduleUsecase) GetSchedule(ctx context.Context, staffID uuid.UUID) (*dto.ScheduleResponse, error) {
	staff, err := u.staffRepo.FindByID(u.db.WithContext(ctx), staffID)
	if err != nil {
		u.log.Warnf("Failed to find staff member %s: %+v", staffID, err)
		return nil, err
	}
	if staff == nil {
		return nil, ErrStaffNotFound
	}

	rows, err := u.scheduleRepo.FindByStaffID(u.db.WithContext(ctx), staffID)
	if err != nil {
		u.log.Warnf("Failed to load schedule for staff %s: %+v", staffID, err)
		return nil, err
	}

	return converter.ScheduleToResponse(staffID, rows), nil
}

func (u *scheduleUsecase) CreateTimeOff(ctx context.Context, staffID uuid.UUID, req *dto.CreateTimeOffRequest) (*dto.TimeOffResponse, error) {
	staff, err := u.staffRepo.FindByID(u.db.WithContext(ctx), staffID)
	if err != nil {
		u.log.Warnf("Failed to find staff member %s: %+v", staffID, err)
		return nil, err
	}
	if staff == nil {
		return nil, ErrStaffNotFound
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if startDate.After(endDate) {
		return nil, ErrInvalidDateRange
	}

	timeOff := &entity.TimeOffRange{
		StaffMemberID: staffID,
		StartDate:     startDate,
		EndDate:       endDate,
		Reason:        req.Reason,
	}

	if err := u.timeOffRepo.Create(u.db.WithContext(ctx), timeOff); err != nil {
		u.log.Warnf("Failed to create time-off for staff %s: %+v", staffID, err)
		return nil, err
	}

	u.log.Infof("Time-off created: staff=%s, %s..%s", staffID, req.StartDate, req.EndDate)
	return converter.TimeOffToResponse(timeOff), nil
}

func (u *scheduleUsecase) ListTimeOff(ctx context.Context, staffID uuid.UUID) (*dto.TimeOffListResponse, error) {
	staff, err := u.staffRepo.FindByID(u.db.WithContext(ctx), staffID)
	if err != nil {
		u.log.Warnf("Failed to find staff member %s: %+v", staffID, err)
		return nil, err
	}
	if staff == nil {
		return nil, ErrStaffNotFound
	}

	ranges, err := u.timeOffRepo.FindByStaffID(u.db.WithContext(ctx), staffID)
	if err != nil {
		u.log.Warnf("Failed to list time-off for staff %s: %+v", staffID, err)
		return nil, err
	}

	return &dto.TimeOffListResponse{
		Ranges: converter.TimeOffsToResponses(ranges),
		Total:  len(ranges),
	}, nil
}

func (u *scheduleUsecase) DeleteTimeOff(ctx context.Context, id uuid.UUID) error {
	affected, err := u.timeOffRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete time-off %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrTimeOffNotFound
	}

	u.log.Infof("Time-off deleted: id=%s", id)
	return nil
}
