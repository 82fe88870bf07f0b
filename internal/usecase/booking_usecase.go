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
	ErrAppointmentNotFound         = errors.New("appointment not found")
	ErrAppointmentAlreadyCancelled = errors.New("appointment is already cancelled")
	ErrInvalidStatusTransition     = errors.New("invalid appointment status transition")
	ErrPastDate                    = errors.New("cannot book a past date")
	ErrSlotUnavailable             = errors.New("requested slot is not available")
	ErrSlotTaken                   = errors.New("slot was just taken by another booking")
	ErrServiceInactive             = errors.New("service is not active")
	ErrStaffMismatch               = errors.New("staff member and service belong to different establishments")
)

const establishmentAppointmentsLimit = 100

type BookingUsecase interface {
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	ListByStaffAndDate(ctx context.Context, staffID uuid.UUID, dateStr string) (*dto.AppointmentListResponse, error)
	ListByEstablishment(ctx context.Context, establishmentID uuid.UUID) (*dto.AppointmentListResponse, error)
	Confirm(ctx context.Context, id uuid.UUID) error
	Cancel(ctx context.Context, id uuid.UUID, reason string) error
	Complete(ctx context.Context, id uuid.UUID) error
	MarkNoShow(ctx context.Context, id uuid.UUID) error
}

type bookingUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	engine          *availability.Engine
	appointmentRepo repository.AppointmentRepository
	staffRepo       repository.StaffMemberRepository
	serviceRepo     repository.ServiceRepository
	now             func() time.Time
}

func NewBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	engine *availability.Engine,
	appointmentRepo repository.AppointmentRepository,
	staffRepo repository.StaffMemberRepository,
	serviceRepo repository.ServiceRepository,
	now func() time.Time,
) BookingUsecase {
	if now == nil {
		now = time.Now
	}
	return &bookingUsecase{
		db:              db,
		log:             log,
		engine:          engine,
		appointmentRepo: appointmentRepo,
		staffRepo:       staffRepo,
		serviceRepo:     serviceRepo,
		now:             now,
	}
}

// Create books a pending appointment into a computed slot.
//
// Flow:
// 1. Parse date and start time, validate referenced staff and service
// 2. Reject past dates outright
// 3. Recompute the slot grid and require the requested start to be an
//    available slot
// 4. Insert with status pending; the DB exclusion constraint is the final
//    arbiter under concurrency, surfacing races as ErrSlotTaken
func (u *bookingUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}
	startMinute, err := availability.ParseClock(req.StartTime)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}

	staff, err := u.staffRepo.FindByID(u.db.WithContext(ctx), req.StaffMemberID)
	if err != nil {
		u.log.Warnf("Failed to find staff member %s: %+v", req.StaffMemberID, err)
		return nil, err
	}
	if staff == nil {
		return nil, ErrStaffNotFound
	}
	if staff.EstablishmentID != req.EstablishmentID {
		return nil, ErrStaffNotFound
	}

	service, err := u.serviceRepo.FindByID(u.db.WithContext(ctx), req.ServiceID)
	if err != nil {
		u.log.Warnf("Failed to find service %s: %+v", req.ServiceID, err)
		return nil, err
	}
	if service == nil {
		return nil, ErrServiceNotFound
	}
	if service.EstablishmentID != req.EstablishmentID {
		return nil, ErrStaffMismatch
	}
	if service.Active != nil && !*service.Active {
		return nil, ErrServiceInactive
	}

	today := dateOnly(u.now())
	if date.Before(today) {
		return nil, ErrPastDate
	}

	// The engine applies the same rules the availability endpoint showed the
	// client: working window, time off, existing bookings, today's cutoff.
	slots, err := u.engine.ComputeSlots(ctx, req.StaffMemberID, date, service.DurationMinutes)
	if err != nil {
		u.log.Errorf("Failed to compute slots for staff %s on %s: %+v", req.StaffMemberID, req.Date, err)
		return nil, err
	}
	if !slotIsAvailable(slots, req.StartTime) {
		return nil, ErrSlotUnavailable
	}

	endMinute := startMinute + service.DurationMinutes
	appointment := &entity.Appointment{
		EstablishmentID: req.EstablishmentID,
		StaffMemberID:   req.StaffMemberID,
		ServiceID:       req.ServiceID,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		AppointmentDate: date,
		StartMinute:     startMinute,
		EndMinute:       &endMinute,
		Status:          entity.AppointmentStatusPending,
	}

	if err := u.appointmentRepo.Create(u.db.WithContext(ctx), appointment); err != nil {
		if repository.IsOverlapConflict(err) {
			u.log.Infof("Booking race lost: staff=%s, date=%s, start=%s", req.StaffMemberID, req.Date, req.StartTime)
			return nil, ErrSlotTaken
		}
		u.log.Errorf("Failed to insert appointment: %+v", err)
		return nil, err
	}

	// Reload with service+staff info for the response
	full, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointment.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload appointment %s: %+v", appointment.ID, err)
		return converter.AppointmentToResponse(appointment), nil
	}

	u.log.Infof("Appointment created: id=%s, staff=%s, date=%s, start=%s", appointment.ID, req.StaffMemberID, req.Date, req.StartTime)
	return converter.AppointmentToResponse(full), nil
}

func (u *bookingUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *bookingUsecase) ListByStaffAndDate(ctx context.Context, staffID uuid.UUID, dateStr string) (*dto.AppointmentListResponse, error) {
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

	appointments, err := u.appointmentRepo.FindByStaffAndDate(u.db.WithContext(ctx), staffID, date)
	if err != nil {
		u.log.Warnf("Failed to list appointments for staff %s on %s: %+v", staffID, dateStr, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *bookingUsecase) ListByEstablishment(ctx context.Context, establishmentID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByEstablishmentID(u.db.WithContext(ctx), establishmentID, establishmentAppointmentsLimit)
	if err != nil {
		u.log.Warnf("Failed to list appointments for establishment %s: %+v", establishmentID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// Confirm moves a pending appointment to confirmed.
func (u *bookingUsecase) Confirm(ctx context.Context, id uuid.UUID) error {
	return u.transition(ctx, id, entity.AppointmentStatusConfirmed, entity.AppointmentStatusPending)
}

// Cancel releases the appointment's interval. Allowed from pending or confirmed;
// the exclusion constraint ignores cancelled rows so the slot opens up again.
func (u *bookingUsecase) Cancel(ctx context.Context, id uuid.UUID, reason string) error {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}
	if appointment.IsCancelled() {
		return ErrAppointmentAlreadyCancelled
	}
	if !appointment.Blocking() {
		return ErrInvalidStatusTransition
	}

	if err := u.appointmentRepo.Cancel(u.db.WithContext(ctx), id, reason); err != nil {
		u.log.Warnf("Failed to cancel appointment %s: %+v", id, err)
		return err
	}

	u.log.Infof("Appointment cancelled: id=%s", id)
	return nil
}

// Complete marks a confirmed appointment as carried out.
func (u *bookingUsecase) Complete(ctx context.Context, id uuid.UUID) error {
	return u.transition(ctx, id, entity.AppointmentStatusCompleted, entity.AppointmentStatusConfirmed)
}

// MarkNoShow records that the customer did not turn up for a confirmed appointment.
func (u *bookingUsecase) MarkNoShow(ctx context.Context, id uuid.UUID) error {
	return u.transition(ctx, id, entity.AppointmentStatusNoShow, entity.AppointmentStatusConfirmed)
}

func (u *bookingUsecase) transition(ctx context.Context, id uuid.UUID, to entity.AppointmentStatus, allowedFrom ...entity.AppointmentStatus) error {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	allowed := false
	for _, from := range allowedFrom {
		if appointment.Status == from {
			allowed = true
			break
		}
	}
	if !allowed {
		return ErrInvalidStatusTransition
	}

	if err := u.appointmentRepo.UpdateStatus(u.db.WithContext(ctx), id, to); err != nil {
		u.log.Warnf("Failed to update appointment %s to %s: %+v", id, to, err)
		return err
	}

	u.log.Infof("Appointment %s: id=%s", to, id)
	return nil
}

func slotIsAvailable(slots []availability.Slot, startTime string) bool {
	for _, slot := range slots {
		if slot.Time == startTime {
			return slot.Available
		}
	}
	return false
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
