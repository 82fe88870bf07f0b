package usecase

import (
	"context"
	"errors"

	"beauty-booking-backend/internal/converter"
	"beauty-booking-backend/internal/delivery/dto"
	"beauty-booking-backend/internal/domain/entity"
	"beauty-booking-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrStaffNotFound = errors.New("staff member not found")

type StaffUsecase interface {
	Create(ctx context.Context, establishmentID uuid.UUID, req *dto.CreateStaffMemberRequest) (*dto.StaffMemberResponse, error)
	ListByEstablishment(ctx context.Context, establishmentID uuid.UUID) (*dto.StaffMemberListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.StaffMemberResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type staffUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	staffRepo         repository.StaffMemberRepository
	establishmentRepo repository.EstablishmentRepository
}

func NewStaffUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	staffRepo repository.StaffMemberRepository,
	establishmentRepo repository.EstablishmentRepository,
) StaffUsecase {
	return &staffUsecase{
		db:                db,
		log:               log,
		staffRepo:         staffRepo,
		establishmentRepo: establishmentRepo,
	}
}

func (u *staffUsecase) Create(ctx context.Context, establishmentID uuid.UUID, req *dto.CreateStaffMemberRequest) (*dto.StaffMemberResponse, error) {
	establishment, err := u.establishmentRepo.FindByID(u.db.WithContext(ctx), establishmentID)
	if err != nil {
		u.log.Warnf("Failed to find establishment %s: %+v", establishmentID, err)
		return nil, err
	}
	if establishment == nil {
		return nil, ErrEstablishmentNotFound
	}

	active := true
	staff := &entity.StaffMember{
		EstablishmentID: establishmentID,
		FullName:        req.FullName,
		Role:            req.Role,
		Active:          &active,
	}

	if err := u.staffRepo.Create(u.db.WithContext(ctx), staff); err != nil {
		u.log.Warnf("Failed to create staff member: %+v", err)
		return nil, err
	}

	u.log.Infof("Staff member created: id=%s, establishment=%s", staff.ID, establishmentID)
	return converter.StaffMemberToResponse(staff), nil
}

func (u *staffUsecase) ListByEstablishment(ctx context.Context, establishmentID uuid.UUID) (*dto.StaffMemberListResponse, error) {
	establishment, err := u.establishmentRepo.FindByID(u.db.WithContext(ctx), establishmentID)
	if err != nil {
		u.log.Warnf("Failed to find establishment %s: %+v", establishmentID, err)
		return nil, err
	}
	if establishment == nil {
		return nil, ErrEstablishmentNotFound
	}

	staff, err := u.staffRepo.FindByEstablishmentID(u.db.WithContext(ctx), establishmentID)
	if err != nil {
		u.log.Warnf("Failed to list staff for establishment %s: %+v", establishmentID, err)
		return nil, err
	}

	return &dto.StaffMemberListResponse{
		Staff: converter.StaffMembersToResponses(staff),
		Total: len(staff),
	}, nil
}

func (u *staffUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.StaffMemberResponse, error) {
	staff, err := u.staffRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find staff member %s: %+v", id, err)
		return nil, err
	}
	if staff == nil {
		return nil, ErrStaffNotFound
	}

	return converter.StaffMemberToResponse(staff), nil
}

func (u *staffUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := u.staffRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete staff member %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrStaffNotFound
	}

	u.log.Infof("Staff member deleted: id=%s", id)
	return nil
}
