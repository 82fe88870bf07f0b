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

var ErrEstablishmentNotFound = errors.New("establishment not found")

type EstablishmentUsecase interface {
	Create(ctx context.Context, req *dto.CreateEstablishmentRequest) (*dto.EstablishmentResponse, error)
	List(ctx context.Context) (*dto.EstablishmentListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.EstablishmentResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateEstablishmentRequest) (*dto.EstablishmentResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type establishmentUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	establishmentRepo repository.EstablishmentRepository
}

func NewEstablishmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	establishmentRepo repository.EstablishmentRepository,
) EstablishmentUsecase {
	return &establishmentUsecase{
		db:                db,
		log:               log,
		establishmentRepo: establishmentRepo,
	}
}

func (u *establishmentUsecase) Create(ctx context.Context, req *dto.CreateEstablishmentRequest) (*dto.EstablishmentResponse, error) {
	timezone := req.Timezone
	if timezone == "" {
		timezone = "UTC"
	}

	establishment := &entity.Establishment{
		Name:     req.Name,
		Address:  req.Address,
		Phone:    req.Phone,
		Timezone: timezone,
	}

	if err := u.establishmentRepo.Create(u.db.WithContext(ctx), establishment); err != nil {
		u.log.Warnf("Failed to create establishment: %+v", err)
		return nil, err
	}

	u.log.Infof("Establishment created: id=%s, name=%s", establishment.ID, establishment.Name)
	return converter.EstablishmentToResponse(establishment), nil
}

func (u *establishmentUsecase) List(ctx context.Context) (*dto.EstablishmentListResponse, error) {
	establishments, err := u.establishmentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list establishments: %+v", err)
		return nil, err
	}

	return &dto.EstablishmentListResponse{
		Establishments: converter.EstablishmentsToResponses(establishments),
		Total:          len(establishments),
	}, nil
}

func (u *establishmentUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.EstablishmentResponse, error) {
	establishment, err := u.establishmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find establishment %s: %+v", id, err)
		return nil, err
	}
	if establishment == nil {
		return nil, ErrEstablishmentNotFound
	}

	return converter.EstablishmentToResponse(establishment), nil
}

func (u *establishmentUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateEstablishmentRequest) (*dto.EstablishmentResponse, error) {
	establishment, err := u.establishmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find establishment %s: %+v", id, err)
		return nil, err
	}
	if establishment == nil {
		return nil, ErrEstablishmentNotFound
	}

	if req.Name != "" {
		establishment.Name = req.Name
	}
	if req.Address != "" {
		establishment.Address = req.Address
	}
	if req.Phone != "" {
		establishment.Phone = req.Phone
	}
	if req.Timezone != "" {
		establishment.Timezone = req.Timezone
	}

	if err := u.establishmentRepo.Update(u.db.WithContext(ctx), establishment); err != nil {
		u.log.Warnf("Failed to update establishment %s: %+v", id, err)
		return nil, err
	}

	return converter.EstablishmentToResponse(establishment), nil
}

func (u *establishmentUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := u.establishmentRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete establishment %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrEstablishmentNotFound
	}

	u.log.Infof("Establishment deleted: id=%s", id)
	return nil
}
