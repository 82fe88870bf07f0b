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

var ErrServiceNotFound = errors.New("service not found")

type ServiceUsecase interface {
	Create(ctx context.Context, establishmentID uuid.UUID, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error)
	ListByEstablishment(ctx context.Context, establishmentID uuid.UUID) (*dto.ServiceListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type serviceUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	serviceRepo       repository.ServiceRepository
	establishmentRepo repository.EstablishmentRepository
}

func NewServiceUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	serviceRepo repository.ServiceRepository,
	establishmentRepo repository.EstablishmentRepository,
) ServiceUsecase {
	return &serviceUsecase{
		db:                db,
		log:               log,
		serviceRepo:       serviceRepo,
		establishmentRepo: establishmentRepo,
	}
}

func (u *serviceUsecase) Create(ctx context.Context, establishmentID uuid.UUID, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	establishment, err := u.establishmentRepo.FindByID(u.db.WithContext(ctx), establishmentID)
	if err != nil {
		u.log.Warnf("Failed to find establishment %s: %+v", establishmentID, err)
		return nil, err
	}
	if establishment == nil {
		return nil, ErrEstablishmentNotFound
	}

	active := true
	service := &entity.Service{
		EstablishmentID: establishmentID,
		Name:            req.Name,
		DurationMinutes: req.DurationMinutes,
		PriceCents:      req.PriceCents,
		Active:          &active,
	}

	if err := u.serviceRepo.Create(u.db.WithContext(ctx), service); err != nil {
		u.log.Warnf("Failed to create service: %+v", err)
		return nil, err
	}

	u.log.Infof("Service created: id=%s, establishment=%s, duration=%dm", service.ID, establishmentID, service.DurationMinutes)
	return converter.ServiceToResponse(service), nil
}

func (u *serviceUsecase) ListByEstablishment(ctx context.Context, establishmentID uuid.UUID) (*dto.ServiceListResponse, error) {
	establishment, err := u.establishmentRepo.FindByID(u.db.WithContext(ctx), establishmentID)
	if err != nil {
		u.log.Warnf("Failed to find establishment %s: %+v", establishmentID, err)
		return nil, err
	}
	if establishment == nil {
		return nil, ErrEstablishmentNotFound
	}

	services, err := u.serviceRepo.FindByEstablishmentID(u.db.WithContext(ctx), establishmentID)
	if err != nil {
		u.log.Warnf("Failed to list services for establishment %s: %+v", establishmentID, err)
		return nil, err
	}

	return &dto.ServiceListResponse{
		Services: converter.ServicesToResponses(services),
		Total:    len(services),
	}, nil
}

func (u *serviceUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	service, err := u.serviceRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find service %s: %+v", id, err)
		return nil, err
	}
	if service == nil {
		return nil, ErrServiceNotFound
	}

	if req.Name != "" {
		service.Name = req.Name
	}
	if req.DurationMinutes != nil {
		service.DurationMinutes = *req.DurationMinutes
	}
	if req.PriceCents != nil {
		service.PriceCents = *req.PriceCents
	}
	if req.Active != nil {
		service.Active = req.Active
	}

	if err := u.serviceRepo.Update(u.db.WithContext(ctx), service); err != nil {
		u.log.Warnf("Failed to update service %s: %+v", id, err)
		return nil, err
	}

	return converter.ServiceToResponse(service), nil
}

func (u *serviceUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := u.serviceRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete service %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrServiceNotFound
	}

	u.log.Infof("Service deleted: id=%s", id)
	return nil
}
