package repository

import (
	"errors"

	"beauty-booking-backend/internal/domain/entity"
	domainRepo "beauty-booking-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type serviceRepository struct{}

func NewServiceRepository() domainRepo.ServiceRepository {
	return &serviceRepository{}
}

func (r *serviceRepository) Create(db *gorm.DB, service *entity.Service) error {
	return db.Create(service).Error
}

func (r *serviceRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Service, error) {
	var service entity.Service
	err := db.Where("id = ?", id).First(&service).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepository) FindByEstablishmentID(db *gorm.DB, establishmentID uuid.UUID) ([]entity.Service, error) {
	var services []entity.Service
	err := db.Where("establishment_id = ?", establishmentID).Order("name ASC").Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (r *serviceRepository) Update(db *gorm.DB, service *entity.Service) error {
	return db.Omit("Establishment").Save(service).Error
}

func (r *serviceRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.Service{})
	return affected.RowsAffected, affected.Error
}
