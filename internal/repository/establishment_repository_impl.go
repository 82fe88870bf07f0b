package repository

import (
	"errors"

	"beauty-booking-backend/internal/domain/entity"
	domainRepo "beauty-booking-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type establishmentRepository struct{}

func NewEstablishmentRepository() domainRepo.EstablishmentRepository {
	return &establishmentRepository{}
}

func (r *establishmentRepository) Create(db *gorm.DB, establishment *entity.Establishment) error {
	return db.Create(establishment).Error
}

func (r *establishmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Establishment, error) {
	var establishment entity.Establishment
	err := db.Where("id = ?", id).First(&establishment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &establishment, nil
}

func (r *establishmentRepository) FindAll(db *gorm.DB) ([]entity.Establishment, error) {
	var establishments []entity.Establishment
	err := db.Order("name ASC").Find(&establishments).Error
	if err != nil {
		return nil, err
	}
	return establishments, nil
}

func (r *establishmentRepository) Update(db *gorm.DB, establishment *entity.Establishment) error {
	return db.Omit("Services", "Staff").Save(establishment).Error
}

func (r *establishmentRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.Establishment{})
	return affected.RowsAffected, affected.Error
}
