package repository

import (
	"errors"

	"beauty-booking-backend/internal/domain/entity"
	domainRepo "beauty-booking-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type staffMemberRepository struct{}

func NewStaffMemberRepository() domainRepo.StaffMemberRepository {
	return &staffMemberRepository{}
}

func (r *staffMemberRepository) Create(db *gorm.DB, staff *entity.StaffMember) error {
	return db.Create(staff).Error
}

func (r *staffMemberRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.StaffMember, error) {
	var staff entity.StaffMember
	err := db.Where("id = ?", id).First(&staff).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &staff, nil
}

func (r *staffMemberRepository) FindByEstablishmentID(db *gorm.DB, establishmentID uuid.UUID) ([]entity.StaffMember, error) {
	var staff []entity.StaffMember
	err := db.Where("establishment_id = ?", establishmentID).Order("full_name ASC").Find(&staff).Error
	if err != nil {
		return nil, err
	}
	return staff, nil
}

func (r *staffMemberRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.StaffMember{})
	return affected.RowsAffected, affected.Error
}
