package repository

import (
	"errors"

	"go-medical-appointment/internal/domain/entity"
	domainRepo "go-medical-appointment/internal/domain/repository"

	"gorm.io/gorm"
)

type specialityRepository struct{}

func NewSpecialityRepository() domainRepo.SpecialityRepository {
	return &specialityRepository{}
}

func (r *specialityRepository) Create(db *gorm.DB, speciality *entity.Speciality) error {
	return db.Create(speciality).Error
}

func (r *specialityRepository) FindByID(db *gorm.DB, id uint) (*entity.Speciality, error) {
	var speciality entity.Speciality
	err := db.Where("id = ?", id).First(&speciality).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &speciality, nil
}

func (r *specialityRepository) FindAll(db *gorm.DB) ([]entity.Speciality, error) {
	var specialities []entity.Speciality
	err := db.Order("id ASC").Find(&specialities).Error
	if err != nil {
		return nil, err
	}
	return specialities, nil
}

func (r *specialityRepository) FindByIDs(db *gorm.DB, ids []uint) ([]entity.Speciality, error) {
	var specialities []entity.Speciality
	if len(ids) == 0 {
		return specialities, nil
	}
	err := db.Where("id IN ?", ids).Order("id ASC").Find(&specialities).Error
	if err != nil {
		return nil, err
	}
	return specialities, nil
}

func (r *specialityRepository) Update(db *gorm.DB, speciality *entity.Speciality) error {
	return db.Save(speciality).Error
}

func (r *specialityRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Speciality{})
	return result.RowsAffected, result.Error
}
