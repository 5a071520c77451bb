package repository

import (
	"go-medical-appointment/internal/domain/entity"

	"gorm.io/gorm"
)

type SpecialityRepository interface {
	Create(db *gorm.DB, speciality *entity.Speciality) error
	FindByID(db *gorm.DB, id uint) (*entity.Speciality, error)
	FindAll(db *gorm.DB) ([]entity.Speciality, error)
	FindByIDs(db *gorm.DB, ids []uint) ([]entity.Speciality, error)
	Update(db *gorm.DB, speciality *entity.Speciality) error
	Delete(db *gorm.DB, id uint) (int64, error)
}
