package repository

import (
	"go-medical-appointment/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindByID(db *gorm.DB, id uint) (*entity.Doctor, error)
	FindAll(db *gorm.DB) ([]entity.Doctor, error)
	Update(db *gorm.DB, doctor *entity.Doctor) error
	ReplacePatients(db *gorm.DB, doctor *entity.Doctor, patients []entity.Patient) error
	Delete(db *gorm.DB, id uint) (int64, error)
}
