package repository

import (
	"go-medical-appointment/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindByID(db *gorm.DB, id uint) (*entity.Patient, error)
	FindAll(db *gorm.DB) ([]entity.Patient, error)
	FindByIDs(db *gorm.DB, ids []uint) ([]entity.Patient, error)
	Update(db *gorm.DB, patient *entity.Patient) error
	Delete(db *gorm.DB, id uint) (int64, error)
}
