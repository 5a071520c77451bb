package repository

import (
	"go-medical-appointment/internal/domain/entity"

	"gorm.io/gorm"
)

type ExerciseRepository interface {
	Create(db *gorm.DB, exercise *entity.Exercise) error
	FindByID(db *gorm.DB, id uint) (*entity.Exercise, error)
	FindAll(db *gorm.DB) ([]entity.Exercise, error)
	Update(db *gorm.DB, exercise *entity.Exercise) error
	ReplaceSpecialisations(db *gorm.DB, exercise *entity.Exercise, specialities []entity.Speciality) error
	Delete(db *gorm.DB, id uint) (int64, error)
}
