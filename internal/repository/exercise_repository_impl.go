package repository

import (
	"errors"

	"go-medical-appointment/internal/domain/entity"
	domainRepo "go-medical-appointment/internal/domain/repository"

	"gorm.io/gorm"
)

type exerciseRepository struct{}

func NewExerciseRepository() domainRepo.ExerciseRepository {
	return &exerciseRepository{}
}

func (r *exerciseRepository) Create(db *gorm.DB, exercise *entity.Exercise) error {
	return db.Omit("Specialisations.*").Create(exercise).Error
}

func (r *exerciseRepository) FindByID(db *gorm.DB, id uint) (*entity.Exercise, error) {
	var exercise entity.Exercise
	err := db.Preload("Specialisations").Where("id = ?", id).First(&exercise).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &exercise, nil
}

func (r *exerciseRepository) FindAll(db *gorm.DB) ([]entity.Exercise, error) {
	var exercises []entity.Exercise
	err := db.Preload("Specialisations").Order("id ASC").Find(&exercises).Error
	if err != nil {
		return nil, err
	}
	return exercises, nil
}

func (r *exerciseRepository) Update(db *gorm.DB, exercise *entity.Exercise) error {
	return db.Omit("Specialisations").Save(exercise).Error
}

func (r *exerciseRepository) ReplaceSpecialisations(db *gorm.DB, exercise *entity.Exercise, specialities []entity.Speciality) error {
	association := db.Model(exercise).Association("Specialisations")
	var err error
	if len(specialities) == 0 {
		err = association.Clear()
	} else {
		err = association.Replace(specialities)
	}
	if err != nil {
		return err
	}
	exercise.Specialisations = specialities
	return nil
}

func (r *exerciseRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Exercise{})
	return result.RowsAffected, result.Error
}
