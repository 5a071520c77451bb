package repository

import (
	"errors"

	"go-medical-appointment/internal/domain/entity"
	domainRepo "go-medical-appointment/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

// Create inserts the doctor together with its patient links. The speciality
// row is only referenced, never upserted.
func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Omit("Speciality", "Patients.*").Create(doctor).Error
}

func (r *doctorRepository) FindByID(db *gorm.DB, id uint) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Preload("Speciality").Preload("Patients").Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindAll(db *gorm.DB) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := db.Preload("Speciality").Preload("Patients").Order("id ASC").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) Update(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Omit("Speciality", "Patients").Save(doctor).Error
}

func (r *doctorRepository) ReplacePatients(db *gorm.DB, doctor *entity.Doctor, patients []entity.Patient) error {
	association := db.Model(doctor).Association("Patients")
	var err error
	if len(patients) == 0 {
		err = association.Clear()
	} else {
		err = association.Replace(patients)
	}
	if err != nil {
		return err
	}
	doctor.Patients = patients
	return nil
}

func (r *doctorRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Doctor{})
	return result.RowsAffected, result.Error
}
