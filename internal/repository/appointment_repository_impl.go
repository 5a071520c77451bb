package repository

import (
	"errors"

	"go-medical-appointment/internal/domain/entity"
	domainRepo "go-medical-appointment/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

// Create inserts only the appointment row; referenced records are never touched.
func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit("Doctor", "Patient", "Exercise").Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uint) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := r.withRelations(db).Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindAll(db *gorm.DB) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.withRelations(db).Order("appointment_date DESC, id DESC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByDoctorID(db *gorm.DB, doctorID uint) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.withRelations(db).
		Where("doctor_id = ?", doctorID).
		Order("appointment_date DESC, id DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByPatientID(db *gorm.DB, patientID uint) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.withRelations(db).
		Where("patient_id = ?", patientID).
		Order("appointment_date DESC, id DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Exists(db *gorm.DB, doctorID, patientID, exerciseID uint) (bool, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("doctor_id = ? AND patient_id = ? AND exercise_id = ?", doctorID, patientID, exerciseID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *appointmentRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) withRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("Doctor.Speciality").Preload("Patient").Preload("Exercise")
}
