package repository

import (
	"go-medical-appointment/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uint) (*entity.Appointment, error)
	FindAll(db *gorm.DB) ([]entity.Appointment, error)
	FindByDoctorID(db *gorm.DB, doctorID uint) ([]entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID uint) ([]entity.Appointment, error)
	Exists(db *gorm.DB, doctorID, patientID, exerciseID uint) (bool, error)
	Delete(db *gorm.DB, id uint) (int64, error)
}
