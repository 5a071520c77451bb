package usecase

import (
	"context"
	"errors"
	"time"

	"go-medical-appointment/internal/converter"
	"go-medical-appointment/internal/delivery/dto"
	"go-medical-appointment/internal/domain/entity"
	"go-medical-appointment/internal/domain/repository"
	"go-medical-appointment/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrSpecialityMismatch   = errors.New("doctor lacks required speciality")
	ErrPatientNotAssigned   = errors.New("doctor not authorized for this patient")
	ErrDuplicateAppointment = errors.New("duplicate appointment")
)

type AppointmentUsecase interface {
	Appoint(ctx context.Context, doctorID uint, req *dto.AppointRequest) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, id uint) (*dto.AppointmentResponse, error)
	GetAllAppointments(ctx context.Context) ([]dto.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, id uint) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorRepository
	patientRepo     repository.PatientRepository
	exerciseRepo    repository.ExerciseRepository
	guard           service.AppointmentGuard
	auditService    service.AuditService
	now             func() time.Time
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
	exerciseRepo repository.ExerciseRepository,
	guard service.AppointmentGuard,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		patientRepo:     patientRepo,
		exerciseRepo:    exerciseRepo,
		guard:           guard,
		auditService:    auditService,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// Appoint assigns an exercise to a patient on behalf of a doctor. Failures
// are reported in a fixed priority: missing records, speciality mismatch,
// unassigned patient, then duplicate appointment.
func (u *appointmentUsecase) Appoint(ctx context.Context, doctorID uint, req *dto.AppointRequest) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	exercise, err := u.exerciseRepo.FindByID(tx, req.ExerciseID)
	if err != nil {
		u.log.Warnf("Failed to find exercise: %+v", err)
		return nil, err
	}
	if exercise == nil {
		return nil, ErrExerciseNotFound
	}

	patient, err := u.patientRepo.FindByID(tx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	if !exercise.RequiresSpeciality(doctor.SpecialityID) {
		return nil, ErrSpecialityMismatch
	}

	if !doctor.IsAssignedTo(patient.ID) {
		return nil, ErrPatientNotAssigned
	}

	// Held until commit so a concurrent request for the same triple
	// either sees our row or is turned away here.
	release, err := u.guard.Acquire(ctx, doctor.ID, patient.ID, exercise.ID)
	defer release()
	if err != nil {
		if errors.Is(err, service.ErrGuardHeld) {
			return nil, ErrDuplicateAppointment
		}
		u.log.Warnf("Appointment guard unavailable, continuing without it: %+v", err)
	}

	exists, err := u.appointmentRepo.Exists(tx, doctor.ID, patient.ID, exercise.ID)
	if err != nil {
		u.log.Warnf("Failed to check existing appointment: %+v", err)
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateAppointment
	}

	appointment := &entity.Appointment{
		DoctorID:        doctor.ID,
		PatientID:       patient.ID,
		ExerciseID:      exercise.ID,
		AppointmentDate: u.now(),
	}
	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	appointment.Doctor = *doctor
	appointment.Patient = *patient
	appointment.Exercise = *exercise

	newValue := converter.AppointmentToResponse(appointment)
	if err := u.auditService.LogCreate(ctx, tx, entity.AuditActionAppointmentCreate, "appointment", appointment.ID, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id uint) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAllAppointments(ctx context.Context) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all appointments: %+v", err)
		return nil, err
	}

	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, id uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	affectedRows, err := u.appointmentRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed delete appointment: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrAppointmentNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, entity.AuditActionAppointmentDelete, "appointment", id, converter.AppointmentToResponse(appointment)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
