package usecase

import (
	"context"
	"errors"

	"go-medical-appointment/internal/converter"
	"go-medical-appointment/internal/delivery/dto"
	"go-medical-appointment/internal/domain/entity"
	"go-medical-appointment/internal/domain/repository"
	"go-medical-appointment/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPatientNotFound = errors.New("patient not found")
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	GetPatient(ctx context.Context, id uint) (*dto.PatientResponse, error)
	GetPatientExercises(ctx context.Context, id uint) (*dto.PatientResponse, error)
	GetAllPatients(ctx context.Context) ([]dto.PatientResponse, error)
	UpdatePatient(ctx context.Context, id uint, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	PatchPatient(ctx context.Context, id uint, req *dto.PatchPatientRequest) (*dto.PatientResponse, error)
	DeletePatient(ctx context.Context, id uint) error
}

type patientUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		db:              db,
		log:             log,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
	}
}

func (u *patientUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient := &entity.Patient{Name: req.Name}
	if err := u.patientRepo.Create(tx, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	newValue := converter.PatientToResponse(patient)
	if err := u.auditService.LogCreate(ctx, tx, entity.AuditActionPatientCreate, "patient", patient.ID, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, id uint) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

// GetPatientExercises returns the patient with every appointment made for them.
func (u *patientUsecase) GetPatientExercises(ctx context.Context, id uint) (*dto.PatientResponse, error) {
	db := u.db.WithContext(ctx)

	patient, err := u.patientRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	appointments, err := u.appointmentRepo.FindByPatientID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient appointments: %+v", err)
		return nil, err
	}

	res := converter.PatientToResponse(patient)
	res.Appointments = converter.AppointmentsToResponses(appointments)
	return res, nil
}

func (u *patientUsecase) GetAllPatients(ctx context.Context) ([]dto.PatientResponse, error) {
	patients, err := u.patientRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all patients: %+v", err)
		return nil, err
	}

	return converter.PatientsToResponses(patients), nil
}

func (u *patientUsecase) UpdatePatient(ctx context.Context, id uint, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	return u.update(ctx, id, func(patient *entity.Patient) {
		patient.Name = req.Name
	})
}

func (u *patientUsecase) PatchPatient(ctx context.Context, id uint, req *dto.PatchPatientRequest) (*dto.PatientResponse, error) {
	return u.update(ctx, id, func(patient *entity.Patient) {
		if req.Name != nil {
			patient.Name = *req.Name
		}
	})
}

func (u *patientUsecase) update(ctx context.Context, id uint, apply func(*entity.Patient)) (*dto.PatientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	oldValue := converter.PatientToResponse(patient)
	apply(patient)

	if err := u.patientRepo.Update(tx, patient); err != nil {
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	newValue := converter.PatientToResponse(patient)
	if err := u.auditService.LogUpdate(ctx, tx, entity.AuditActionPatientUpdate, "patient", id, oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

// DeletePatient removes the patient, their doctor links and their appointments.
func (u *patientUsecase) DeletePatient(ctx context.Context, id uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	affectedRows, err := u.patientRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed delete patient: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrPatientNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, entity.AuditActionPatientDelete, "patient", id, converter.PatientToResponse(patient)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
