package usecase

import (
	"context"
	"errors"
	"fmt"

	"go-medical-appointment/internal/converter"
	"go-medical-appointment/internal/delivery/dto"
	"go-medical-appointment/internal/domain/entity"
	"go-medical-appointment/internal/domain/repository"
	"go-medical-appointment/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound = errors.New("doctor not found")
)

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	GetDoctor(ctx context.Context, id uint) (*dto.DoctorResponse, error)
	GetDoctorExercises(ctx context.Context, id uint) (*dto.DoctorResponse, error)
	GetAllDoctors(ctx context.Context) ([]dto.DoctorResponse, error)
	UpdateDoctor(ctx context.Context, id uint, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	PatchDoctor(ctx context.Context, id uint, req *dto.PatchDoctorRequest) (*dto.DoctorResponse, error)
	DeleteDoctor(ctx context.Context, id uint) error
}

type doctorUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	doctorRepo      repository.DoctorRepository
	specialityRepo  repository.SpecialityRepository
	patientRepo     repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	specialityRepo repository.SpecialityRepository,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		db:              db,
		log:             log,
		doctorRepo:      doctorRepo,
		specialityRepo:  specialityRepo,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
	}
}

// doctorRelations holds the resolved speciality and patient set of a write.
// A nil field means the request left it untouched.
type doctorRelations struct {
	speciality *entity.Speciality
	patients   []entity.Patient
}

// resolveRelations loads the referenced speciality and patients, collecting
// every unknown id into a single ValidationError.
func (u *doctorUsecase) resolveRelations(tx *gorm.DB, specialityID *uint, patientIDs *[]uint) (*doctorRelations, error) {
	relations := &doctorRelations{}
	errs := fieldErrors{}

	if specialityID != nil {
		speciality, err := u.specialityRepo.FindByID(tx, *specialityID)
		if err != nil {
			u.log.Warnf("Failed to find speciality: %+v", err)
			return nil, err
		}
		if speciality == nil {
			errs.add("speciality", fmt.Sprintf("speciality %d does not exist", *specialityID))
		}
		relations.speciality = speciality
	}

	if patientIDs != nil {
		ids := uniqueIDs(*patientIDs)
		relations.patients = make([]entity.Patient, 0, len(ids))

		if len(ids) > 0 {
			found, err := u.patientRepo.FindByIDs(tx, ids)
			if err != nil {
				u.log.Warnf("Failed to find patients: %+v", err)
				return nil, err
			}

			byID := make(map[uint]entity.Patient, len(found))
			for _, p := range found {
				byID[p.ID] = p
			}

			message := missingIDsMessage("patient", ids, func(id uint) bool {
				_, ok := byID[id]
				return ok
			})
			if message != "" {
				errs.add("patients", message)
			} else {
				for _, id := range ids {
					relations.patients = append(relations.patients, byID[id])
				}
			}
		}
	}

	if err := errs.err(); err != nil {
		return nil, err
	}
	return relations, nil
}

func (u *doctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patientIDs := req.Patients
	if patientIDs == nil {
		patientIDs = []uint{}
	}
	relations, err := u.resolveRelations(tx, &req.Speciality, &patientIDs)
	if err != nil {
		return nil, err
	}

	doctor := &entity.Doctor{
		Name:         req.Name,
		SpecialityID: relations.speciality.ID,
		Speciality:   *relations.speciality,
		Patients:     relations.patients,
	}
	if err := u.doctorRepo.Create(tx, doctor); err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	newValue := converter.DoctorToResponse(doctor)
	if err := u.auditService.LogCreate(ctx, tx, entity.AuditActionDoctorCreate, "doctor", doctor.ID, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, id uint) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

// GetDoctorExercises returns the doctor with every appointment they made.
func (u *doctorUsecase) GetDoctorExercises(ctx context.Context, id uint) (*dto.DoctorResponse, error) {
	db := u.db.WithContext(ctx)

	doctor, err := u.doctorRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	appointments, err := u.appointmentRepo.FindByDoctorID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor appointments: %+v", err)
		return nil, err
	}

	res := converter.DoctorToResponse(doctor)
	res.Appointments = converter.AppointmentsToResponses(appointments)
	return res, nil
}

func (u *doctorUsecase) GetAllDoctors(ctx context.Context) ([]dto.DoctorResponse, error) {
	doctors, err := u.doctorRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all doctors: %+v", err)
		return nil, err
	}

	return converter.DoctorsToResponses(doctors), nil
}

func (u *doctorUsecase) UpdateDoctor(ctx context.Context, id uint, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	var patients *[]uint
	if req.Patients != nil {
		patients = &req.Patients
	}
	return u.update(ctx, id, &req.Name, &req.Speciality, patients)
}

func (u *doctorUsecase) PatchDoctor(ctx context.Context, id uint, req *dto.PatchDoctorRequest) (*dto.DoctorResponse, error) {
	return u.update(ctx, id, req.Name, req.Speciality, req.Patients)
}

func (u *doctorUsecase) update(ctx context.Context, id uint, name *string, specialityID *uint, patientIDs *[]uint) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	relations, err := u.resolveRelations(tx, specialityID, patientIDs)
	if err != nil {
		return nil, err
	}

	oldValue := converter.DoctorToResponse(doctor)

	if name != nil {
		doctor.Name = *name
	}
	if relations.speciality != nil {
		doctor.SpecialityID = relations.speciality.ID
		doctor.Speciality = *relations.speciality
	}

	if err := u.doctorRepo.Update(tx, doctor); err != nil {
		u.log.Warnf("Failed to update doctor: %+v", err)
		return nil, err
	}

	if patientIDs != nil {
		if err := u.doctorRepo.ReplacePatients(tx, doctor, relations.patients); err != nil {
			u.log.Warnf("Failed to replace doctor patients: %+v", err)
			return nil, err
		}
	}

	newValue := converter.DoctorToResponse(doctor)
	if err := u.auditService.LogUpdate(ctx, tx, entity.AuditActionDoctorUpdate, "doctor", id, oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

// DeleteDoctor removes the doctor, their patient links and their appointments.
func (u *doctorUsecase) DeleteDoctor(ctx context.Context, id uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}

	affectedRows, err := u.doctorRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed delete doctor: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrDoctorNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, entity.AuditActionDoctorDelete, "doctor", id, converter.DoctorToResponse(doctor)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
