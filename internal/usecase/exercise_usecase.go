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
	ErrExerciseNotFound = errors.New("exercise not found")
)

type ExerciseUsecase interface {
	CreateExercise(ctx context.Context, req *dto.CreateExerciseRequest) (*dto.ExerciseResponse, error)
	GetExercise(ctx context.Context, id uint) (*dto.ExerciseResponse, error)
	GetAllExercises(ctx context.Context) ([]dto.ExerciseResponse, error)
	UpdateExercise(ctx context.Context, id uint, req *dto.UpdateExerciseRequest) (*dto.ExerciseResponse, error)
	PatchExercise(ctx context.Context, id uint, req *dto.PatchExerciseRequest) (*dto.ExerciseResponse, error)
	DeleteExercise(ctx context.Context, id uint) error
}

type exerciseUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	exerciseRepo   repository.ExerciseRepository
	specialityRepo repository.SpecialityRepository
	auditService   service.AuditService
}

func NewExerciseUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	exerciseRepo repository.ExerciseRepository,
	specialityRepo repository.SpecialityRepository,
	auditService service.AuditService,
) ExerciseUsecase {
	return &exerciseUsecase{
		db:             db,
		log:            log,
		exerciseRepo:   exerciseRepo,
		specialityRepo: specialityRepo,
		auditService:   auditService,
	}
}

func frequencyOrDefault(value string) entity.Frequency {
	if value == "" {
		return entity.DefaultFrequency
	}
	return entity.Frequency(value)
}

// resolveSpecialisations loads the referenced specialities, failing with a
// ValidationError on the "specialisations" field if any id is unknown.
func (u *exerciseUsecase) resolveSpecialisations(tx *gorm.DB, ids []uint) ([]entity.Speciality, error) {
	ids = uniqueIDs(ids)
	specialities := make([]entity.Speciality, 0, len(ids))
	if len(ids) == 0 {
		return specialities, nil
	}

	found, err := u.specialityRepo.FindByIDs(tx, ids)
	if err != nil {
		u.log.Warnf("Failed to find specialities: %+v", err)
		return nil, err
	}

	byID := make(map[uint]entity.Speciality, len(found))
	for _, s := range found {
		byID[s.ID] = s
	}

	message := missingIDsMessage("speciality", ids, func(id uint) bool {
		_, ok := byID[id]
		return ok
	})
	if message != "" {
		errs := fieldErrors{}
		errs.add("specialisations", message)
		return nil, errs.err()
	}

	for _, id := range ids {
		specialities = append(specialities, byID[id])
	}
	return specialities, nil
}

func (u *exerciseUsecase) CreateExercise(ctx context.Context, req *dto.CreateExerciseRequest) (*dto.ExerciseResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	specialities, err := u.resolveSpecialisations(tx, req.Specialisations)
	if err != nil {
		return nil, err
	}

	exercise := &entity.Exercise{
		Title:           req.Title,
		Description:     req.Description,
		Frequency:       frequencyOrDefault(req.Frequency),
		Specialisations: specialities,
	}
	if err := u.exerciseRepo.Create(tx, exercise); err != nil {
		u.log.Warnf("Failed to create exercise: %+v", err)
		return nil, err
	}

	newValue := converter.ExerciseToResponse(exercise)
	if err := u.auditService.LogCreate(ctx, tx, entity.AuditActionExerciseCreate, "exercise", exercise.ID, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

func (u *exerciseUsecase) GetExercise(ctx context.Context, id uint) (*dto.ExerciseResponse, error) {
	exercise, err := u.exerciseRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find exercise: %+v", err)
		return nil, err
	}
	if exercise == nil {
		return nil, ErrExerciseNotFound
	}

	return converter.ExerciseToResponse(exercise), nil
}

func (u *exerciseUsecase) GetAllExercises(ctx context.Context) ([]dto.ExerciseResponse, error) {
	exercises, err := u.exerciseRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all exercises: %+v", err)
		return nil, err
	}

	return converter.ExercisesToResponses(exercises), nil
}

type exerciseChanges struct {
	title           *string
	description     *string
	frequency       *entity.Frequency
	specialisations *[]uint
}

func (u *exerciseUsecase) UpdateExercise(ctx context.Context, id uint, req *dto.UpdateExerciseRequest) (*dto.ExerciseResponse, error) {
	frequency := frequencyOrDefault(req.Frequency)
	changes := exerciseChanges{
		title:       &req.Title,
		description: &req.Description,
		frequency:   &frequency,
	}
	if req.Specialisations != nil {
		changes.specialisations = &req.Specialisations
	}
	return u.update(ctx, id, changes)
}

func (u *exerciseUsecase) PatchExercise(ctx context.Context, id uint, req *dto.PatchExerciseRequest) (*dto.ExerciseResponse, error) {
	changes := exerciseChanges{
		title:           req.Title,
		description:     req.Description,
		specialisations: req.Specialisations,
	}
	if req.Frequency != nil {
		frequency := entity.Frequency(*req.Frequency)
		changes.frequency = &frequency
	}
	return u.update(ctx, id, changes)
}

func (u *exerciseUsecase) update(ctx context.Context, id uint, changes exerciseChanges) (*dto.ExerciseResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	exercise, err := u.exerciseRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find exercise: %+v", err)
		return nil, err
	}
	if exercise == nil {
		return nil, ErrExerciseNotFound
	}

	var specialities []entity.Speciality
	if changes.specialisations != nil {
		specialities, err = u.resolveSpecialisations(tx, *changes.specialisations)
		if err != nil {
			return nil, err
		}
	}

	oldValue := converter.ExerciseToResponse(exercise)

	if changes.title != nil {
		exercise.Title = *changes.title
	}
	if changes.description != nil {
		exercise.Description = *changes.description
	}
	if changes.frequency != nil {
		exercise.Frequency = *changes.frequency
	}

	if err := u.exerciseRepo.Update(tx, exercise); err != nil {
		u.log.Warnf("Failed to update exercise: %+v", err)
		return nil, err
	}

	if changes.specialisations != nil {
		if err := u.exerciseRepo.ReplaceSpecialisations(tx, exercise, specialities); err != nil {
			u.log.Warnf("Failed to replace exercise specialisations: %+v", err)
			return nil, err
		}
	}

	newValue := converter.ExerciseToResponse(exercise)
	if err := u.auditService.LogUpdate(ctx, tx, entity.AuditActionExerciseUpdate, "exercise", id, oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

// DeleteExercise removes the exercise and every appointment of it.
func (u *exerciseUsecase) DeleteExercise(ctx context.Context, id uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	exercise, err := u.exerciseRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find exercise: %+v", err)
		return err
	}
	if exercise == nil {
		return ErrExerciseNotFound
	}

	affectedRows, err := u.exerciseRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed delete exercise: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrExerciseNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, entity.AuditActionExerciseDelete, "exercise", id, converter.ExerciseToResponse(exercise)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
