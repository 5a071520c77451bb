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
	ErrSpecialityNotFound = errors.New("speciality not found")
)

type SpecialityUsecase interface {
	CreateSpeciality(ctx context.Context, req *dto.CreateSpecialityRequest) (*dto.SpecialityResponse, error)
	GetSpeciality(ctx context.Context, id uint) (*dto.SpecialityResponse, error)
	GetAllSpecialities(ctx context.Context) ([]dto.SpecialityResponse, error)
	UpdateSpeciality(ctx context.Context, id uint, req *dto.UpdateSpecialityRequest) (*dto.SpecialityResponse, error)
	PatchSpeciality(ctx context.Context, id uint, req *dto.PatchSpecialityRequest) (*dto.SpecialityResponse, error)
	DeleteSpeciality(ctx context.Context, id uint) error
}

type specialityUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	specialityRepo repository.SpecialityRepository
	auditService   service.AuditService
}

func NewSpecialityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	specialityRepo repository.SpecialityRepository,
	auditService service.AuditService,
) SpecialityUsecase {
	return &specialityUsecase{
		db:             db,
		log:            log,
		specialityRepo: specialityRepo,
		auditService:   auditService,
	}
}

func (u *specialityUsecase) CreateSpeciality(ctx context.Context, req *dto.CreateSpecialityRequest) (*dto.SpecialityResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	speciality := &entity.Speciality{Title: req.Title}
	if err := u.specialityRepo.Create(tx, speciality); err != nil {
		u.log.Warnf("Failed to create speciality: %+v", err)
		return nil, err
	}

	newValue := converter.SpecialityToResponse(speciality)
	if err := u.auditService.LogCreate(ctx, tx, entity.AuditActionSpecialityCreate, "speciality", speciality.ID, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

func (u *specialityUsecase) GetSpeciality(ctx context.Context, id uint) (*dto.SpecialityResponse, error) {
	speciality, err := u.specialityRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find speciality: %+v", err)
		return nil, err
	}
	if speciality == nil {
		return nil, ErrSpecialityNotFound
	}

	return converter.SpecialityToResponse(speciality), nil
}

func (u *specialityUsecase) GetAllSpecialities(ctx context.Context) ([]dto.SpecialityResponse, error) {
	specialities, err := u.specialityRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all specialities: %+v", err)
		return nil, err
	}

	return converter.SpecialitiesToResponses(specialities), nil
}

func (u *specialityUsecase) UpdateSpeciality(ctx context.Context, id uint, req *dto.UpdateSpecialityRequest) (*dto.SpecialityResponse, error) {
	return u.update(ctx, id, func(speciality *entity.Speciality) {
		speciality.Title = req.Title
	})
}

func (u *specialityUsecase) PatchSpeciality(ctx context.Context, id uint, req *dto.PatchSpecialityRequest) (*dto.SpecialityResponse, error) {
	return u.update(ctx, id, func(speciality *entity.Speciality) {
		if req.Title != nil {
			speciality.Title = *req.Title
		}
	})
}

func (u *specialityUsecase) update(ctx context.Context, id uint, apply func(*entity.Speciality)) (*dto.SpecialityResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	speciality, err := u.specialityRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find speciality: %+v", err)
		return nil, err
	}
	if speciality == nil {
		return nil, ErrSpecialityNotFound
	}

	oldValue := converter.SpecialityToResponse(speciality)
	apply(speciality)

	if err := u.specialityRepo.Update(tx, speciality); err != nil {
		u.log.Warnf("Failed to update speciality: %+v", err)
		return nil, err
	}

	newValue := converter.SpecialityToResponse(speciality)
	if err := u.auditService.LogUpdate(ctx, tx, entity.AuditActionSpecialityUpdate, "speciality", id, oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

// DeleteSpeciality removes the speciality; doctors holding it and their
// appointments go with it through ON DELETE CASCADE.
func (u *specialityUsecase) DeleteSpeciality(ctx context.Context, id uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	speciality, err := u.specialityRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find speciality: %+v", err)
		return err
	}
	if speciality == nil {
		return ErrSpecialityNotFound
	}

	affectedRows, err := u.specialityRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed delete speciality: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrSpecialityNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, entity.AuditActionSpecialityDelete, "speciality", id, converter.SpecialityToResponse(speciality)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
