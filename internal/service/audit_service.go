package service

import (
	"context"

	"go-medical-appointment/internal/domain/entity"
	"go-medical-appointment/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditService writes audit entries inside the caller's transaction, so an
// entry exists only if the mutation it describes is committed. Each insert
// runs under a savepoint: a failed entry is rolled back on its own and the
// transaction stays usable for the caller's commit.
type AuditService interface {
	LogCreate(ctx context.Context, tx *gorm.DB, action string, entityName string, entityID uint, newValue interface{}) error
	LogUpdate(ctx context.Context, tx *gorm.DB, action string, entityName string, entityID uint, oldValue, newValue interface{}) error
	LogDelete(ctx context.Context, tx *gorm.DB, action string, entityName string, entityID uint, oldValue interface{}) error
}

const auditSavePoint = "audit"

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

// LogCreate logs a create action
func (s *auditService) LogCreate(ctx context.Context, tx *gorm.DB, action string, entityName string, entityID uint, newValue interface{}) error {
	return s.write(ctx, tx, action, entityName, entityID, nil, newValue)
}

// LogUpdate logs an update action with old and new values
func (s *auditService) LogUpdate(ctx context.Context, tx *gorm.DB, action string, entityName string, entityID uint, oldValue, newValue interface{}) error {
	return s.write(ctx, tx, action, entityName, entityID, oldValue, newValue)
}

// LogDelete logs a delete action with old value
func (s *auditService) LogDelete(ctx context.Context, tx *gorm.DB, action string, entityName string, entityID uint, oldValue interface{}) error {
	return s.write(ctx, tx, action, entityName, entityID, oldValue, nil)
}

func (s *auditService) write(ctx context.Context, tx *gorm.DB, action string, entityName string, entityID uint, oldValue, newValue interface{}) error {
	auditLog := &entity.AuditLog{
		Action: action,
		Metadata: entity.JSON{
			"entity":    entityName,
			"entity_id": entityID,
			"old_value": oldValue,
			"new_value": newValue,
		},
	}

	if err := tx.SavePoint(auditSavePoint).Error; err != nil {
		s.log.Warnf("Failed to create audit savepoint: %+v", err)
		return err
	}

	if err := s.auditRepo.Create(tx.WithContext(ctx), auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		if rbErr := tx.RollbackTo(auditSavePoint).Error; rbErr != nil {
			s.log.Warnf("Failed rollback to audit savepoint: %+v", rbErr)
		}
		return err
	}

	return nil
}
