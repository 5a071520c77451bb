package repository

import (
	"go-medical-appointment/internal/domain/entity"

	"gorm.io/gorm"
)

// AuditLogRepository persists the trail written by service.AuditService.
// Entries do not hold foreign keys: Metadata names the entity and its
// numeric entity_id, so an entry outlives the clinic record it describes.
type AuditLogRepository interface {
	// Create runs on the mutation's transaction.
	Create(db *gorm.DB, log *entity.AuditLog) error
	// FindAll returns entries newest first.
	FindAll(db *gorm.DB) ([]entity.AuditLog, error)
	// FindByID returns nil, nil when no entry has the id.
	FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error)
}
