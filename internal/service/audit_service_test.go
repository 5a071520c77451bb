package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go-medical-appointment/internal/domain/entity"
	"go-medical-appointment/internal/infrastructure/database"
	domainrepo "go-medical-appointment/internal/domain/repository"
	"go-medical-appointment/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAuditTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:testdb_audit_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := database.NewSQLiteConnection(dsn, logger.Silent)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestAuditService_WritesMetadata(t *testing.T) {
	db := setupAuditTestDB(t)
	auditRepo := repository.NewAuditLogRepository()
	svc := NewAuditService(logrus.New(), auditRepo)

	tx := db.Begin()
	err := svc.LogUpdate(context.Background(), tx, entity.AuditActionPatientUpdate, "patient", 7,
		map[string]string{"name": "old"}, map[string]string{"name": "new"})
	require.NoError(t, err)
	require.NoError(t, tx.Commit().Error)

	logs, err := auditRepo.FindAll(db)
	require.NoError(t, err)
	require.Len(t, logs, 1)

	assert.Equal(t, entity.AuditActionPatientUpdate, logs[0].Action)
	assert.Equal(t, "patient", logs[0].Metadata["entity"])
	assert.EqualValues(t, 7, logs[0].Metadata["entity_id"])
	assert.Equal(t, map[string]interface{}{"name": "old"}, logs[0].Metadata["old_value"])
	assert.Equal(t, map[string]interface{}{"name": "new"}, logs[0].Metadata["new_value"])
}

func TestAuditService_RolledBackWithTransaction(t *testing.T) {
	db := setupAuditTestDB(t)
	auditRepo := repository.NewAuditLogRepository()
	svc := NewAuditService(logrus.New(), auditRepo)

	tx := db.Begin()
	require.NoError(t, svc.LogDelete(context.Background(), tx, entity.AuditActionDoctorDelete, "doctor", 1, nil))
	require.NoError(t, tx.Rollback().Error)

	logs, err := auditRepo.FindAll(db)
	require.NoError(t, err)
	assert.Empty(t, logs)
}

// brokenAuditLogRepository issues a statement against a missing table, the
// way an audit insert fails when the audit schema is unavailable.
type brokenAuditLogRepository struct {
	domainrepo.AuditLogRepository
}

func (r *brokenAuditLogRepository) Create(db *gorm.DB, log *entity.AuditLog) error {
	return db.Exec("INSERT INTO missing_audit_logs (action) VALUES (?)", log.Action).Error
}

func TestAuditService_FailedEntryKeepsTransactionUsable(t *testing.T) {
	db := setupAuditTestDB(t)
	svc := NewAuditService(logrus.New(), &brokenAuditLogRepository{
		AuditLogRepository: repository.NewAuditLogRepository(),
	})

	tx := db.Begin()
	patient := &entity.Patient{Name: "Alice"}
	require.NoError(t, tx.Create(patient).Error)

	err := svc.LogCreate(context.Background(), tx, entity.AuditActionPatientCreate, "patient", patient.ID, nil)
	require.Error(t, err)

	require.NoError(t, tx.Model(patient).Update("name", "Alicia").Error)
	require.NoError(t, tx.Commit().Error)

	var stored entity.Patient
	require.NoError(t, db.First(&stored, patient.ID).Error)
	assert.Equal(t, "Alicia", stored.Name)

	logs, err := repository.NewAuditLogRepository().FindAll(db)
	require.NoError(t, err)
	assert.Empty(t, logs)
}
