package database

import (
	"fmt"
	"testing"
	"time"

	"go-medical-appointment/config"
	"go-medical-appointment/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestNewConnection_SQLiteMigratesSchema(t *testing.T) {
	cfg := config.DBConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: fmt.Sprintf("file:migrate_%d?mode=memory&cache=shared", time.Now().UnixNano()),
	}

	db, err := NewConnection(cfg, logger.Silent)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	for _, table := range []string{"specialities", "patients", "exercises", "doctors", "appointments", "audit_logs", "doctor_patients", "exercise_specialisations"} {
		assert.True(t, db.Migrator().HasTable(table), "expected table %s", table)
	}
	assert.True(t, db.Migrator().HasIndex(&entity.Appointment{}, "idx_appointment_triple"))
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, logger.Info, LogLevel("development"))
	assert.Equal(t, logger.Warn, LogLevel("production"))
}
