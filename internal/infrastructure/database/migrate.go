package database

import (
	"fmt"

	"go-medical-appointment/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Models lists every persisted entity in dependency order.
func Models() []interface{} {
	return []interface{}{
		&entity.Speciality{},
		&entity.Patient{},
		&entity.Exercise{},
		&entity.Doctor{},
		&entity.Appointment{},
		&entity.AuditLog{},
	}
}

// Migrate creates or updates tables, join tables and foreign keys.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	logrus.Info("Database schema is up to date")
	return nil
}
