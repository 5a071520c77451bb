package database

import (
	"fmt"
	"strings"

	"go-medical-appointment/config"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewConnection opens the database selected by cfg.Driver.
func NewConnection(cfg config.DBConfig, logLevel logger.LogLevel) (*gorm.DB, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return NewSQLiteConnection(cfg.SQLitePath, logLevel)
	default:
		return NewPostgresConnection(cfg, logLevel)
	}
}

func NewPostgresConnection(cfg config.DBConfig, logLevel logger.LogLevel) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	logrus.Info("Successfully connected to PostgreSQL database")

	return db, nil
}

// NewSQLiteConnection opens a SQLite database with foreign keys enforced,
// so ON DELETE CASCADE behaves as it does on PostgreSQL.
func NewSQLiteConnection(path string, logLevel logger.LogLevel) (*gorm.DB, error) {
	dsn := path
	if strings.Contains(dsn, "?") {
		dsn += "&_foreign_keys=on"
	} else {
		dsn += "?_foreign_keys=on"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// SQLite allows one writer; a single connection keeps transactions from
	// tripping over table locks.
	sqlDB.SetMaxOpenConns(1)

	logrus.Infof("Successfully opened SQLite database %s", path)

	return db, nil
}

// LogLevel maps the application environment to a GORM log level.
func LogLevel(env string) logger.LogLevel {
	if env == "development" {
		return logger.Info
	}
	return logger.Warn
}
