package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	App         AppConfig
	DB          DBConfig
	Redis       RedisConfig
	Appointment AppointmentConfig
}

type AppConfig struct {
	Port     string
	Env      string
	LogLevel string
}

type DBConfig struct {
	Driver     string
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SQLitePath string
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
}

// AppointmentConfig tunes the appoint workflow guard.
type AppointmentConfig struct {
	GuardTTL time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8000")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SQLITE_PATH", "appointments.db")
	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
}

// LoadConfig reads .env (if present) and the process environment.
func LoadConfig() (*Config, error) {
	return LoadConfigFile(".env")
}

func LoadConfigFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, err
		}
	}

	guardTTL, err := time.ParseDuration(v.GetString("APPOINTMENT_GUARD_TTL"))
	if err != nil {
		guardTTL = 10 * time.Second
	}

	config := &Config{
		App: AppConfig{
			Port:     v.GetString("APP_PORT"),
			Env:      v.GetString("APP_ENV"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		DB: DBConfig{
			Driver:     v.GetString("DB_DRIVER"),
			Host:       v.GetString("DB_HOST"),
			Port:       v.GetString("DB_PORT"),
			User:       v.GetString("DB_USER"),
			Password:   v.GetString("DB_PASSWORD"),
			Name:       v.GetString("DB_NAME"),
			SQLitePath: v.GetString("DB_SQLITE_PATH"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("REDIS_ENABLED"),
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Appointment: AppointmentConfig{
			GuardTTL: guardTTL,
		},
	}

	if config.DB.Driver != DriverPostgres && config.DB.Driver != DriverSQLite {
		return nil, errors.New("unsupported DB_DRIVER: " + config.DB.Driver)
	}

	return config, nil
}
