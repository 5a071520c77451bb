package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-medical-appointment/config"
	deliveryHttp "go-medical-appointment/internal/delivery/http"
	"go-medical-appointment/internal/delivery/http/handler"
	"go-medical-appointment/internal/delivery/http/middleware"
	"go-medical-appointment/internal/delivery/http/view"
	"go-medical-appointment/internal/infrastructure/cache"
	"go-medical-appointment/internal/infrastructure/database"
	"go-medical-appointment/internal/repository"
	"go-medical-appointment/internal/service"
	"go-medical-appointment/internal/usecase"
	"go-medical-appointment/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// Options tweak what New does beyond wiring.
type Options struct {
	AutoMigrate bool
}

// New creates a new App instance with all dependencies initialized
func New(opts Options) (*App, error) {
	app := &App{}

	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	db, err := database.NewConnection(cfg.DB, database.LogLevel(cfg.App.Env))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	if opts.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			app.Close()
			return nil, err
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	httpHandler, err := NewHTTPHandler(cfg, db, redisClient, logrus.StandardLogger())
	if err != nil {
		app.Close()
		return nil, err
	}

	app.Server = &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           httpHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return app, nil
}

// LoadConfig reads the configuration and sets up the global logger from it.
func LoadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	setupLogger(cfg.App.LogLevel)
	logrus.Info("Configuration loaded successfully")

	return cfg, nil
}

// setupLogger configures the logrus logger
func setupLogger(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
}

// NewHTTPHandler wires repositories, use cases and handlers into the router.
// redisClient may be nil.
func NewHTTPHandler(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, log *logrus.Logger) (http.Handler, error) {
	// Initialize validator and views
	customValidator := validator.NewValidator()
	renderer, err := view.NewRenderer(log)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	// Initialize repositories
	specialityRepo := repository.NewSpecialityRepository()
	exerciseRepo := repository.NewExerciseRepository()
	patientRepo := repository.NewPatientRepository()
	doctorRepo := repository.NewDoctorRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)
	appointmentGuard := service.NewAppointmentGuard(redisClient, cfg.Appointment.GuardTTL, log)

	// Initialize usecases
	specialityUsecase := usecase.NewSpecialityUsecase(db, log, specialityRepo, auditService)
	exerciseUsecase := usecase.NewExerciseUsecase(db, log, exerciseRepo, specialityRepo, auditService)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo, appointmentRepo, auditService)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorRepo, specialityRepo, patientRepo, appointmentRepo, auditService)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, doctorRepo, patientRepo, exerciseRepo, appointmentGuard, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	homeHandler := handler.NewHomeHandler(renderer)
	healthHandler := handler.NewHealthHandler(db, redisClient, log)
	specialityHandler := handler.NewSpecialityHandler(specialityUsecase, customValidator, renderer)
	exerciseHandler := handler.NewExerciseHandler(exerciseUsecase, customValidator, renderer)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator, renderer)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, appointmentUsecase, customValidator, renderer)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, renderer)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase, renderer)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()
	requestLoggerMiddleware := middleware.NewRequestLoggerMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(
		homeHandler,
		healthHandler,
		specialityHandler,
		exerciseHandler,
		patientHandler,
		doctorHandler,
		appointmentHandler,
		auditLogHandler,
		corsMiddleware,
		requestLoggerMiddleware,
	)

	return router.Setup(), nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() error {
	errCh := make(chan error, 1)

	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Wait for interrupt signal or a listener failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		app.Close()
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	app.shutdown()
	return nil
}

func (app *App) shutdown() {
	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}

// Migrate connects to the configured database and brings the schema up to date.
func Migrate() error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	db, err := database.NewConnection(cfg.DB, database.LogLevel(cfg.App.Env))
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	return database.Migrate(db)
}
