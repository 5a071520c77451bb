package http

import (
	"net/http"

	"go-medical-appointment/internal/delivery/http/handler"
	"go-medical-appointment/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router                  *mux.Router
	homeHandler             *handler.HomeHandler
	healthHandler           *handler.HealthHandler
	specialityHandler       *handler.SpecialityHandler
	exerciseHandler         *handler.ExerciseHandler
	patientHandler          *handler.PatientHandler
	doctorHandler           *handler.DoctorHandler
	appointmentHandler      *handler.AppointmentHandler
	auditLogHandler         *handler.AuditLogHandler
	corsMiddleware          *middleware.CORSMiddleware
	requestLoggerMiddleware *middleware.RequestLoggerMiddleware
}

func NewRouter(
	homeHandler *handler.HomeHandler,
	healthHandler *handler.HealthHandler,
	specialityHandler *handler.SpecialityHandler,
	exerciseHandler *handler.ExerciseHandler,
	patientHandler *handler.PatientHandler,
	doctorHandler *handler.DoctorHandler,
	appointmentHandler *handler.AppointmentHandler,
	auditLogHandler *handler.AuditLogHandler,
	corsMiddleware *middleware.CORSMiddleware,
	requestLoggerMiddleware *middleware.RequestLoggerMiddleware,
) *Router {
	return &Router{
		router:                  mux.NewRouter().StrictSlash(true),
		homeHandler:             homeHandler,
		healthHandler:           healthHandler,
		specialityHandler:       specialityHandler,
		exerciseHandler:         exerciseHandler,
		patientHandler:          patientHandler,
		doctorHandler:           doctorHandler,
		appointmentHandler:      appointmentHandler,
		auditLogHandler:         auditLogHandler,
		corsMiddleware:          corsMiddleware,
		requestLoggerMiddleware: requestLoggerMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	r.router.HandleFunc("/", r.homeHandler.Index).Methods(http.MethodGet)
	r.router.HandleFunc("/health", r.healthHandler.Check).Methods(http.MethodGet)

	// Speciality routes
	speciality := r.router.PathPrefix("/speciality").Subrouter()
	speciality.HandleFunc("/", r.specialityHandler.GetAllSpecialities).Methods(http.MethodGet)
	speciality.HandleFunc("/", r.specialityHandler.CreateSpeciality).Methods(http.MethodPost)
	speciality.HandleFunc("/{id}/", r.specialityHandler.GetSpeciality).Methods(http.MethodGet)
	speciality.HandleFunc("/{id}/", r.specialityHandler.UpdateSpeciality).Methods(http.MethodPut)
	speciality.HandleFunc("/{id}/", r.specialityHandler.PatchSpeciality).Methods(http.MethodPatch)
	speciality.HandleFunc("/{id}/", r.specialityHandler.DeleteSpeciality).Methods(http.MethodDelete)

	// Exercise routes
	exercise := r.router.PathPrefix("/exercise").Subrouter()
	exercise.HandleFunc("/", r.exerciseHandler.GetAllExercises).Methods(http.MethodGet)
	exercise.HandleFunc("/", r.exerciseHandler.CreateExercise).Methods(http.MethodPost)
	exercise.HandleFunc("/{id}/", r.exerciseHandler.GetExercise).Methods(http.MethodGet)
	exercise.HandleFunc("/{id}/", r.exerciseHandler.UpdateExercise).Methods(http.MethodPut)
	exercise.HandleFunc("/{id}/", r.exerciseHandler.PatchExercise).Methods(http.MethodPatch)
	exercise.HandleFunc("/{id}/", r.exerciseHandler.DeleteExercise).Methods(http.MethodDelete)

	// Patient routes
	patient := r.router.PathPrefix("/patient").Subrouter()
	patient.HandleFunc("/", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	patient.HandleFunc("/", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	patient.HandleFunc("/{id}/", r.patientHandler.GetPatient).Methods(http.MethodGet)
	patient.HandleFunc("/{id}/", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	patient.HandleFunc("/{id}/", r.patientHandler.PatchPatient).Methods(http.MethodPatch)
	patient.HandleFunc("/{id}/", r.patientHandler.DeletePatient).Methods(http.MethodDelete)
	patient.HandleFunc("/{id}/exercises/", r.patientHandler.GetPatientExercises).Methods(http.MethodGet)

	// Doctor routes
	doctor := r.router.PathPrefix("/doctor").Subrouter()
	doctor.HandleFunc("/", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	doctor.HandleFunc("/", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	doctor.HandleFunc("/{id}/", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	doctor.HandleFunc("/{id}/", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	doctor.HandleFunc("/{id}/", r.doctorHandler.PatchDoctor).Methods(http.MethodPatch)
	doctor.HandleFunc("/{id}/", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)
	doctor.HandleFunc("/{id}/exercises/", r.doctorHandler.GetDoctorExercises).Methods(http.MethodGet)
	doctor.HandleFunc("/{id}/appoint/", r.doctorHandler.Appoint).Methods(http.MethodPost)

	// Appointment routes
	appointment := r.router.PathPrefix("/appointment").Subrouter()
	appointment.HandleFunc("/", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	appointment.HandleFunc("/{id}/", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	appointment.HandleFunc("/{id}/", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)

	// Audit log routes
	auditLog := r.router.PathPrefix("/audit-log").Subrouter()
	auditLog.HandleFunc("/", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	auditLog.HandleFunc("/{id}/", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	r.router.Use(r.requestLoggerMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}
