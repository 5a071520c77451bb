package handler

import (
	"errors"
	"net/http"

	"go-medical-appointment/internal/delivery/dto"
	"go-medical-appointment/internal/delivery/http/view"
	"go-medical-appointment/internal/usecase"
	"go-medical-appointment/pkg/response"
	"go-medical-appointment/pkg/validator"
)

type DoctorHandler struct {
	doctorUsecase      usecase.DoctorUsecase
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
	view               *view.Renderer
}

func NewDoctorHandler(
	doctorUsecase usecase.DoctorUsecase,
	appointmentUsecase usecase.AppointmentUsecase,
	validator *validator.CustomValidator,
	view *view.Renderer,
) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase:      doctorUsecase,
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
		view:               view,
	}
}

func (h *DoctorHandler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDoctorRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	if _, err := h.doctorUsecase.CreateDoctor(r.Context(), &req); err != nil {
		if writeValidationError(w, err) {
			return
		}
		response.InternalServerError(w, "Failed to create doctor")
		return
	}

	response.Success(w, "Doctor created successfully")
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	doctor, err := h.doctorUsecase.GetDoctor(r.Context(), doctorID)
	if err != nil {
		if errors.Is(err, usecase.ErrDoctorNotFound) {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to get doctor")
		return
	}

	h.view.Render(w, r, view.PageDoctors, []dto.DoctorResponse{*doctor})
}

func (h *DoctorHandler) GetDoctorExercises(w http.ResponseWriter, r *http.Request) {
	doctorID, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	doctor, err := h.doctorUsecase.GetDoctorExercises(r.Context(), doctorID)
	if err != nil {
		if errors.Is(err, usecase.ErrDoctorNotFound) {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to get doctor exercises")
		return
	}

	h.view.Render(w, r, view.PageDoctorExercises, []dto.DoctorResponse{*doctor})
}

func (h *DoctorHandler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.doctorUsecase.GetAllDoctors(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get doctors")
		return
	}

	h.view.Render(w, r, view.PageDoctors, doctors)
}

func (h *DoctorHandler) UpdateDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	var req dto.UpdateDoctorRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	_, err = h.doctorUsecase.UpdateDoctor(r.Context(), doctorID, &req)
	h.writeUpdateResult(w, err)
}

func (h *DoctorHandler) PatchDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	var req dto.PatchDoctorRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	_, err = h.doctorUsecase.PatchDoctor(r.Context(), doctorID, &req)
	h.writeUpdateResult(w, err)
}

func (h *DoctorHandler) writeUpdateResult(w http.ResponseWriter, err error) {
	if writeValidationError(w, err) {
		return
	}

	switch {
	case err == nil:
		response.Success(w, "Doctor updated successfully")
	case errors.Is(err, usecase.ErrDoctorNotFound):
		response.NotFound(w, "Doctor not found")
	default:
		response.InternalServerError(w, "Failed to update doctor")
	}
}

func (h *DoctorHandler) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	if err := h.doctorUsecase.DeleteDoctor(r.Context(), doctorID); err != nil {
		if errors.Is(err, usecase.ErrDoctorNotFound) {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to delete doctor")
		return
	}

	response.Success(w, "Doctor deleted successfully")
}

// Appoint assigns an exercise to one of the doctor's patients.
func (h *DoctorHandler) Appoint(w http.ResponseWriter, r *http.Request) {
	doctorID, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	var req dto.AppointRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	if _, err := h.appointmentUsecase.Appoint(r.Context(), doctorID, &req); err != nil {
		switch {
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		case errors.Is(err, usecase.ErrExerciseNotFound):
			response.NotFound(w, "Exercise not found")
		case errors.Is(err, usecase.ErrPatientNotFound):
			response.NotFound(w, "Patient not found")
		case errors.Is(err, usecase.ErrSpecialityMismatch):
			response.BadRequest(w, "Doctor lacks required speciality")
		case errors.Is(err, usecase.ErrPatientNotAssigned):
			response.BadRequest(w, "Doctor not authorized for this patient")
		case errors.Is(err, usecase.ErrDuplicateAppointment):
			response.BadRequest(w, "Duplicate appointment")
		default:
			response.InternalServerError(w, "Failed to create appointment")
		}
		return
	}

	response.Success(w, "Exercise appointed successfully")
}
